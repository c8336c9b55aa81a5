package main

import (
	"fmt"

	"github.com/agentready/agentready/internal/output"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
	"github.com/agentready/agentready/pkg/scanner"
	"github.com/urfave/cli/v2"
)

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cats"},
		Usage:   "List scoring categories, weights, and check counts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown",
			},
		},
		Action: runCategoriesCmd,
	}
}

func runCategoriesCmd(c *cli.Context) error {
	registry := scanner.DefaultRegistry(match.New())

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), "", true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	totalChecks := 0
	for _, s := range registry.All() {
		checks := len(s.Checks())
		totalChecks += checks
		rows = append(rows, []string{
			s.Name(),
			fmt.Sprintf("%.0f%%", models.CategoryWeights[s.Category()]*100),
			fmt.Sprintf("%d", checks),
			s.Description(),
		})
	}

	table := output.NewTable(
		"Scoring Categories",
		[]string{"Category", "Weight", "Checks", "Description"},
		rows,
		[]string{
			fmt.Sprintf("Categories: %d", len(rows)),
			"",
			fmt.Sprintf("Total: %d", totalChecks),
			"",
		},
		categoriesData(registry),
	)

	return formatter.Output(table)
}

func categoriesData(registry *scanner.Registry) []map[string]any {
	var out []map[string]any
	for _, s := range registry.All() {
		out = append(out, map[string]any{
			"category":    s.Category().String(),
			"name":        s.Name(),
			"description": s.Description(),
			"weight":      models.CategoryWeights[s.Category()],
			"checks":      len(s.Checks()),
		})
	}
	return out
}
