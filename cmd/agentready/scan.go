package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agentready/agentready/internal/output"
	"github.com/agentready/agentready/internal/progress"
	"github.com/agentready/agentready/pkg/engine"
	"github.com/agentready/agentready/pkg/match"
	"github.com/agentready/agentready/pkg/models"
	"github.com/agentready/agentready/pkg/scanner"
	"github.com/urfave/cli/v2"
)

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "Scan a repository and report its agent readiness score",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show individual check results",
			},
			&cli.Float64Flag{
				Name:  "min-score",
				Value: -1,
				Usage: "Exit with status 1 if the score falls below this threshold",
			},
			&cli.BoolFlag{
				Name:  "gitignore",
				Usage: "Also exclude paths matched by the repository's .gitignore",
			},
		},
		Action: runScanCmd,
	}
}

func runScanCmd(c *cli.Context) error {
	path := "."
	if c.Args().Len() > 0 {
		path = c.Args().First()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", path, err)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	verbose := cfg.Output.Verbose || c.Bool("verbose")
	minScore := cfg.Scoring.MinScore
	if c.IsSet("min-score") {
		minScore = c.Float64("min-score")
	}

	for cat, w := range cfg.CategoryWeights() {
		models.CategoryWeights[cat] = w
	}

	finder := match.New(
		match.WithMaxDepth(cfg.Scan.SearchDepth),
		match.WithExtraExcludedDirs(cfg.Exclude.Dirs),
	)
	if cfg.Exclude.Gitignore || c.Bool("gitignore") {
		finder.LoadGitignore(absPath)
	}

	registry := scanner.DefaultRegistry(finder)
	eng := engine.New(registry, finder, engine.WithMaxFiles(cfg.Scan.MaxFiles))

	tracker := progress.NewPhase("Scanning repository...")
	report, err := eng.Scan(absPath)
	if err != nil {
		tracker.Fail(err)
		if errors.Is(err, engine.ErrPathNotFound) || errors.Is(err, engine.ErrNotDirectory) {
			return err
		}
		return fmt.Errorf("scan failed: %w", err)
	}
	tracker.Done()

	formatter, err := output.NewFormatter(output.ParseFormat(format), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := formatter.Output(output.NewReportView(report, verbose)); err != nil {
		return err
	}

	if minScore >= 0 && report.TotalScore < minScore {
		return cli.Exit(fmt.Sprintf("score %.1f is below minimum %.1f", report.TotalScore, minScore), 1)
	}
	return nil
}
