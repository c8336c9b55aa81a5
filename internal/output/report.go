package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/agentready/agentready/pkg/models"
)

const progressBarWidth = 10

// ReportView renders a scan report as text, markdown, or JSON. Verbose adds
// the per-finding breakdown.
type ReportView struct {
	Report  *models.ScanReport
	Verbose bool
}

// NewReportView wraps a scan report for rendering.
func NewReportView(report *models.ScanReport, verbose bool) *ReportView {
	return &ReportView{Report: report, Verbose: verbose}
}

func (v *ReportView) RenderData() any {
	return v.Report.ToMap()
}

func (v *ReportView) RenderText(w io.Writer, colored bool) error {
	r := v.Report

	title := "Agent Readiness Scan"
	if colored {
		color.New(color.Bold, color.FgBlue).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("=", len(title)))

	languages := "None detected"
	if len(r.DetectedLanguages) > 0 {
		languages = strings.Join(r.DetectedLanguages, ", ")
	}
	fmt.Fprintf(w, "Repository: %s\n", r.RepoPath)
	fmt.Fprintf(w, "Languages:  %s\n", languages)
	if r.Structure != nil {
		fmt.Fprintf(w, "Structure:  %s (%d packages)\n", r.Structure.Type, len(r.Structure.Packages))
	}
	fmt.Fprintf(w, "Scanned:    %s\n", r.Timestamp)
	fmt.Fprintf(w, "Duration:   %.1fms\n", r.ScanDurationMs)
	fmt.Fprintln(w)

	v.renderCategoryTable(w, colored)

	if v.Verbose {
		v.renderFindings(w, colored)
	}

	if r.Structure != nil && r.Structure.IsMultiPackage() && len(r.PackageScores) > 0 {
		v.renderPackageTable(w, colored)
	}

	v.renderSummary(w, colored)
	return nil
}

func (v *ReportView) renderCategoryTable(w io.Writer, colored bool) {
	rows := make([][]string, 0, len(v.Report.CategoryScores))
	for _, cs := range sortedCategories(v.Report.CategoryScores) {
		score := fmt.Sprintf("%.0f", cs.Score)
		if colored {
			score = scoreColor(cs.Score).Sprint(score)
		}
		rows = append(rows, []string{
			categoryTitle(cs.Category),
			score,
			fmt.Sprintf("%.0f%%", cs.Weight*100),
			fmt.Sprintf("%.1f", cs.WeightedScore),
			progressBar(cs.Score, colored),
			fmt.Sprintf("%d/%d", cs.FoundCount(), cs.TotalCount()),
		})
	}

	table := NewTable("Category Scores",
		[]string{"Category", "Score", "Weight", "Weighted", "Progress", "Found"},
		rows, nil, nil)
	_ = table.RenderText(w, colored)
}

func (v *ReportView) renderFindings(w io.Writer, colored bool) {
	if colored {
		color.New(color.Bold).Fprintln(w, "Detailed Findings:")
	} else {
		fmt.Fprintln(w, "Detailed Findings:")
	}
	fmt.Fprintln(w)

	for _, cs := range v.Report.CategoryScores {
		if colored {
			color.New(color.Bold, color.FgCyan).Fprintln(w, categoryTitle(cs.Category))
		} else {
			fmt.Fprintln(w, categoryTitle(cs.Category))
		}

		for _, f := range cs.Findings {
			icon := "✗"
			if f.Found {
				icon = "✓"
			}
			if colored {
				if f.Found {
					icon = color.GreenString(icon)
				} else {
					icon = color.RedString(icon)
				}
			}
			line := fmt.Sprintf("  %s %s", icon, f.Name)
			if f.Path != "" {
				line += fmt.Sprintf(" (%s)", f.Path)
			}
			if f.Details != "" {
				line += " - " + f.Details
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

func (v *ReportView) renderPackageTable(w io.Writer, colored bool) {
	rows := make([][]string, 0, len(v.Report.PackageScores))
	for i := range v.Report.PackageScores {
		ps := &v.Report.PackageScores[i]
		score := fmt.Sprintf("%.0f", ps.Score)
		if colored {
			score = scoreColor(ps.Score).Sprint(score)
		}
		rows = append(rows, []string{
			ps.Package.Path,
			ps.Package.PackageManager,
			strings.Join(ps.Package.LanguageNames(), ", "),
			score,
			fmt.Sprintf("%.1f", ps.Weight()),
		})
	}

	table := NewTable("Package Scores",
		[]string{"Package", "Manager", "Languages", "Score", "Weight"},
		rows, nil, nil)
	_ = table.RenderText(w, colored)
}

func (v *ReportView) renderSummary(w io.Writer, colored bool) {
	r := v.Report
	if colored {
		fmt.Fprintf(w, "%s %s/100  %s %s\n",
			color.New(color.Bold).Sprint("Final Score:"),
			scoreColor(r.TotalScore).Add(color.Bold).Sprintf("%.1f", r.TotalScore),
			color.New(color.Bold).Sprint("Grade:"),
			gradeColor(r.Grade).Add(color.Bold).Sprint(r.Grade))
	} else {
		fmt.Fprintf(w, "Final Score: %.1f/100  Grade: %s\n", r.TotalScore, r.Grade)
	}
	fmt.Fprintln(w, ReadinessLevel(r.TotalScore))
}

func (v *ReportView) RenderMarkdown(w io.Writer) error {
	r := v.Report

	fmt.Fprintf(w, "# Agent Readiness Scan\n\n")
	fmt.Fprintf(w, "- **Repository:** %s\n", r.RepoPath)
	fmt.Fprintf(w, "- **Languages:** %s\n", strings.Join(r.DetectedLanguages, ", "))
	if r.Structure != nil {
		fmt.Fprintf(w, "- **Structure:** %s\n", r.Structure.Type)
	}
	fmt.Fprintf(w, "- **Score:** %.1f/100 (Grade %s)\n\n", r.TotalScore, r.Grade)

	rows := make([][]string, 0, len(r.CategoryScores))
	for _, cs := range sortedCategories(r.CategoryScores) {
		rows = append(rows, []string{
			categoryTitle(cs.Category),
			fmt.Sprintf("%.0f", cs.Score),
			fmt.Sprintf("%.0f%%", cs.Weight*100),
			fmt.Sprintf("%.1f", cs.WeightedScore),
			fmt.Sprintf("%d/%d", cs.FoundCount(), cs.TotalCount()),
		})
	}
	table := NewTable("Category Scores",
		[]string{"Category", "Score", "Weight", "Weighted", "Found"},
		rows, nil, nil)
	if err := table.RenderMarkdown(w); err != nil {
		return err
	}

	if v.Verbose {
		for _, cs := range r.CategoryScores {
			fmt.Fprintf(w, "### %s\n\n", categoryTitle(cs.Category))
			for _, f := range cs.Findings {
				mark := " "
				if f.Found {
					mark = "x"
				}
				line := fmt.Sprintf("- [%s] %s", mark, f.Name)
				if f.Path != "" {
					line += fmt.Sprintf(" (`%s`)", f.Path)
				}
				fmt.Fprintln(w, line)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "%s\n", ReadinessLevel(r.TotalScore))
	return nil
}

// ReadinessLevel describes what a score means in practice.
func ReadinessLevel(score float64) string {
	switch {
	case score >= 90:
		return "Excellent agent readiness - ready for autonomous development"
	case score >= 80:
		return "Good agent readiness - minor improvements recommended"
	case score >= 70:
		return "Moderate agent readiness - several areas need attention"
	case score >= 60:
		return "Limited agent readiness - significant gaps exist"
	default:
		return "Poor agent readiness - major infrastructure missing"
	}
}

func sortedCategories(scores []models.CategoryScore) []models.CategoryScore {
	sorted := make([]models.CategoryScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Category < sorted[j].Category
	})
	return sorted
}

func categoryTitle(c models.Category) string {
	s := strings.ReplaceAll(string(c), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func scoreColor(score float64) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 60:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func gradeColor(grade string) *color.Color {
	switch grade {
	case "A":
		return color.New(color.FgGreen)
	case "B":
		return color.New(color.FgBlue)
	case "C":
		return color.New(color.FgYellow)
	case "D":
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgRed)
	}
}

func progressBar(score float64, colored bool) string {
	filled := int(score) / progressBarWidth
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	if colored {
		return scoreColor(score).Sprint(bar)
	}
	return bar
}
