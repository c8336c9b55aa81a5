package models

import (
	"math"
	"testing"
)

func TestCalculateGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.99, "C"},
		{70, "C"},
		{69.99, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := CalculateGrade(tc.score); got != tc.want {
			t.Errorf("CalculateGrade(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCategoryWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range CategoryWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("category weights sum to %v, want 1.0", sum)
	}
}

func TestCategoriesCoverAllWeights(t *testing.T) {
	cats := Categories()
	if len(cats) != len(CategoryWeights) {
		t.Fatalf("Categories() returned %d entries, weights map has %d", len(cats), len(CategoryWeights))
	}
	for _, c := range cats {
		if _, ok := CategoryWeights[c]; !ok {
			t.Errorf("category %s has no weight", c)
		}
	}
	if cats[0] != CategoryStyle || cats[len(cats)-1] != CategoryTyping {
		t.Errorf("unexpected canonical order: %v", cats)
	}
}

func TestCategoryScoreCounts(t *testing.T) {
	cs := CategoryScore{
		Findings: []Finding{
			{Name: "a", Found: true},
			{Name: "b", Found: false},
			{Name: "c", Found: true},
		},
	}
	if got := cs.FoundCount(); got != 2 {
		t.Errorf("FoundCount() = %d, want 2", got)
	}
	if got := cs.TotalCount(); got != 3 {
		t.Errorf("TotalCount() = %d, want 3", got)
	}
}

func TestPackageWeightTiers(t *testing.T) {
	cases := []struct {
		lines int
		want  float64
	}{
		{0, 1.0},
		{999, 1.0},
		{1000, 1.5},
		{10000, 1.5},
		{10001, 2.0},
	}
	for _, tc := range cases {
		p := Package{LineCount: tc.lines}
		if got := p.Weight(); got != tc.want {
			t.Errorf("Weight() with %d lines = %v, want %v", tc.lines, got, tc.want)
		}
	}
}

func TestScanReportToMapRounding(t *testing.T) {
	r := ScanReport{
		RepoPath:       "/tmp/repo",
		TotalScore:     72.4567,
		Grade:          "C",
		ScanDurationMs: 12.3456,
		CategoryScores: []CategoryScore{
			{
				Category:      CategoryTesting,
				Score:         66.666,
				Weight:        0.20,
				WeightedScore: 13.3332,
				Findings: []Finding{
					{Name: "Jest config", Found: true, Path: "jest.config.js"},
					{Name: "Coverage config", Found: false},
				},
			},
		},
	}

	m := r.ToMap()
	if m["total_score"] != 72.5 {
		t.Errorf("total_score = %v, want 72.5", m["total_score"])
	}
	if m["scan_duration_ms"] != 12.35 {
		t.Errorf("scan_duration_ms = %v, want 12.35", m["scan_duration_ms"])
	}

	cats, ok := m["categories"].([]map[string]any)
	if !ok || len(cats) != 1 {
		t.Fatalf("categories missing or wrong shape: %v", m["categories"])
	}
	cat := cats[0]
	if cat["score"] != 66.7 {
		t.Errorf("category score = %v, want 66.7", cat["score"])
	}
	if cat["weighted_score"] != 13.33 {
		t.Errorf("weighted_score = %v, want 13.33", cat["weighted_score"])
	}
	if cat["found"] != 1 || cat["total"] != 2 {
		t.Errorf("found/total = %v/%v, want 1/2", cat["found"], cat["total"])
	}

	findings, ok := cat["findings"].([]map[string]any)
	if !ok || len(findings) != 2 {
		t.Fatalf("findings missing: %v", cat["findings"])
	}
	if _, hasPath := findings[1]["path"]; hasPath {
		t.Error("unfound finding should omit path")
	}
}
