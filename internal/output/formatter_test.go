package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"text", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"", FormatText},
		{"invalid", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFormatterStdout(t *testing.T) {
	f, err := NewFormatter(FormatText, "", true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	defer f.Close()

	if f.Format() != FormatText {
		t.Errorf("Format() = %q, want %q", f.Format(), FormatText)
	}
	if !f.Colored() {
		t.Error("Colored() = false, want true")
	}
	if f.file != nil {
		t.Error("file should be nil for stdout")
	}
	if f.Writer() == nil {
		t.Error("Writer() should not be nil")
	}
}

func TestNewFormatterWithFile(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "report.json")

	f, err := NewFormatter(FormatJSON, outputPath, true)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if f.file == nil {
		t.Error("file should not be nil for file output")
	}
	if f.colored {
		t.Error("colored should be false when writing to file")
	}

	if err := f.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Error("output file should exist")
	}
}

func TestNewFormatterInvalidPath(t *testing.T) {
	if _, err := NewFormatter(FormatText, "/nonexistent/directory/report.txt", false); err == nil {
		t.Error("NewFormatter() should error for invalid path")
	}
}

func TestFormatterCloseStdout(t *testing.T) {
	f, err := NewFormatter(FormatText, "", false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close() should not error for stdout: %v", err)
	}
}

func TestTableRenderText(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		want  []string
	}{
		{
			name: "category_table",
			table: NewTable(
				"Category Scores",
				[]string{"Category", "Score", "Found"},
				[][]string{
					{"Testing", "80", "3/4"},
					{"Build", "50", "1/2"},
				},
				nil,
				nil,
			),
			want: []string{"Category Scores", "CATEGORY", "SCORE", "Testing", "80", "3/4"},
		},
		{
			name: "with_footer",
			table: NewTable(
				"Packages",
				[]string{"Package", "Score"},
				[][]string{{"backend", "72"}},
				[]string{"Total", "72"},
				nil,
			),
			want: []string{"Packages", "backend", "72", "Total"},
		},
		{
			name: "no_title",
			table: NewTable(
				"",
				[]string{"A", "B"},
				[][]string{{"1", "2"}},
				nil,
				nil,
			),
			want: []string{"1", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.table.RenderText(&buf, false); err != nil {
				t.Fatalf("RenderText() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("RenderText() missing %q in output:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestTableRenderMarkdown(t *testing.T) {
	table := NewTable(
		"Category Scores",
		[]string{"Category", "Score"},
		[][]string{{"Testing", "80"}},
		nil,
		nil,
	)

	var buf bytes.Buffer
	if err := table.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	for _, want := range []string{
		"## Category Scores",
		"| Category | Score |",
		"| --- | --- |",
		"| Testing | 80 |",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("RenderMarkdown() missing %q in output:\n%s", want, buf.String())
		}
	}
}

func TestTableRenderData(t *testing.T) {
	table := NewTable(
		"Packages",
		[]string{"Path", "Score"},
		[][]string{{"backend", "72"}},
		nil,
		nil,
	)

	data, ok := table.RenderData().([]map[string]string)
	if !ok {
		t.Fatalf("RenderData() returned %T, want []map[string]string", table.RenderData())
	}
	if len(data) != 1 || data[0]["Path"] != "backend" || data[0]["Score"] != "72" {
		t.Errorf("RenderData() = %v", data)
	}

	custom := map[string]any{"packages": 1}
	table.Data = custom
	if got := table.RenderData(); got == nil {
		t.Error("RenderData() should return wrapped data when set")
	}
}

func TestSectionRenderText(t *testing.T) {
	section := &Section{
		Title:   "Scan Summary",
		Content: "8 categories evaluated",
		Sections: []Section{
			{Title: "Findings", Content: "12 of 20 found"},
		},
	}

	var buf bytes.Buffer
	if err := section.RenderText(&buf, false); err != nil {
		t.Fatalf("RenderText() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Scan Summary", "============", "8 categories evaluated", "Findings", "--------"} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderText() missing %q in output:\n%s", want, output)
		}
	}
}

func TestSectionRenderMarkdown(t *testing.T) {
	section := &Section{
		Title:   "Scan Summary",
		Content: "8 categories evaluated",
		Sections: []Section{
			{Title: "Findings"},
		},
	}

	var buf bytes.Buffer
	if err := section.RenderMarkdown(&buf); err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "## Scan Summary") {
		t.Errorf("top-level section should render at level 2:\n%s", output)
	}
	if !strings.Contains(output, "### Findings") {
		t.Errorf("nested section should render at level 3:\n%s", output)
	}
}

func TestFormatterOutputJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "out.json")
	f, err := NewFormatter(FormatJSON, outputPath, false)
	if err != nil {
		t.Fatalf("NewFormatter() error: %v", err)
	}

	if err := f.Output(map[string]any{"total_score": 72.5}); err != nil {
		t.Fatalf("Output() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"total_score": 72.5`) {
		t.Errorf("unexpected JSON output: %s", data)
	}
}
