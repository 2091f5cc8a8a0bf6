package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

func TestLevelTable(t *testing.T) {
	out := levelTable(crossing.VariantStandard)
	for _, want := range []string{"Level", "Spacing px", "1.50-2.50", "200-240"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestLevelSheetsCoverVariants(t *testing.T) {
	sheets := levelSheets()
	if len(sheets) != 2 {
		t.Fatalf("sheets = %d, want 2", len(sheets))
	}
	for _, s := range sheets {
		if len(s.Levels) == 0 {
			t.Errorf("%s has no levels", s.ID)
		}
	}
}

func TestListCommand(t *testing.T) {
	var buf bytes.Buffer
	listCmd.SetOut(&buf)
	runList(listCmd, nil)

	out := buf.String()
	for _, want := range []string{"crossing", "crossing_classic", "Road Crossing"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}
