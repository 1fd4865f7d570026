package components

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/sqlquest/internal/engine"
	"github.com/abhisek/sqlquest/internal/present"
)

func TestRenderResults_Empty(t *testing.T) {
	out := RenderResults(present.View{Empty: true}, "", "", 80)
	if !strings.Contains(out, present.NoResults) {
		t.Errorf("missing empty note: %q", out)
	}
}

func TestRenderResults_ErrorAndEmpty(t *testing.T) {
	out := RenderResults(present.View{Empty: true}, "no such table: Nope", "Check the name.", 80)
	if !strings.Contains(out, "no such table: Nope") {
		t.Errorf("missing error: %q", out)
	}
	if !strings.Contains(out, "Hint: Check the name.") {
		t.Errorf("missing hint: %q", out)
	}
}

func TestRenderResults_Blocks(t *testing.T) {
	rows := make([][]any, 201)
	for i := range rows {
		rows[i] = []any{int64(i)}
	}
	v := present.Present([]engine.ResultSet{
		{Columns: []string{"dept_name"}, Rows: [][]any{{"Engineering"}, {nil}}},
		{Columns: []string{"n"}, Rows: rows},
	})
	out := RenderResults(v, "", "", 100)
	for _, want := range []string{
		"Result set #1 • 1 columns • 2 rows",
		"Engineering",
		"NULL",
		"Result set #2 • 1 columns • 201 rows",
		"Showing first 200 rows",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b", Disabled: true}, {Label: "c"}})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (skips disabled)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if m.Selected != 2 {
		t.Errorf("letter keys must not move the cursor")
	}
	m.SetItems([]MenuItem{{Label: "only"}})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after shrinking, want 0", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestProgressBarClamps(t *testing.T) {
	out := NewProgressBar("Progress", 150, 30).View()
	if !strings.Contains(out, "150%") {
		t.Errorf("percent label missing: %q", out)
	}
	if strings.Contains(out, "░") {
		t.Errorf("over-full bar should have no empty cells: %q", out)
	}
}

func TestProgressBarSegments(t *testing.T) {
	// 2 of 7 lessons.
	out := ansi.Strip(NewProgressBar("", 28, 60).WithSteps(7).View())
	if got := strings.Count(out, " "); got < 6 {
		t.Errorf("expected segment gaps, got %q", out)
	}
	seg := strings.Fields(strings.TrimSuffix(out, "28%"))
	if len(seg) != 7 {
		t.Fatalf("got %d segments, want 7: %q", len(seg), out)
	}
	if !strings.Contains(seg[1], "█") || strings.Contains(seg[2], "█") {
		t.Errorf("want the first two segments filled: %q", out)
	}
}

func TestSegmentedTooNarrowFallsBack(t *testing.T) {
	out := ansi.Strip(NewProgressBar("", 50, 14).WithSteps(7).View())
	if strings.Count(out, " ") > 2 {
		t.Errorf("narrow bar should not be segmented: %q", out)
	}
}

func TestMenuWindowKeepsCursorVisible(t *testing.T) {
	var items []MenuItem
	for i := range 10 {
		items = append(items, MenuItem{Label: fmt.Sprintf("item-%d", i)})
	}
	m := NewMenu(items)
	m.Height = 4
	m.Selected = 7

	out := m.View()
	if got := strings.Count(out, "\n") + 1; got > 4 {
		t.Errorf("rendered %d lines, want at most 4", got)
	}
	for _, want := range []string{"item-7", "more"} {
		if !strings.Contains(out, want) {
			t.Errorf("window missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "item-0") {
		t.Errorf("window should have scrolled past item-0: %q", out)
	}
}
