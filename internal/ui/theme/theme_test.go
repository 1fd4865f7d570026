package theme

import "testing"

func TestApplySwapsColors(t *testing.T) {
	t.Cleanup(func() { Apply(DarkPalette) })

	Apply(LightPalette)
	if Current().Name != "light" {
		t.Fatalf("Current() = %q, want light", Current().Name)
	}
	if Text != LightPalette.Text {
		t.Error("Text color not swapped")
	}

	Apply(ForName("anything-else"))
	if Current().Name != "dark" {
		t.Errorf("ForName fallback = %q, want dark", Current().Name)
	}
}
