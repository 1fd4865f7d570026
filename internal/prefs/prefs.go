// Package prefs persists display preferences.
package prefs

import (
	"context"
	"fmt"
)

// ThemeKey is the storage key for the theme preference.
const ThemeKey = "theme"

// Theme is the color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme returns the theme named s.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// KV is the storage the preference lives in.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// LoadTheme returns the stored theme, defaulting to Dark when nothing or
// something unrecognized is stored.
func LoadTheme(ctx context.Context, kv KV) (Theme, error) {
	raw, ok, err := kv.Get(ctx, ThemeKey)
	if err != nil {
		return Dark, fmt.Errorf("load theme: %w", err)
	}
	if !ok {
		return Dark, nil
	}
	t, err := ParseTheme(raw)
	if err != nil {
		return Dark, nil
	}
	return t, nil
}

// SaveTheme stores t.
func SaveTheme(ctx context.Context, kv KV, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := kv.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
