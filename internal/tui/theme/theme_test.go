package theme

import "testing"

// TestCatppuccinMocha_ColorPalette verifies the catppuccin_mocha color values
func TestCatppuccinMocha_ColorPalette(t *testing.T) {
	t.Parallel()

	th := Current()
	if th.Name != "catppuccin-mocha" {
		t.Fatalf("expected catppuccin-mocha theme, got %s", th.Name)
	}

	// Reference: https://github.com/catppuccin/catppuccin
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Primary (Mauve)", th.Primary, "#cba6f7"},
		{"Secondary (Blue)", th.Secondary, "#89b4fa"},

		{"BgBase", th.BgBase, "#1e1e2e"},
		{"BgMantle", th.BgMantle, "#181825"},
		{"BgSurface0", th.BgSurface0, "#313244"},
		{"BgSurface1", th.BgSurface1, "#45475a"},
		{"BgSurface2", th.BgSurface2, "#585b70"},

		{"FgMuted (Overlay0)", th.FgMuted, "#6c7086"},
		{"FgSubtle (Subtext0)", th.FgSubtle, "#a6adc8"},
		{"FgBase (Text)", th.FgBase, "#cdd6f4"},
		{"FgBright (Lavender)", th.FgBright, "#b4befe"},

		{"Success (Green)", th.Success, "#a6e3a1"},
		{"Warning (Yellow)", th.Warning, "#f9e2af"},
		{"Error (Red)", th.Error, "#f38ba8"},

		{"BorderDefault (Surface2)", th.BorderDefault, "#585b70"},
		{"BorderFocused (Mauve)", th.BorderFocused, "#cba6f7"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.expected)
		}
	}

	if !th.IsDark {
		t.Error("catppuccin-mocha is a dark theme")
	}
}

func TestSetReplacesCurrent(t *testing.T) {
	orig := Current()
	defer Set(orig)

	custom := NewCatppuccinMocha()
	custom.Name = "custom"
	Set(custom)

	if Current().Name != "custom" {
		t.Errorf("Current() = %s, want custom", Current().Name)
	}
}

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		a, b     string
		pos      float64
		expected string
	}{
		{"#000000", "#ffffff", 0.0, "#000000"},
		{"#000000", "#ffffff", 1.0, "#ffffff"},
		{"#000000", "#ff0000", 0.5, "#7f0000"},
	}

	for _, tt := range tests {
		if got := InterpolateColor(tt.a, tt.b, tt.pos); got != tt.expected {
			t.Errorf("InterpolateColor(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.pos, got, tt.expected)
		}
	}
}

func TestParseHexColorRoundTrip(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	if got := FormatHexColor(r, g, b); got != "#cba6f7" {
		t.Errorf("round trip = %s, want #cba6f7", got)
	}

	// Malformed input degrades to black rather than failing.
	r, g, b = ParseHexColor("nope")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("malformed hex should parse as black, got %d %d %d", r, g, b)
	}
}
