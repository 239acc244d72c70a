package syntax

import "fmt"

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the CSS-style rgb(...) form of the color.
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Theme maps syntax types to colors.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Colors maps each syntax type to its foreground color.
	Colors map[SyntaxType]Color

	// Default is the fallback color for unmapped types.
	Default Color
}

// ColorFor returns the color for a syntax type, falling back to Default.
func (t *Theme) ColorFor(st SyntaxType) Color {
	if c, ok := t.Colors[st]; ok {
		return c
	}
	return t.Default
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "gruvbox-dark",
		Colors: map[SyntaxType]Color{
			Keyword:        {215, 85, 67},
			String:         {184, 187, 38},
			Punctuation:    {104, 157, 96},
			Punctuation2:   {104, 157, 96},
			Unknown:        {189, 174, 147},
			Property:       {168, 168, 37},
			SpecialKeyword: {211, 134, 155},
			Comment:        {128, 128, 128},
		},
		Default: Color{189, 174, 147},
	}
}
