package scene

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// ParseColor accepts a palette name (case-insensitive) or #rrggbb / #rrggbbaa.
// An empty name is white.
func ParseColor(name string) (rl.Color, error) {
	if name == "" {
		return rl.White, nil
	}
	if c, ok := colorByName[strings.ToLower(name)]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		var c rl.Color
		c.A = 255
		var n int
		var err error
		switch len(name) {
		case 7:
			n, err = fmt.Sscanf(name, "#%2x%2x%2x", &c.R, &c.G, &c.B)
			if err == nil && n == 3 {
				return c, nil
			}
		case 9:
			n, err = fmt.Sscanf(name, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
			if err == nil && n == 4 {
				return c, nil
			}
		}
	}
	return rl.White, fmt.Errorf("unknown color %q", name)
}

// LookupColor is ParseColor with unknown names drawn white.
func LookupColor(name string) rl.Color {
	c, _ := ParseColor(name)
	return c
}

// ColorName is the palette name of c, or its hex form.
func ColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// NormalizeColors rewrites every body color to its canonical form: a lower-case
// palette name or #rrggbbaa. Empty colors stay empty.
func (f *File) NormalizeColors() error {
	for i := range f.Bodies2D {
		name, err := normalizeColor(f.Bodies2D[i].Color)
		if err != nil {
			return fmt.Errorf("bodies2d[%d] %q: %w", i, f.Bodies2D[i].ID, err)
		}
		f.Bodies2D[i].Color = name
	}
	for i := range f.Bodies3D {
		name, err := normalizeColor(f.Bodies3D[i].Color)
		if err != nil {
			return fmt.Errorf("bodies3d[%d] %q: %w", i, f.Bodies3D[i].ID, err)
		}
		f.Bodies3D[i].Color = name
	}
	return nil
}

func normalizeColor(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	c, err := ParseColor(name)
	if err != nil {
		return "", err
	}
	return ColorName(c), nil
}
