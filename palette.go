package mandala

// Palette is an ordered list of colors for one ColorMode.
type Palette []Color

// At returns the color at i, wrapping around the palette length.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// PaletteTable maps each ColorMode to its palette. The table handed to
// plugins is shared and must be treated as read-only.
type PaletteTable map[ColorMode]Palette

// Lookup returns the palette for mode, falling back to monochrome.
func (t PaletteTable) Lookup(mode ColorMode) Palette {
	if p, ok := t[mode]; ok && len(p) > 0 {
		return p
	}
	return t[ColorModeMonochrome]
}

func hexPalette(hex ...string) Palette {
	p := make(Palette, len(hex))
	for i, h := range hex {
		p[i] = MustParseHexColor(h)
	}
	return p
}

// DefaultPalettes is the static palette table.
var DefaultPalettes = PaletteTable{
	ColorModeMonochrome:    hexPalette("#ffffff", "#cccccc", "#999999", "#666666", "#333333"),
	ColorModeRainbow:       hexPalette("#ff3366", "#ff6633", "#ffcc33", "#33cc33", "#3366ff", "#cc33ff"),
	ColorModeComplementary: hexPalette("#ff3366", "#33ccff", "#ffcc33", "#33ff99", "#cc33ff", "#ff9933"),
	ColorModeEarth:         hexPalette("#996633", "#cc9966", "#ffcc99", "#669933", "#336633", "#003300"),
	ColorModeOcean:         hexPalette("#003366", "#0066cc", "#3399ff", "#66ccff", "#99ffff", "#ccffff"),
}
