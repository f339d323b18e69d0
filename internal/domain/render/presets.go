package render

import colorful "github.com/lucasb-eyer/go-colorful"

// Les palettes prédéfinies de la lampe, sélectionnables par identifiant
// (commande "p:<id>"). Les valeurs reprennent les dégradés historiques
// du firmware (arc-en-ciel, océan, nuages, lave, forêt, fête).

// Rainbow : 16 teintes équidistantes sur la roue chromatique,
// saturation et valeur pleines.
var Rainbow = hueSpacedPalette()

func hueSpacedPalette() Palette {
	var p Palette
	for i := 0; i < PaletteSize; i++ {
		h := float64(i) * 360.0 / PaletteSize
		r, g, b := colorful.Hsv(h, 1, 1).RGB255()
		p[i] = RGB{R: r, G: g, B: b}
	}
	return p
}

// RainbowStripe : une teinte sur deux, le reste en noir.
var RainbowStripe = stripedPalette(Rainbow)

func stripedPalette(base Palette) Palette {
	var p Palette
	for i := 0; i < PaletteSize; i += 2 {
		p[i] = base[i]
	}
	return p
}

var Ocean = Palette{
	{0x19, 0x19, 0x70}, {0x00, 0x00, 0x8B}, {0x19, 0x19, 0x70}, {0x00, 0x00, 0x80},
	{0x00, 0x00, 0x8B}, {0x00, 0x00, 0xCD}, {0x2E, 0x8B, 0x57}, {0x00, 0x80, 0x80},
	{0x5F, 0x9E, 0xA0}, {0x00, 0x00, 0xFF}, {0x00, 0x8B, 0x8B}, {0x64, 0x95, 0xED},
	{0x7F, 0xFF, 0xD4}, {0x2E, 0x8B, 0x57}, {0x00, 0xFF, 0xFF}, {0x87, 0xCE, 0xFA},
}

var Cloud = Palette{
	{0x00, 0x00, 0xFF}, {0x00, 0x00, 0x8B}, {0x00, 0x00, 0x8B}, {0x00, 0x00, 0x8B},
	{0x00, 0x00, 0x8B}, {0x00, 0x00, 0x8B}, {0x00, 0x00, 0x8B}, {0x00, 0x00, 0x8B},
	{0x00, 0x00, 0xFF}, {0x00, 0x00, 0x8B}, {0x87, 0xCE, 0xEB}, {0x87, 0xCE, 0xEB},
	{0xAD, 0xD8, 0xE6}, {0xFF, 0xFF, 0xFF}, {0xAD, 0xD8, 0xE6}, {0x87, 0xCE, 0xEB},
}

var Lava = Palette{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x80, 0x00, 0x00},
	{0x8B, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x8B, 0x00, 0x00}, {0x8B, 0x00, 0x00},
	{0x8B, 0x00, 0x00}, {0x8B, 0x00, 0x00}, {0x8B, 0x00, 0x00}, {0xFF, 0x00, 0x00},
	{0xFF, 0xA5, 0x00}, {0xFF, 0xFF, 0xFF}, {0xFF, 0xA5, 0x00}, {0xFF, 0x00, 0x00},
}

var Forest = Palette{
	{0x00, 0x64, 0x00}, {0x00, 0x64, 0x00}, {0x55, 0x6B, 0x2F}, {0x00, 0x64, 0x00},
	{0x00, 0x80, 0x00}, {0x22, 0x8B, 0x22}, {0x6B, 0x8E, 0x23}, {0x00, 0x80, 0x00},
	{0x2E, 0x8B, 0x57}, {0x66, 0xCD, 0xAA}, {0x32, 0xCD, 0x32}, {0x9A, 0xCD, 0x32},
	{0x90, 0xEE, 0x90}, {0x7C, 0xFC, 0x00}, {0x66, 0xCD, 0xAA}, {0x22, 0x8B, 0x22},
}

var Party = Palette{
	{0x55, 0x00, 0xAB}, {0x84, 0x00, 0x7C}, {0xB5, 0x00, 0x4B}, {0xE5, 0x00, 0x1B},
	{0xE8, 0x17, 0x00}, {0xB8, 0x47, 0x00}, {0xAB, 0x77, 0x00}, {0xAB, 0xAB, 0x00},
	{0xAB, 0x55, 0x00}, {0xDD, 0x22, 0x00}, {0xF2, 0x00, 0x0E}, {0xC2, 0x00, 0x3E},
	{0x6F, 0x00, 0x71}, {0x07, 0x00, 0xA2}, {0x00, 0x22, 0xD3}, {0x00, 0x56, 0xF3},
}

var presets = []Palette{Rainbow, RainbowStripe, Ocean, Cloud, Lava, Forest, Party}

// PresetByID renvoie la palette prédéfinie demandée.
// Un identifiant hors plage retombe sur Rainbow, ce n'est pas une erreur :
// la lampe doit toujours afficher quelque chose de plausible.
func PresetByID(id int) Palette {
	if id < 0 || id >= len(presets) {
		return Rainbow
	}
	return presets[id]
}

// PresetCount : nombre de palettes prédéfinies.
func PresetCount() int { return len(presets) }
