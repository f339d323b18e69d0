package render

// HeatColor transforme une température 8 bits en couleur de corps noir :
// noir → rouge → jaune → blanc. Trois segments linéaires de 85 valeurs,
// la luminance perçue ne fait que croître.
//   [0, 85)    : le rouge monte
//   [85, 170)  : le vert monte (rouge plein)
//   [170, 255] : le bleu monte (rouge et vert pleins)
func HeatColor(heat byte) RGB {
	switch {
	case heat < 85:
		return RGB{R: heat * 3}
	case heat < 170:
		return RGB{R: 255, G: (heat - 85) * 3}
	default:
		return RGB{R: 255, G: 255, B: (heat - 170) * 3}
	}
}
