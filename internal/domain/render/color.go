package render

// RGB représente la couleur d'un pixel, un octet par canal.
// C'est le seul format qui circule entre les renderers et la sortie.
type RGB struct {
	R byte
	G byte
	B byte
}

// Scale applique la luminosité globale (0-255) sur les trois canaux.
// Division entière volontaire : à 255 la couleur est inchangée.
func (c RGB) Scale(brightness byte) RGB {
	if brightness == 255 {
		return c
	}
	return RGB{
		R: byte(int(c.R) * int(brightness) / 255),
		G: byte(int(c.G) * int(brightness) / 255),
		B: byte(int(c.B) * int(brightness) / 255),
	}
}

// lerp8 interpole entre a et b avec une fraction frac/256.
// frac doit rester dans [0, 256).
func lerp8(a, b byte, frac int) byte {
	return byte(int(a) + (int(b)-int(a))*frac/256)
}
