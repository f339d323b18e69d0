package render

import "fmt"

// PaletteSize : une palette est toujours un dégradé de 16 couleurs
// réparties uniformément sur le domaine 0-255 (16 cases de 16 positions).
const PaletteSize = 16

// Palette est un dégradé cyclique de 16 couleurs.
// Remplaçable en bloc, jamais modifiée pendant un rendu.
type Palette [PaletteSize]RGB

// BlendMode contrôle le passage d'une couleur de la palette à la suivante.
type BlendMode int

const (
	// NoBlend : on prend la couleur de la case, sans interpolation.
	NoBlend BlendMode = iota
	// LinearBlend : interpolation linéaire canal par canal entre
	// les deux couleurs qui bornent la position.
	LinearBlend
)

// PaletteFromBytes reconstruit une palette depuis 48 octets (16 x R,G,B).
// C'est le format binaire servi par l'endpoint distant (weatherlamp.bin).
func PaletteFromBytes(data []byte) (Palette, error) {
	var p Palette
	if len(data) < PaletteSize*3 {
		return p, fmt.Errorf("palette incomplète: %d octets reçus, %d attendus", len(data), PaletteSize*3)
	}
	for i := 0; i < PaletteSize; i++ {
		p[i] = RGB{R: data[i*3], G: data[i*3+1], B: data[i*3+2]}
	}
	return p, nil
}

// ColorAt résout une position 0-255 dans le dégradé.
// La position est découpée en case (4 bits hauts) et offset (4 bits bas).
// En LinearBlend, un offset de 0 rend exactement la couleur de la case :
// pas de discontinuité aux frontières.
func (p Palette) ColorAt(position byte, brightness byte, blend BlendMode) RGB {
	hi := position >> 4
	lo := position & 0x0F

	c := p[hi]
	if blend == LinearBlend && lo != 0 {
		next := p[(hi+1)&0x0F] // la palette boucle sur elle-même
		frac := int(lo) * 16
		c = RGB{
			R: lerp8(c.R, next.R, frac),
			G: lerp8(c.G, next.G, frac),
			B: lerp8(c.B, next.B, frac),
		}
	}
	return c.Scale(brightness)
}
