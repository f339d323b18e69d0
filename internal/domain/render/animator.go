package render

import "fmt"

// PaletteAnimator fait défiler un dégradé le long du ruban.
// L'état (l'index de couleur) appartient à l'animateur et persiste
// d'une frame à l'autre ; le buffer de pixels appartient à l'appelant.
type PaletteAnimator struct {
	palette    Palette
	blend      BlendMode
	stride     byte // écart de position entre deux pixels voisins
	step       byte // avance de l'index par frame (vitesse de défilement)
	brightness byte
	index      byte // phase de l'animation, boucle modulo 256
}

// NewPaletteAnimator valide la configuration une fois pour toutes.
// Après construction, Render ne peut plus échouer.
func NewPaletteAnimator(n int, palette Palette, blend BlendMode, stride, step, brightness byte) (*PaletteAnimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("longueur de ruban invalide: %d", n)
	}
	if stride == 0 {
		stride = 1
	}
	return &PaletteAnimator{
		palette:    palette,
		blend:      blend,
		stride:     stride,
		step:       step,
		brightness: brightness,
	}, nil
}

// SpreadStride calcule le pas qui étale exactement un cycle complet
// du dégradé sur les n pixels du ruban (effet "arc-en-ciel étalé").
// L'autre réglage courant est une petite constante (effet chenillard).
func SpreadStride(n int) byte {
	if n <= 0 {
		return 1
	}
	s := 255 / n
	if s < 1 {
		s = 1
	}
	return byte(s)
}

// SetPalette remplace le dégradé en bloc, sans toucher à la phase.
func (a *PaletteAnimator) SetPalette(p Palette) { a.palette = p }

// SetBrightness ajuste la luminosité pour les frames suivantes.
func (a *PaletteAnimator) SetBrightness(b byte) { a.brightness = b }

// Render écrit une frame complète dans buf et avance la phase
// d'un pas, exactement une fois par appel, quelle que soit la
// longueur du buffer.
func (a *PaletteAnimator) Render(buf []RGB) {
	pos := a.index
	for i := range buf {
		buf[i] = a.palette.ColorAt(pos, a.brightness, a.blend)
		pos += a.stride // déborde volontairement modulo 256
	}
	a.index += a.step
}
