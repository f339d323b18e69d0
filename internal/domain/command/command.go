package command

import "lampeMeteo/internal/domain/render"

// Mode identifie le renderer actif pour un tick donné.
type Mode int

const (
	// ModePalette : défilement du dégradé courant.
	ModePalette Mode = iota
	// ModeSolid : remplissage uni avec la dernière couleur reçue.
	ModeSolid
	// ModeFire : simulation de feu.
	ModeFire
	// ModeExternal : recopie de la dernière frame reçue de l'extérieur.
	ModeExternal
)

func (m Mode) String() string {
	switch m {
	case ModePalette:
		return "palette"
	case ModeSolid:
		return "solid"
	case ModeFire:
		return "fire"
	case ModeExternal:
		return "external"
	default:
		return "inconnu"
	}
}

// Command est le contrat de sortie du décodage (broker, feed HTTP ou
// console) vers le moteur. Seuls les champs non nil sont appliqués,
// une commande peut donc n'en porter qu'un seul.
type Command struct {
	Mode       *Mode
	PaletteID  *int
	Palette    *render.Palette
	SolidRGB   *render.RGB
	Brightness *byte
	Direction  *bool
	Frame      []render.RGB
}
