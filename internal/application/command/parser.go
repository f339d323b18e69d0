package command

import (
	"fmt"

	"lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

// Parser décode les charges utiles du topic de contrôle.
// Format hérité du firmware : un octet d'opcode, ':', puis les
// arguments bruts à partir de l'octet 2.
//
//	e:<0-3>          mode actif
//	p:<0-6>          palette prédéfinie
//	c:RGB            couleur unie (3 octets bruts)
//	b:B              luminosité (1 octet brut)
//	d:<0|1>          sens de la flamme
//	f:RGBRGB...      frame externe complète (3 octets par pixel)
//	g:48 octets      palette complète (16 x RGB)
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(payload []byte) (command.Command, error) {
	var cmd command.Command

	if len(payload) < 2 || payload[1] != ':' {
		return cmd, fmt.Errorf("charge utile trop courte ou séparateur absent (%d octets)", len(payload))
	}
	args := payload[2:]

	switch payload[0] {
	case 'e':
		if len(args) < 1 || args[0] < '0' || args[0] > '3' {
			return cmd, fmt.Errorf("mode invalide")
		}
		mode := command.Mode(args[0] - '0')
		cmd.Mode = &mode

	case 'p':
		if len(args) < 1 || args[0] < '0' || args[0] > '9' {
			return cmd, fmt.Errorf("identifiant de palette invalide")
		}
		id := int(args[0] - '0')
		if id >= render.PresetCount() {
			return cmd, fmt.Errorf("palette inconnue: %d", id)
		}
		cmd.PaletteID = &id

	case 'c':
		if len(args) < 3 {
			return cmd, fmt.Errorf("couleur incomplète: %d octets", len(args))
		}
		rgb := render.RGB{R: args[0], G: args[1], B: args[2]}
		cmd.SolidRGB = &rgb

	case 'b':
		if len(args) < 1 {
			return cmd, fmt.Errorf("luminosité absente")
		}
		b := args[0]
		cmd.Brightness = &b

	case 'd':
		if len(args) < 1 || (args[0] != '0' && args[0] != '1') {
			return cmd, fmt.Errorf("direction invalide")
		}
		dir := args[0] == '1'
		cmd.Direction = &dir

	case 'f':
		if len(args) == 0 || len(args)%3 != 0 {
			return cmd, fmt.Errorf("frame externe mal dimensionnée: %d octets", len(args))
		}
		frame := make([]render.RGB, len(args)/3)
		for i := range frame {
			frame[i] = render.RGB{R: args[i*3], G: args[i*3+1], B: args[i*3+2]}
		}
		cmd.Frame = frame

	case 'g':
		pal, err := render.PaletteFromBytes(args)
		if err != nil {
			return cmd, err
		}
		cmd.Palette = &pal

	default:
		return cmd, fmt.Errorf("opcode inconnu: %q", payload[0])
	}

	return cmd, nil
}
