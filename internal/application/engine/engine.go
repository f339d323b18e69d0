package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"lampeMeteo/internal/config"
	"lampeMeteo/internal/domain/artnet"
	"lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

// DestinationChannel reçoit les frames prêtes à partir vers le driver.
type DestinationChannel chan<- artnet.FrameMessage

// stripState : tout l'état d'animation d'un ruban. Propriété exclusive
// de la goroutine du moteur, aucune synchronisation nécessaire.
type stripState struct {
	cfg      config.Strip
	buf      []render.RGB
	animator *render.PaletteAnimator
	fire     *render.FireSim

	mode       command.Mode
	solid      render.RGB
	external   []render.RGB
	brightness byte
}

// Service est la boucle de frames : un ticker à la cadence configurée,
// un renderer par ruban, et les commandes appliquées entre deux ticks.
type Service struct {
	strips    []*stripState
	commandIn <-chan command.Command
	dest      DestinationChannel
	tick      time.Duration
}

// NewService valide la configuration et construit l'état de chaque
// ruban une fois pour toutes. Après ça, un tick ne peut plus échouer.
func NewService(cfg *config.Config, settings config.Settings, commandIn <-chan command.Command, dest DestinationChannel) (*Service, error) {
	blend := render.LinearBlend
	if settings.Lamp.Blend == "none" {
		blend = render.NoBlend
	}
	brightness := byte(settings.Lamp.Brightness)

	var strips []*stripState
	for _, sc := range cfg.Strips {
		stride := byte(settings.Lamp.Stride)
		if stride == 0 {
			// Pas de réglage : on étale un cycle complet sur le ruban.
			stride = render.SpreadStride(sc.Leds)
		}

		animator, err := render.NewPaletteAnimator(sc.Leds, render.Rainbow, blend, stride, byte(settings.Lamp.Step), brightness)
		if err != nil {
			return nil, fmt.Errorf("ruban '%s': %w", sc.Name, err)
		}
		fire, err := render.NewFireSim(sc.Leds, sc.Cooling, sc.Sparking, sc.Reversed, render.NewSeededSource(time.Now().UnixNano()+int64(sc.Universe)))
		if err != nil {
			return nil, fmt.Errorf("ruban '%s': %w", sc.Name, err)
		}

		strips = append(strips, &stripState{
			cfg:        sc,
			buf:        make([]render.RGB, sc.Leds),
			animator:   animator,
			fire:       fire,
			mode:       command.ModePalette,
			brightness: brightness,
		})
	}
	if len(strips) == 0 {
		return nil, fmt.Errorf("aucun ruban configuré")
	}

	return &Service{
		strips:    strips,
		commandIn: commandIn,
		dest:      dest,
		tick:      time.Second / time.Duration(settings.Lamp.FPS),
	}, nil
}

// Start lance la goroutine du moteur. Rendu puis envoi, jamais les deux
// en même temps : le driver lit les frames sur le canal, après coup.
func (s *Service) Start(ctx context.Context) {
	go func() {
		log.Printf("Moteur: service démarré (%d ruban(s), tick %v).", len(s.strips), s.tick)
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Moteur: arrêt de la boucle de frames.")
				return

			case cmd := <-s.commandIn:
				s.apply(cmd)

			case <-ticker.C:
				s.renderTick()
			}
		}
	}()
}

// apply répercute une commande sur tous les rubans. Seuls les champs
// renseignés sont pris en compte.
func (s *Service) apply(cmd command.Command) {
	for _, st := range s.strips {
		if cmd.Mode != nil {
			st.mode = *cmd.Mode
			log.Printf("Moteur: ruban '%s' passe en mode %s.", st.cfg.Name, st.mode)
		}
		if cmd.PaletteID != nil {
			st.animator.SetPalette(render.PresetByID(*cmd.PaletteID))
			log.Printf("Moteur: ruban '%s' prend la palette %d.", st.cfg.Name, *cmd.PaletteID)
		}
		if cmd.Palette != nil {
			st.animator.SetPalette(*cmd.Palette)
			log.Printf("Moteur: ruban '%s' prend une palette externe.", st.cfg.Name)
		}
		if cmd.SolidRGB != nil {
			st.solid = *cmd.SolidRGB
		}
		if cmd.Brightness != nil {
			st.brightness = *cmd.Brightness
			st.animator.SetBrightness(st.brightness)
		}
		if cmd.Direction != nil {
			st.fire.SetReversed(*cmd.Direction)
		}
		if cmd.Frame != nil {
			st.external = cmd.Frame
		}
	}
}

// renderTick produit une frame par ruban et la pousse vers le driver.
func (s *Service) renderTick() {
	for _, st := range s.strips {
		switch st.mode {
		case command.ModePalette:
			st.animator.Render(st.buf)

		case command.ModeSolid:
			c := st.solid.Scale(st.brightness)
			for i := range st.buf {
				st.buf[i] = c
			}

		case command.ModeFire:
			st.fire.AdvanceFrame(st.buf)
			for i := range st.buf {
				st.buf[i] = st.buf[i].Scale(st.brightness)
			}

		case command.ModeExternal:
			// Recopie de la dernière frame reçue, noir au-delà.
			for i := range st.buf {
				st.buf[i] = render.RGB{}
			}
			for i := 0; i < len(st.external) && i < len(st.buf); i++ {
				st.buf[i] = st.external[i].Scale(st.brightness)
			}
		}

		s.dest <- packFrame(st)
	}
}

// packFrame sérialise le buffer de pixels dans une frame DMX :
// le pixel i occupe les octets 3i à 3i+2.
func packFrame(st *stripState) artnet.FrameMessage {
	msg := artnet.FrameMessage{
		Universe: st.cfg.Universe,
		Length:   len(st.buf) * 3,
	}
	for i, c := range st.buf {
		msg.Data[i*3+0] = c.R
		msg.Data[i*3+1] = c.G
		msg.Data[i*3+2] = c.B
	}
	return msg
}
