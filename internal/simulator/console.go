// internal/simulator/console.go
package simulator

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

// Console injecte des commandes de test dans le moteur sans passer par
// le broker : couleurs unies, palettes, feu, vague. Pratique pour
// vérifier un montage sans infrastructure réseau.
type Console struct {
	cmdOut chan<- command.Command
	leds   int // longueur du plus grand ruban, pour les frames externes

	mu              sync.Mutex
	cancelCurrentOp context.CancelFunc
}

func NewConsole(cmdOut chan<- command.Command, leds int) *Console {
	log.Printf("Console: initialisée pour %d LEDs.", leds)
	return &Console{cmdOut: cmdOut, leds: leds}
}

func (c *Console) stopCurrentOperation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelCurrentOp != nil {
		c.cancelCurrentOp()
		c.cancelCurrentOp = nil
		log.Println("Console: opération précédente arrêtée.")
	}
}

// Run est le point d'entrée pour les commandes tapées au clavier.
func (c *Console) Run(cmd string) {
	c.stopCurrentOperation()

	switch cmd {
	case "white":
		c.sendSolid(255, 255, 255)
	case "red":
		c.sendSolid(30, 0, 0)
	case "green":
		c.sendSolid(0, 30, 0)
	case "blue":
		c.sendSolid(0, 0, 30)
	case "black", "off":
		c.sendSolid(0, 0, 0)
	case "fire":
		c.sendMode(command.ModeFire)
	case "rainbow":
		c.sendPalette(0)
	case "ocean":
		c.sendPalette(2)
	case "lava":
		c.sendPalette(4)
	case "forest":
		c.sendPalette(5)
	case "party":
		c.sendPalette(6)
	case "wave":
		c.startWaveAnimation()
	case "stop":
		c.sendMode(command.ModePalette)
	default:
		fmt.Printf("Commande inconnue '%s'. Tapez 'help'.\n", cmd)
	}
}

func (c *Console) ShowHelp() {
	fmt.Println("Commandes disponibles :")
	fmt.Println("  white|red|green|blue|off  - couleur unie")
	fmt.Println("  rainbow|ocean|lava|forest|party - palette prédéfinie")
	fmt.Println("  fire    - simulation de feu")
	fmt.Println("  wave    - animation de vague (frames externes)")
	fmt.Println("  stop    - retour au défilement de palette")
	fmt.Println("  quit    - quitte le programme")
}

func (c *Console) Stop() {
	c.stopCurrentOperation()
}

func (c *Console) sendMode(m command.Mode) {
	c.cmdOut <- command.Command{Mode: &m}
}

func (c *Console) sendPalette(id int) {
	m := command.ModePalette
	c.cmdOut <- command.Command{Mode: &m, PaletteID: &id}
}

func (c *Console) sendSolid(r, g, b byte) {
	m := command.ModeSolid
	rgb := render.RGB{R: r, G: g, B: b}
	c.cmdOut <- command.Command{Mode: &m, SolidRGB: &rgb}
}

// startWaveAnimation fait passer le moteur en mode externe et streame
// des frames calculées ici, jusqu'à la prochaine commande.
func (c *Console) startWaveAnimation() {
	c.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelCurrentOp = cancel
	c.mu.Unlock()

	c.sendMode(command.ModeExternal)

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		position := 0.0

		log.Println("Console: démarrage de l'animation de vague.")
		for {
			select {
			case <-ticker.C:
				position += 0.02
				if position > 1.0 {
					position = 0.0
				}
				c.cmdOut <- command.Command{Frame: c.waveFrame(position, 0.3, 255, 100, 0)}

			case <-ctx.Done():
				log.Println("Console: arrêt de l'animation de vague.")
				// Une dernière frame noire pour nettoyer le ruban.
				c.cmdOut <- command.Command{Frame: make([]render.RGB, c.leds)}
				return
			}
		}
	}()
}

// waveFrame : une bosse lumineuse de largeur donnée qui se déplace le
// long du ruban, intensité maximale au centre.
func (c *Console) waveFrame(position, width float64, r, g, b byte) []render.RGB {
	frame := make([]render.RGB, c.leds)
	if c.leds < 2 {
		frame[0] = render.RGB{R: r, G: g, B: b}
		return frame
	}
	for i := range frame {
		pixelPos := float64(i) / float64(c.leds-1)
		distance := math.Abs(pixelPos - position)
		var intensity float64
		if distance <= width/2 {
			intensity = 1.0 - (distance / (width / 2))
		}
		frame[i] = render.RGB{
			R: byte(float64(r) * intensity),
			G: byte(float64(g) * intensity),
			B: byte(float64(b) * intensity),
		}
	}
	return frame
}
