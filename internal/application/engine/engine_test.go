package engine

import (
	"testing"

	"lampeMeteo/internal/config"
	"lampeMeteo/internal/domain/artnet"
	"lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

func newTestService(t *testing.T, leds int) (*Service, chan artnet.FrameMessage) {
	t.Helper()
	cfg := &config.Config{
		Strips:     []config.Strip{{Name: "test", Leds: leds, Universe: 2, IP: "127.0.0.1", Cooling: 55, Sparking: 120}},
		UniverseIP: map[int]string{2: "127.0.0.1"},
	}
	settings := config.DefaultSettings()
	settings.Lamp.Brightness = 255

	dest := make(chan artnet.FrameMessage, 8)
	svc, err := NewService(cfg, settings, nil, dest)
	if err != nil {
		t.Fatal(err)
	}
	return svc, dest
}

func TestNewServiceRejectsEmptyConfig(t *testing.T) {
	dest := make(chan artnet.FrameMessage, 1)
	if _, err := NewService(&config.Config{}, config.DefaultSettings(), nil, dest); err == nil {
		t.Fatal("une configuration sans ruban doit être refusée")
	}
}

// Le mode par défaut est la palette : le premier tick doit produire une
// frame non noire, adressée au bon univers, avec la bonne longueur.
func TestRenderTickPaletteMode(t *testing.T) {
	svc, dest := newTestService(t, 10)
	svc.renderTick()

	msg := <-dest
	if msg.Universe != 2 {
		t.Errorf("univers = %d, attendu 2", msg.Universe)
	}
	if msg.Length != 30 {
		t.Errorf("longueur = %d, attendu 30", msg.Length)
	}
	allBlack := true
	for _, b := range msg.Data[:msg.Length] {
		if b != 0 {
			allBlack = false
			break
		}
	}
	if allBlack {
		t.Error("la palette par défaut ne doit pas produire une frame noire")
	}
	// Au-delà des pixels du ruban, la frame DMX reste à zéro.
	for i := msg.Length; i < artnet.DMXDataSize; i++ {
		if msg.Data[i] != 0 {
			t.Fatalf("octet %d non nul hors de la zone utile", i)
		}
	}
}

func TestSolidModeFillsUniformly(t *testing.T) {
	svc, dest := newTestService(t, 4)

	mode := command.ModeSolid
	rgb := render.RGB{R: 10, G: 20, B: 30}
	svc.apply(command.Command{Mode: &mode, SolidRGB: &rgb})
	svc.renderTick()

	msg := <-dest
	for i := 0; i < 4; i++ {
		if msg.Data[i*3] != 10 || msg.Data[i*3+1] != 20 || msg.Data[i*3+2] != 30 {
			t.Fatalf("pixel %d: %v", i, msg.Data[i*3:i*3+3])
		}
	}
}

// La luminosité commandée s'applique au remplissage uni.
func TestSolidModeHonorsBrightness(t *testing.T) {
	svc, dest := newTestService(t, 2)

	mode := command.ModeSolid
	rgb := render.RGB{R: 200, G: 100, B: 50}
	dim := byte(128)
	svc.apply(command.Command{Mode: &mode, SolidRGB: &rgb, Brightness: &dim})
	svc.renderTick()

	msg := <-dest
	if msg.Data[0] != 100 || msg.Data[1] != 50 || msg.Data[2] != 25 {
		t.Fatalf("pixel atténué: %v", msg.Data[:3])
	}
}

func TestExternalModePassthrough(t *testing.T) {
	svc, dest := newTestService(t, 4)

	mode := command.ModeExternal
	svc.apply(command.Command{Mode: &mode})
	svc.renderTick()
	msg := <-dest
	for i := 0; i < msg.Length; i++ {
		if msg.Data[i] != 0 {
			t.Fatal("sans frame externe, la sortie doit rester noire")
		}
	}

	// Une frame plus courte que le ruban : le reste demeure noir.
	svc.apply(command.Command{Frame: []render.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}})
	svc.renderTick()
	msg = <-dest
	if msg.Data[0] != 1 || msg.Data[5] != 6 {
		t.Fatalf("frame externe mal recopiée: %v", msg.Data[:6])
	}
	for i := 6; i < msg.Length; i++ {
		if msg.Data[i] != 0 {
			t.Fatal("les pixels non couverts doivent rester noirs")
		}
	}
}

func TestFireModeProducesRampColors(t *testing.T) {
	svc, dest := newTestService(t, 12)

	mode := command.ModeFire
	svc.apply(command.Command{Mode: &mode})
	for tick := 0; tick < 30; tick++ {
		svc.renderTick()
		msg := <-dest
		// Tout pixel de feu respecte l'ordre R >= G >= B de la rampe.
		for i := 0; i < 12; i++ {
			r, g, b := msg.Data[i*3], msg.Data[i*3+1], msg.Data[i*3+2]
			if r < g || g < b {
				t.Fatalf("tick %d: pixel %d hors rampe (%d,%d,%d)", tick, i, r, g, b)
			}
		}
	}
}

// Le changement de palette prend effet dès le tick suivant. Lava
// commence par du noir : phase 0, pas 3, le pixel 0 tombe pile sur la
// première couleur et le pixel 1 interpole vers le marron (0x80, 0, 0)
// avec un offset de 3/16.
func TestApplyPaletteCommand(t *testing.T) {
	svc, dest := newTestService(t, 8)

	id := 4
	svc.apply(command.Command{PaletteID: &id})
	svc.renderTick()
	msg := <-dest

	if msg.Data[0] != 0 || msg.Data[1] != 0 || msg.Data[2] != 0 {
		t.Errorf("pixel 0: %v, attendu noir (Lava[0])", msg.Data[:3])
	}
	if msg.Data[3] != 24 || msg.Data[4] != 0 || msg.Data[5] != 0 {
		t.Errorf("pixel 1: %v, attendu (24,0,0)", msg.Data[3:6])
	}
}
