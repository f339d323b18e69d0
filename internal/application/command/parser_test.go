package command

import (
	"testing"

	"lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

func TestParseMode(t *testing.T) {
	p := NewParser()
	cmd, err := p.Parse([]byte("e:2"))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Mode == nil || *cmd.Mode != command.ModeFire {
		t.Fatalf("mode = %v, attendu fire", cmd.Mode)
	}
	if _, err := p.Parse([]byte("e:7")); err == nil {
		t.Fatal("un mode hors plage doit être rejeté")
	}
}

func TestParsePalette(t *testing.T) {
	p := NewParser()
	cmd, err := p.Parse([]byte("p:4"))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.PaletteID == nil || *cmd.PaletteID != 4 {
		t.Fatalf("palette = %v, attendu 4", cmd.PaletteID)
	}
	if _, err := p.Parse([]byte("p:8")); err == nil {
		t.Fatal("une palette inexistante doit être rejetée")
	}
}

func TestParseSolidColor(t *testing.T) {
	p := NewParser()
	cmd, err := p.Parse([]byte{'c', ':', 10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	if cmd.SolidRGB == nil || *cmd.SolidRGB != (render.RGB{R: 10, G: 20, B: 30}) {
		t.Fatalf("couleur = %v", cmd.SolidRGB)
	}
	if _, err := p.Parse([]byte{'c', ':', 10, 20}); err == nil {
		t.Fatal("une couleur incomplète doit être rejetée")
	}
}

func TestParseBrightnessAndDirection(t *testing.T) {
	p := NewParser()
	cmd, err := p.Parse([]byte{'b', ':', 200})
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Brightness == nil || *cmd.Brightness != 200 {
		t.Fatalf("luminosité = %v", cmd.Brightness)
	}

	cmd, err = p.Parse([]byte("d:1"))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Direction == nil || !*cmd.Direction {
		t.Fatal("direction attendue: true")
	}
}

func TestParseExternalFrame(t *testing.T) {
	p := NewParser()
	payload := append([]byte("f:"), 1, 2, 3, 4, 5, 6)
	cmd, err := p.Parse(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmd.Frame) != 2 || cmd.Frame[1] != (render.RGB{R: 4, G: 5, B: 6}) {
		t.Fatalf("frame = %v", cmd.Frame)
	}
	if _, err := p.Parse([]byte{'f', ':', 1, 2}); err == nil {
		t.Fatal("une frame non multiple de 3 doit être rejetée")
	}
}

func TestParseWholePalette(t *testing.T) {
	p := NewParser()
	payload := make([]byte, 2+48)
	payload[0], payload[1] = 'g', ':'
	for i := 0; i < 48; i++ {
		payload[2+i] = byte(i)
	}
	cmd, err := p.Parse(payload)
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Palette == nil || cmd.Palette[3] != (render.RGB{R: 9, G: 10, B: 11}) {
		t.Fatalf("palette mal décodée: %v", cmd.Palette)
	}
}

func TestParseGarbage(t *testing.T) {
	p := NewParser()
	for _, payload := range [][]byte{nil, {}, []byte("x:1"), []byte("e1"), []byte("e")} {
		if _, err := p.Parse(payload); err == nil {
			t.Errorf("charge utile %q acceptée à tort", payload)
		}
	}
}
