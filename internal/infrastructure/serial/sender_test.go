package serial

import (
	"context"
	"testing"
	"time"

	domainArtnet "lampeMeteo/internal/domain/artnet"
)

type captureWriter struct {
	frames chan []byte
}

func (w *captureWriter) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	w.frames <- cp
	return len(p), nil
}

func (w *captureWriter) Close() error { return nil }

func TestRunEncodesFrames(t *testing.T) {
	w := &captureWriter{frames: make(chan []byte, 1)}
	s := &Sender{port: w}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan domainArtnet.FrameMessage, 1)
	go s.Run(ctx, in)

	msg := domainArtnet.FrameMessage{Universe: 0, Length: 6}
	copy(msg.Data[:6], []byte{255, 0, 128, 0, 255, 0})
	in <- msg

	select {
	case frame := <-w.frames:
		if frame[0] != frameMarker {
			t.Fatalf("marqueur = %#x, attendu %#x", frame[0], frameMarker)
		}
		// Pixel 0 : R=255 G=0 B=128, émis en G,R,B sur 7 bits + bit haut.
		if frame[1] != 0x80 || frame[2] != (127|0x80) || frame[3] != (63|0x80) {
			t.Fatalf("pixel 0 mal encodé: %#x %#x %#x", frame[1], frame[2], frame[3])
		}
		// Tous les octets de données portent le bit haut.
		for i, b := range frame[1:] {
			if b&0x80 == 0 {
				t.Fatalf("octet %d sans bit haut: %#x", i+1, b)
			}
		}
	case <-time.After(time.Second):
		t.Fatal("aucune trame émise")
	}
}
