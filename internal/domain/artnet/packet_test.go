package artnet

import (
	"bytes"
	"testing"
)

func TestBuildHeader(t *testing.T) {
	h := BuildHeader(260) // 0x0104 : vérifie l'ordre petit-boutiste
	if len(h) != 18 {
		t.Fatalf("en-tête de %d octets, attendu 18", len(h))
	}
	if !bytes.Equal(h[0:8], []byte("Art-Net\x00")) {
		t.Errorf("signature incorrecte: %q", h[0:8])
	}
	if h[8] != 0x00 || h[9] != 0x50 {
		t.Errorf("OpCode incorrect: %#x %#x", h[8], h[9])
	}
	if h[14] != 0x04 || h[15] != 0x01 {
		t.Errorf("univers mal encodé: %#x %#x", h[14], h[15])
	}
	if h[16] != 0x02 || h[17] != 0x00 {
		t.Errorf("longueur mal encodée: %#x %#x", h[16], h[17])
	}
}
