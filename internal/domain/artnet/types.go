package artnet

import "fmt"

// DMXDataSize : charge utile maximale d'un univers DMX.
const DMXDataSize = 512

// FrameMessage transporte une frame complète d'un univers, du moteur
// d'animation vers le driver de sortie. Length indique le nombre
// d'octets réellement utiles (3 par pixel).
type FrameMessage struct {
	Universe int
	Length   int
	Data     [DMXDataSize]byte
}

func (m FrameMessage) String() string {
	return fmt.Sprintf("Frame [Univers: %d, %d octets utiles]", m.Universe, m.Length)
}
