package serial

import (
	"context"
	"io"
	"log"

	tarm "github.com/tarm/serial"

	domainArtnet "lampeMeteo/internal/domain/artnet"
)

// frameMarker ouvre chaque trame série, le microcontrôleur se
// resynchronise dessus.
const frameMarker = 0x84

// Sender pilote un ruban branché en série plutôt qu'en réseau.
// Protocole : un octet 0x84, puis G,R,B par LED, chaque canal ramené
// sur 7 bits avec le bit haut forcé (les octets de données ne peuvent
// donc jamais être confondus avec le marqueur).
type Sender struct {
	port io.WriteCloser
}

func NewSender(portName string, baud int) (*Sender, error) {
	c := &tarm.Config{Name: portName, Baud: baud}
	port, err := tarm.OpenPort(c)
	if err != nil {
		return nil, err
	}
	log.Printf("Serial Sender: port '%s' ouvert à %d bauds.", portName, baud)
	return &Sender{port: port}, nil
}

func (s *Sender) Run(ctx context.Context, in <-chan domainArtnet.FrameMessage) {
	log.Println("Serial Sender: démarrage de la goroutine d'envoi.")
	for {
		select {
		case <-ctx.Done():
			s.Close()
			log.Println("Serial Sender: goroutine d'envoi terminée.")
			return

		case msg := <-in:
			buf := make([]byte, 1+msg.Length)
			buf[0] = frameMarker
			for i := 0; i+2 < msg.Length; i += 3 {
				r, g, b := msg.Data[i], msg.Data[i+1], msg.Data[i+2]
				buf[1+i] = map7(g) | 0x80
				buf[1+i+1] = map7(r) | 0x80
				buf[1+i+2] = map7(b) | 0x80
			}
			if _, err := s.port.Write(buf); err != nil {
				log.Printf("Serial Sender: erreur d'écriture: %v", err)
			}
		}
	}
}

func (s *Sender) Close() {
	if s.port != nil {
		s.port.Close()
		log.Println("Serial Sender: port fermé.")
	}
}

// map7 ramène un canal 0-255 sur 0-127.
func map7(in byte) byte {
	return byte(int(in) * 127 / 255)
}
