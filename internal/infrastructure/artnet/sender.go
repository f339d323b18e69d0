package artnet

import (
	"bytes"
	"context"
	"log"
	"net"
	"time"

	domainArtnet "lampeMeteo/internal/domain/artnet"
)

const tickDuration = 20 * time.Millisecond // aligné sur les 50 FPS du moteur
const refreshRate = 50                     // force un envoi complet environ une fois par seconde

// Sender pousse les frames DMX vers les contrôleurs en UDP.
// Il n'envoie que ce qui a changé (diffing), avec un rafraîchissement
// périodique complet pour les contrôleurs qui redémarrent.
type Sender struct {
	conns          map[int]*net.UDPConn
	headerCache    map[int][]byte
	ticker         *time.Ticker
	lastSentFrames map[int]*[domainArtnet.DMXDataSize]byte
	refreshCounter int
}

func NewSender(universeIP map[int]string) (*Sender, error) {
	s := &Sender{
		conns:          make(map[int]*net.UDPConn),
		headerCache:    make(map[int][]byte),
		ticker:         time.NewTicker(tickDuration),
		lastSentFrames: make(map[int]*[domainArtnet.DMXDataSize]byte),
	}

	log.Println("ArtNet Sender: initialisation et pré-calcul des en-têtes...")
	for u, ip := range universeIP {
		// L'en-tête d'un univers ne change jamais, on le calcule une
		// seule fois ici plutôt qu'à chaque frame.
		s.headerCache[u] = domainArtnet.BuildHeader(u)

		addr := &net.UDPAddr{IP: net.ParseIP(ip), Port: 6454}
		conn, err := net.DialUDP("udp", nil, addr)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.conns[u] = conn
	}
	log.Printf("ArtNet Sender: initialisé pour %d univers.", len(universeIP))
	return s, nil
}

func (s *Sender) Run(ctx context.Context, in <-chan domainArtnet.FrameMessage) {
	log.Println("ArtNet Sender: démarrage de la goroutine d'envoi (diffing actif).")

	// On n'envoie pas les frames au fil de l'eau : on garde la plus
	// récente par univers et on expédie au tick. Si dix frames arrivent
	// pour l'univers 5 entre deux ticks, seule la dernière part.
	latestFrames := make(map[int]*[domainArtnet.DMXDataSize]byte)

	for {
		select {
		case <-ctx.Done():
			s.Close()
			log.Println("ArtNet Sender: goroutine d'envoi terminée.")
			return

		case msg := <-in:
			if _, ok := latestFrames[msg.Universe]; !ok {
				latestFrames[msg.Universe] = new([domainArtnet.DMXDataSize]byte)
			}
			*latestFrames[msg.Universe] = msg.Data

		case <-s.ticker.C:
			s.refreshCounter++
			isForceRefresh := s.refreshCounter >= refreshRate
			if isForceRefresh {
				s.refreshCounter = 0
			}

			var packetsToSend []struct {
				conn   *net.UDPConn
				packet []byte
			}

			for universe, currentData := range latestFrames {
				lastData, found := s.lastSentFrames[universe]

				// Envoi seulement si c'est la première frame de cet
				// univers ou si les données ont changé.
				if isForceRefresh || !found || !bytes.Equal(lastData[:], currentData[:]) {
					conn, ok := s.conns[universe]
					if !ok {
						continue
					}
					header := s.headerCache[universe]

					packet := make([]byte, 18+domainArtnet.DMXDataSize)
					copy(packet[0:18], header)
					copy(packet[18:], currentData[:])

					packetsToSend = append(packetsToSend, struct {
						conn   *net.UDPConn
						packet []byte
					}{conn, packet})

					if !found {
						s.lastSentFrames[universe] = new([domainArtnet.DMXDataSize]byte)
					}
					copy(s.lastSentFrames[universe][:], currentData[:])
				}
			}

			// Envoi étalé sur le tick pour ne pas rafaler le réseau
			// quand beaucoup d'univers changent en même temps.
			if len(packetsToSend) > 0 {
				pacingDuration := (6 * time.Millisecond) / time.Duration(len(packetsToSend))
				for _, p := range packetsToSend {
					if _, err := p.conn.Write(p.packet); err != nil {
						log.Printf("ArtNet Sender: erreur d'envoi vers %s: %v", p.conn.RemoteAddr(), err)
					}
					time.Sleep(pacingDuration)
				}
			}
		}
	}
}

func (s *Sender) Close() {
	s.ticker.Stop()
	for _, conn := range s.conns {
		if conn != nil {
			conn.Close()
		}
	}
	log.Println("ArtNet Sender: connexions UDP fermées.")
}
