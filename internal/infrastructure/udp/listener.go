// internal/infrastructure/udp/listener.go
package udp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"lampeMeteo/internal/domain/command"
)

// maxPacketSize couvre largement la plus grosse charge utile possible,
// une frame externe complète ("f:" + 3 octets par pixel).
const maxPacketSize = 2048

// Listener reçoit les commandes de contrôle en UDP local, même format
// que le topic MQTT. Utile sur un réseau sans broker.
type Listener struct {
	conn       *net.UDPConn
	packetChan chan<- command.RawPacket
}

func NewListener(port int, packetChan chan<- command.RawPacket) (*Listener, error) {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("impossible de résoudre l'adresse UDP: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("impossible d'écouter sur le port %d: %w", port, err)
	}

	log.Printf("Infrastructure UDP: listener prêt et à l'écoute sur le port %d", port)

	return &Listener{
		conn:       conn,
		packetChan: packetChan,
	}, nil
}

// Start prend un contexte pour un arrêt propre.
func (l *Listener) Start(ctx context.Context) {
	go func() {
		// Goroutine fille qui attend l'annulation du contexte et ferme
		// la connexion, ce qui débloque le ReadFromUDP ci-dessous.
		go func() {
			<-ctx.Done()
			l.conn.Close()
		}()

		buffer := make([]byte, maxPacketSize)
		for {
			n, remoteAddr, err := l.conn.ReadFromUDP(buffer)
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					log.Println("Listener UDP: connexion fermée, arrêt de la goroutine d'écoute.")
					return // chemin de sortie normal
				}
				log.Printf("Erreur de lecture UDP: %v", err)
				continue
			}

			packetCopy := make([]byte, n)
			copy(packetCopy, buffer[:n])

			select {
			case l.packetChan <- command.RawPacket{Data: packetCopy, From: remoteAddr}:
			case <-ctx.Done():
				return
			}
		}
	}()
}
