package command

import (
	"log"

	domaincommand "lampeMeteo/internal/domain/command"
)

// Service fait le pont entre les paquets de contrôle bruts (UDP) et le
// moteur : décodage, puis transfert. Les paquets invalides sont loggués
// et jetés, jamais fatals.
type Service struct {
	rawPacketChan <-chan domaincommand.RawPacket
	parser        *Parser
	cmdOut        chan<- domaincommand.Command
}

func NewService(rawPacketChan <-chan domaincommand.RawPacket, parser *Parser, cmdOut chan<- domaincommand.Command) *Service {
	return &Service{
		rawPacketChan: rawPacketChan,
		parser:        parser,
		cmdOut:        cmdOut,
	}
}

func (s *Service) Start() {
	go func() {
		log.Println("Application commande: service démarré.")

		for rawPkt := range s.rawPacketChan {
			cmd, err := s.parser.Parse(rawPkt.Data)
			if err != nil {
				log.Printf("Commande UDP rejetée (de %v): %v", rawPkt.From, err)
				continue
			}
			s.cmdOut <- cmd
		}
	}()
}
