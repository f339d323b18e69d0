package command

import (
	"testing"
	"time"

	domaincommand "lampeMeteo/internal/domain/command"
)

// Le service décode les paquets valides et jette les autres sans
// bloquer le flux.
func TestServiceForwardsValidCommands(t *testing.T) {
	rawChan := make(chan domaincommand.RawPacket, 4)
	cmdOut := make(chan domaincommand.Command, 4)

	svc := NewService(rawChan, NewParser(), cmdOut)
	svc.Start()

	rawChan <- domaincommand.RawPacket{Data: []byte("zzz")} // invalide
	rawChan <- domaincommand.RawPacket{Data: []byte("e:2")}
	close(rawChan)

	select {
	case cmd := <-cmdOut:
		if cmd.Mode == nil || *cmd.Mode != domaincommand.ModeFire {
			t.Fatalf("commande inattendue: %+v", cmd)
		}
	case <-time.After(time.Second):
		t.Fatal("aucune commande transmise")
	}

	select {
	case cmd := <-cmdOut:
		t.Fatalf("le paquet invalide ne doit rien produire, reçu %+v", cmd)
	case <-time.After(100 * time.Millisecond):
	}
}
