package command

import "net"

// RawPacket est une charge utile de contrôle reçue en UDP, pas encore
// décodée.
type RawPacket struct {
	Data []byte
	From *net.UDPAddr
}
