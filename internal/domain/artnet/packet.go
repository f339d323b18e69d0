package artnet

import "encoding/binary"

// BuildHeader construit l'en-tête ArtDmx de 18 octets pour un univers.
// Calculé une seule fois par univers puis mis en cache par le sender.
func BuildHeader(universe int) []byte {
	header := make([]byte, 18)
	copy(header[0:8], []byte("Art-Net\x00"))
	binary.LittleEndian.PutUint16(header[8:10], 0x5000)            // OpCode ArtDmx
	binary.BigEndian.PutUint16(header[10:12], 14)                  // Version du protocole
	header[12] = 0                                                 // Sequence (non utilisé)
	header[13] = 0                                                 // Physical (non utilisé)
	binary.LittleEndian.PutUint16(header[14:16], uint16(universe)) // Numéro d'univers
	binary.BigEndian.PutUint16(header[16:18], DMXDataSize)         // Longueur des données
	return header
}
