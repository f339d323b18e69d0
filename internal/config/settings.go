// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings regroupe tout ce qui n'est pas la géométrie des rubans :
// le broker, le feed de palettes, la cadence d'animation et le driver
// de sortie. Chargé une seule fois au démarrage.
type Settings struct {
	Broker BrokerSettings `toml:"broker"`
	Lamp   LampSettings   `toml:"lamp"`
	Feed   FeedSettings   `toml:"feed"`
	Output OutputSettings `toml:"output"`
}

type BrokerSettings struct {
	URL          string `toml:"url"`
	ClientID     string `toml:"client_id"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	ControlTopic string `toml:"control_topic"`
	PingTopic    string `toml:"ping_topic"`
	PingSeconds  int    `toml:"ping_s"`
}

type LampSettings struct {
	FPS        int    `toml:"fps"`
	Brightness int    `toml:"brightness"`
	Blend      string `toml:"blend"`  // "linear" ou "none"
	Stride     int    `toml:"stride"` // 0 : étaler un cycle complet sur le ruban
	Step       int    `toml:"step"`
}

type FeedSettings struct {
	URL             string `toml:"url"`
	IntervalSeconds int    `toml:"interval_s"`
}

type OutputSettings struct {
	Driver     string `toml:"driver"` // "artnet" ou "serial"
	SerialPort string `toml:"serial_port"`
	SerialBaud int    `toml:"serial_baud"`
}

// DefaultSettings : des valeurs qui permettent de démarrer sans fichier,
// broker désactivé (URL vide) et sortie Art-Net.
func DefaultSettings() Settings {
	return Settings{
		Broker: BrokerSettings{
			ClientID:     "lampeMeteo",
			ControlTopic: "led/control",
			PingTopic:    "led/ping",
			PingSeconds:  10,
		},
		Lamp: LampSettings{
			FPS:        50,
			Brightness: 200,
			Blend:      "linear",
			Stride:     3,
			Step:       1,
		},
		Feed: FeedSettings{
			IntervalSeconds: 10,
		},
		Output: OutputSettings{
			Driver:     "artnet",
			SerialBaud: 115200,
		},
	}
}

// LoadSettings lit le fichier TOML et complète les champs absents avec
// les valeurs par défaut. Fichier absent = valeurs par défaut.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Settings: fichier '%s' absent, valeurs par défaut.", path)
			return s, nil
		}
		return s, fmt.Errorf("impossible de lire '%s': %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Printf("Settings: clés inconnues ignorées dans '%s': %v", path, undecoded)
	}

	if s.Lamp.FPS <= 0 {
		s.Lamp.FPS = 50
	}
	if s.Lamp.Brightness < 0 {
		s.Lamp.Brightness = 0
	}
	if s.Lamp.Brightness > 255 {
		s.Lamp.Brightness = 255
	}
	if s.Broker.PingSeconds <= 0 {
		s.Broker.PingSeconds = 10
	}
	if s.Feed.IntervalSeconds <= 0 {
		s.Feed.IntervalSeconds = 10
	}
	switch s.Output.Driver {
	case "artnet", "serial":
	default:
		return s, fmt.Errorf("driver de sortie inconnu: '%s'", s.Output.Driver)
	}

	return s, nil
}
