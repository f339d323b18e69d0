// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxLedsPerUniverse : 170 pixels RGB remplissent exactement les 510
// premiers octets d'un univers DMX. Un ruban = un univers.
const maxLedsPerUniverse = 170

// Strip décrit un ruban physique et les réglages de ses effets.
type Strip struct {
	Name     string
	Leds     int
	Universe int
	IP       string
	Reversed bool
	Cooling  byte
	Sparking byte
}

// Config est la table des rubans pilotés par la lampe.
type Config struct {
	Strips     []Strip
	UniverseIP map[int]string
}

// DefaultConfig : un seul ruban de 60 LEDs en local, utilisé quand le
// fichier de patch est absent. La lampe doit pouvoir démarrer sans rien.
func DefaultConfig() *Config {
	strips := []Strip{{
		Name:     "salon",
		Leds:     60,
		Universe: 0,
		IP:       "127.0.0.1",
		Cooling:  55,
		Sparking: 120,
	}}
	return &Config{
		Strips:     strips,
		UniverseIP: map[int]string{0: "127.0.0.1"},
	}
}

// Load lit la table des rubans depuis la première feuille du classeur.
// Colonnes attendues : Nom | LEDs | Univers | IP | Sens | Cooling | Sparking.
// Si le fichier n'existe pas, on retombe sur la configuration par défaut.
func Load(path string) (*Config, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Config: fichier '%s' absent, configuration par défaut.", path)
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("impossible d'ouvrir le fichier de patch '%s': %w", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("le fichier ne contient aucune feuille de calcul")
	}
	sheetName := sheetList[0]
	log.Printf("Config: lecture de la première feuille trouvée : '%s'", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("impossible de lire les lignes de la feuille '%s': %w", sheetName, err)
	}

	cfg := &Config{UniverseIP: make(map[int]string)}
	seenUniverse := make(map[int]string)

	for i, row := range rows {
		if i == 0 {
			continue // en-tête
		}
		if len(row) < 4 {
			log.Printf("Config: ligne %d ignorée (pas assez de colonnes)", i+1)
			continue
		}

		name := strings.TrimSpace(row[0])
		leds, errL := strconv.Atoi(strings.TrimSpace(row[1]))
		universe, errU := strconv.Atoi(strings.TrimSpace(row[2]))
		ip := strings.TrimSpace(row[3])

		if errL != nil || errU != nil || name == "" || ip == "" {
			log.Printf("Config: ligne %d ignorée (format invalide)", i+1)
			continue
		}
		if leds < 1 || leds > maxLedsPerUniverse {
			return nil, fmt.Errorf("ligne %d: %d LEDs hors de la plage 1-%d", i+1, leds, maxLedsPerUniverse)
		}
		if prev, ok := seenUniverse[universe]; ok {
			return nil, fmt.Errorf("ligne %d: univers %d déjà utilisé par '%s'", i+1, universe, prev)
		}
		seenUniverse[universe] = name

		strip := Strip{
			Name:     name,
			Leds:     leds,
			Universe: universe,
			IP:       ip,
			Cooling:  55,
			Sparking: 120,
		}
		if len(row) > 4 {
			strip.Reversed = strings.TrimSpace(row[4]) == "1"
		}
		if len(row) > 5 {
			if c, err := strconv.Atoi(strings.TrimSpace(row[5])); err == nil {
				strip.Cooling = clampByte(c, 20, 100)
			}
		}
		if len(row) > 6 {
			if s, err := strconv.Atoi(strings.TrimSpace(row[6])); err == nil {
				strip.Sparking = clampByte(s, 0, 255)
			}
		}

		cfg.Strips = append(cfg.Strips, strip)
		cfg.UniverseIP[universe] = ip
	}

	if len(cfg.Strips) == 0 {
		return nil, fmt.Errorf("aucun ruban valide dans '%s'", path)
	}

	log.Printf("Config: %d ruban(s) chargé(s) depuis '%s'.", len(cfg.Strips), path)
	return cfg, nil
}

// clampByte ramène une valeur de configuration dans sa plage utile.
// Hors plage n'est pas une erreur, juste une valeur corrigée.
func clampByte(v, lo, hi int) byte {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return byte(v)
}
