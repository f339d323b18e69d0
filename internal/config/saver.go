// internal/config/saver.go
package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Save écrit la table des rubans dans un classeur, une ligne par ruban,
// triée par univers pour avoir un fichier propre et ordonné.
func Save(cfg *Config, path string) error {
	strips := make([]Strip, len(cfg.Strips))
	copy(strips, cfg.Strips)
	sort.Slice(strips, func(i, j int) bool {
		return strips[i].Universe < strips[j].Universe
	})

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Nom", "LEDs", "Univers", "IP", "Sens", "Cooling", "Sparking"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("impossible d'écrire l'en-tête: %w", err)
	}

	for i, s := range strips {
		sens := "0"
		if s.Reversed {
			sens = "1"
		}
		row := []interface{}{s.Name, s.Leds, s.Universe, s.IP, sens, int(s.Cooling), int(s.Sparking)}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("impossible d'écrire la ligne %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("impossible d'enregistrer '%s': %w", path, err)
	}
	return nil
}
