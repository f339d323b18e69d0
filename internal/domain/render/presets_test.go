package render

import "testing"

// Rainbow doit être 16 teintes équidistantes : la première est un
// rouge pur et aucune couleur n'est répétée.
func TestRainbowPreset(t *testing.T) {
	if Rainbow[0] != (RGB{255, 0, 0}) {
		t.Errorf("Rainbow[0] = %v, attendu rouge pur", Rainbow[0])
	}
	seen := make(map[RGB]bool)
	for i, c := range Rainbow {
		if seen[c] {
			t.Errorf("couleur %d dupliquée: %v", i, c)
		}
		seen[c] = true
	}
}

func TestRainbowStripePreset(t *testing.T) {
	for i, c := range RainbowStripe {
		if i%2 == 0 {
			if c != Rainbow[i] {
				t.Errorf("case %d: %v, attendu %v", i, c, Rainbow[i])
			}
		} else if c != (RGB{}) {
			t.Errorf("case %d: %v, attendu noir", i, c)
		}
	}
}

func TestPresetByIDFallsBackToRainbow(t *testing.T) {
	if PresetByID(-1) != Rainbow || PresetByID(99) != Rainbow {
		t.Error("un identifiant hors plage doit retomber sur Rainbow")
	}
	if PresetByID(4) != Lava {
		t.Error("l'identifiant 4 doit désigner Lava")
	}
	if PresetCount() != 7 {
		t.Errorf("PresetCount() = %d, attendu 7", PresetCount())
	}
}
