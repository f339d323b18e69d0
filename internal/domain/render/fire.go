package render

import "fmt"

// sparkZone : les étincelles naissent dans les 7 premières cellules,
// la "source" du feu en bas du ruban.
const sparkZone = 7

// FireSim est la simulation de feu : un tableau de chaleur par pixel,
// refroidi, diffusé vers le haut et ré-alimenté par des étincelles
// aléatoires à chaque frame. Tout est en arithmétique saturée :
// la chaleur reste dans [0, 255], jamais de débordement.
type FireSim struct {
	heat     []byte
	cooling  byte // vitesse de refroidissement, plage utile 20-100
	sparking byte // probabilité d'étincelle par frame, sur 255
	reversed bool // true : la flamme part de l'autre extrémité
	rng      Source
}

// NewFireSim valide la configuration et alloue l'état une fois pour
// toutes ; AdvanceFrame n'alloue plus rien ensuite.
func NewFireSim(n int, cooling, sparking byte, reversed bool, rng Source) (*FireSim, error) {
	if n <= 0 {
		return nil, fmt.Errorf("longueur de ruban invalide: %d", n)
	}
	if rng == nil {
		return nil, fmt.Errorf("source aléatoire manquante")
	}
	return &FireSim{
		heat:     make([]byte, n),
		cooling:  cooling,
		sparking: sparking,
		reversed: reversed,
		rng:      rng,
	}, nil
}

// SetReversed change le sens de la flamme pour les frames suivantes.
func (f *FireSim) SetReversed(reversed bool) { f.reversed = reversed }

// AdvanceFrame fait avancer la simulation d'un tick et écrit le résultat
// dans buf. Les quatre étapes s'exécutent dans cet ordre, sans exception :
// refroidir, diffuser, étinceler, convertir. La diffusion relit les valeurs
// déjà refroidies de la frame courante, c'est ce qui donne l'effet de
// cascade.
func (f *FireSim) AdvanceFrame(buf []RGB) {
	n := len(f.heat)

	// 1. Refroidissement. Le diviseur n rend la perte proportionnelle :
	// un ruban court refroidit plus fort par cellule, la hauteur de
	// flamme reste visuellement constante.
	maxCool := int(f.cooling)*10/n + 2
	for i := 0; i < n; i++ {
		f.heat[i] = subSat(f.heat[i], f.rng.IntN(0, maxCool))
	}

	// 2. Diffusion vers le haut. Parcours en ordre décroissant obligatoire :
	// chaque cellule relit des voisines déjà mises à jour ce tick.
	// Les cellules 0 et 1 ne diffusent pas, c'est le foyer.
	for k := n - 1; k >= 2; k-- {
		f.heat[k] = byte((int(f.heat[k-1]) + 2*int(f.heat[k-2])) / 3)
	}

	// 3. Étincelle, avec une probabilité sparking/255, toujours près
	// du foyer.
	if f.rng.IntN(0, 256) < int(f.sparking) {
		zone := sparkZone
		if zone > n {
			zone = n
		}
		y := f.rng.IntN(0, zone)
		f.heat[y] = addSat(f.heat[y], f.rng.IntN(160, 255))
	}

	// 4. Conversion chaleur → couleur, éventuellement en miroir.
	for j := 0; j < n && j < len(buf); j++ {
		pos := j
		if f.reversed {
			pos = n - 1 - j
		}
		buf[pos] = HeatColor(f.heat[j])
	}
}

func subSat(v byte, amount int) byte {
	r := int(v) - amount
	if r < 0 {
		return 0
	}
	return byte(r)
}

func addSat(v byte, amount int) byte {
	r := int(v) + amount
	if r > 255 {
		return 255
	}
	return byte(r)
}
