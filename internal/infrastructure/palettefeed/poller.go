package palettefeed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	domaincommand "lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

// maxBodySize : une palette fait 48 octets, on tolère un peu de marge
// mais pas une réponse arbitraire.
const maxBodySize = 1024

// Poller interroge périodiquement l'endpoint distant qui sert la
// palette du moment (format binaire : 16 x R,G,B). Chaque réponse
// valide devient une commande de remplacement de palette.
type Poller struct {
	url      string
	interval time.Duration
	client   *http.Client
	cmdOut   chan<- domaincommand.Command
}

func NewPoller(url string, interval time.Duration, cmdOut chan<- domaincommand.Command) *Poller {
	return &Poller{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 5 * time.Second},
		cmdOut:   cmdOut,
	}
}

func (p *Poller) Start(ctx context.Context) {
	go func() {
		log.Printf("Feed: interrogation de '%s' toutes les %v.", p.url, p.interval)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		// Premier essai immédiat, pour ne pas attendre un intervalle
		// complet avant d'avoir la bonne palette au démarrage.
		p.poll(ctx)

		for {
			select {
			case <-ctx.Done():
				log.Println("Feed: arrêt de l'interrogation.")
				return
			case <-ticker.C:
				p.poll(ctx)
			}
		}
	}()
}

// poll fait un aller-retour HTTP. Toute erreur est logguée puis
// oubliée : la lampe garde simplement sa palette courante.
func (p *Poller) poll(ctx context.Context) {
	pal, err := p.fetch(ctx)
	if err != nil {
		log.Printf("Feed: %v", err)
		return
	}

	cmd := domaincommand.Command{Palette: &pal}
	select {
	case p.cmdOut <- cmd:
	case <-ctx.Done():
	}
}

func (p *Poller) fetch(ctx context.Context) (render.Palette, error) {
	var pal render.Palette

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return pal, fmt.Errorf("requête invalide: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return pal, fmt.Errorf("endpoint injoignable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pal, fmt.Errorf("réponse %d de l'endpoint", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return pal, fmt.Errorf("lecture de la réponse impossible: %w", err)
	}

	return render.PaletteFromBytes(body)
}
