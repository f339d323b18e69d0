package palettefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domaincommand "lampeMeteo/internal/domain/command"
	"lampeMeteo/internal/domain/render"
)

func TestPollerDeliversPalette(t *testing.T) {
	body := make([]byte, 48)
	for i := range body {
		body[i] = byte(i)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	cmdOut := make(chan domaincommand.Command, 1)
	p := NewPoller(srv.URL, time.Hour, cmdOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case cmd := <-cmdOut:
		if cmd.Palette == nil {
			t.Fatal("la commande doit porter une palette")
		}
		if cmd.Palette[0] != (render.RGB{R: 0, G: 1, B: 2}) {
			t.Fatalf("première couleur: %v", cmd.Palette[0])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("aucune palette reçue")
	}
}

// Une réponse trop courte ne doit produire aucune commande : la lampe
// garde sa palette courante.
func TestPollerIgnoresTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{1, 2, 3})
	}))
	defer srv.Close()

	cmdOut := make(chan domaincommand.Command, 1)
	p := NewPoller(srv.URL, time.Hour, cmdOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case <-cmdOut:
		t.Fatal("une réponse tronquée ne doit pas produire de commande")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPollerIgnoresServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "panne", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cmdOut := make(chan domaincommand.Command, 1)
	p := NewPoller(srv.URL, time.Hour, cmdOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case <-cmdOut:
		t.Fatal("une erreur serveur ne doit pas produire de commande")
	case <-time.After(200 * time.Millisecond):
	}
}
