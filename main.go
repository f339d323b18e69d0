// File: main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	app_command "lampeMeteo/internal/application/command"
	app_engine "lampeMeteo/internal/application/engine"
	"lampeMeteo/internal/config"
	domain_artnet "lampeMeteo/internal/domain/artnet"
	domain_command "lampeMeteo/internal/domain/command"
	infra_artnet "lampeMeteo/internal/infrastructure/artnet"
	infra_mqtt "lampeMeteo/internal/infrastructure/mqtt"
	"lampeMeteo/internal/infrastructure/palettefeed"
	infra_serial "lampeMeteo/internal/infrastructure/serial"
	infra_udp "lampeMeteo/internal/infrastructure/udp"
	"lampeMeteo/internal/simulator"
)

func main() {
	log.Println("Démarrage de la lampe : moteur d'animation -> ArtNet/Série...")

	// --- ÉTAPE 1 : CHARGEMENT DE LA CONFIGURATION (UNE SEULE FOIS) ---
	settings, err := config.LoadSettings("settings.toml")
	if err != nil {
		// Sans réglages valides, l'application ne peut pas fonctionner.
		log.Fatalf("Erreur fatale: impossible de charger settings.toml: %v", err)
	}

	appConfig, err := config.Load("strips.xlsx")
	if err != nil {
		log.Fatalf("Erreur fatale: impossible de charger strips.xlsx: %v", err)
	}
	log.Println("Main: configuration chargée avec succès.")

	// --- ÉTAPE 2 : CRÉATION DES CANAUX DE COMMUNICATION ---
	rawPacketChannel := make(chan domain_command.RawPacket, 100)
	commandChannel := make(chan domain_command.Command, 100)  // broker + feed + console + UDP
	frameQueue := make(chan domain_artnet.FrameMessage, 1000) // dimensionné pour 50 FPS

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- ÉTAPE 3 : CONSTRUCTION DES COMPOSANTS ---

	// a) Application (logique métier)
	engineService, err := app_engine.NewService(appConfig, settings, commandChannel, frameQueue)
	if err != nil {
		log.Fatalf("Erreur Moteur: %v", err)
	}

	commandService := app_command.NewService(rawPacketChannel, app_command.NewParser(), commandChannel)

	// b) Infrastructure (couche externe)
	const controlPort = 8765
	listener, err := infra_udp.NewListener(controlPort, rawPacketChannel)
	if err != nil {
		log.Fatalf("Erreur Listener: %v", err)
	}

	switch settings.Output.Driver {
	case "serial":
		sender, err := infra_serial.NewSender(settings.Output.SerialPort, settings.Output.SerialBaud)
		if err != nil {
			log.Fatalf("Erreur Serial Sender: %v", err)
		}
		go sender.Run(ctx, frameQueue)
	default:
		sender, err := infra_artnet.NewSender(appConfig.UniverseIP)
		if err != nil {
			log.Fatalf("Erreur ArtNet Sender: %v", err)
		}
		go sender.Run(ctx, frameQueue)
	}

	if settings.Broker.URL != "" {
		broker := infra_mqtt.NewClient(settings.Broker, commandChannel)
		if err := broker.Start(ctx); err != nil {
			log.Fatalf("Erreur MQTT: %v", err)
		}
	} else {
		log.Println("Main: pas de broker configuré, contrôle par console uniquement.")
	}

	if settings.Feed.URL != "" {
		poller := palettefeed.NewPoller(settings.Feed.URL, time.Duration(settings.Feed.IntervalSeconds)*time.Second, commandChannel)
		poller.Start(ctx)
	}

	// c) Console pour tests sans broker
	maxLeds := 0
	for _, s := range appConfig.Strips {
		if s.Leds > maxLeds {
			maxLeds = s.Leds
		}
	}
	console := simulator.NewConsole(commandChannel, maxLeds)

	// --- ÉTAPE 4 : DÉMARRAGE DES GOROUTINES ---
	listener.Start(ctx)
	commandService.Start()
	engineService.Start(ctx)

	// --- ÉTAPE 5 : ATTENTE AVEC INTERFACE CONSOLE ---
	log.Println("Système entièrement démarré.")
	log.Println("=== CONSOLE ACTIVÉE ===")
	log.Println("Commandes disponibles :")
	log.Println("  help     - Affiche l'aide complète")
	log.Println("  [color]  - Couleur unie")
	log.Println("  fire     - Simulation de feu")
	log.Println("  wave     - Animation de vague")
	log.Println("  stop     - Retour à la palette")
	log.Println("  quit     - Quitte le programme")
	log.Println("=======================")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("lampe> ")
		if !scanner.Scan() {
			break
		}

		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		switch cmd {
		case "quit", "exit", "q":
			log.Println("Arrêt du système...")
			console.Stop()
			cancel()
			return
		case "help":
			console.ShowHelp()
		default:
			console.Run(cmd)
		}
	}
}
