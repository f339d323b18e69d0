package mqtt

import (
	"context"
	"fmt"
	"log"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	appcommand "lampeMeteo/internal/application/command"
	"lampeMeteo/internal/config"
	domaincommand "lampeMeteo/internal/domain/command"
)

// Client relie la lampe au broker : il écoute le topic de contrôle,
// décode les charges utiles et pousse les commandes vers le moteur.
// Il publie aussi un ping périodique pour signaler que la lampe vit.
type Client struct {
	settings config.BrokerSettings
	client   paho.Client
	parser   *appcommand.Parser
	cmdOut   chan<- domaincommand.Command
}

func NewClient(settings config.BrokerSettings, cmdOut chan<- domaincommand.Command) *Client {
	c := &Client{
		settings: settings,
		parser:   appcommand.NewParser(),
		cmdOut:   cmdOut,
	}

	opts := paho.NewClientOptions().
		AddBroker(settings.URL).
		SetClientID(settings.ClientID).
		SetUsername(settings.User).
		SetPassword(settings.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	opts.OnConnect = func(client paho.Client) {
		log.Printf("MQTT: connecté, abonnement à '%s'.", settings.ControlTopic)
		if token := client.Subscribe(settings.ControlTopic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
			log.Printf("MQTT: échec d'abonnement: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(client paho.Client, err error) {
		log.Printf("MQTT: connexion perdue: %v", err)
	}

	c.client = paho.NewClient(opts)
	return c
}

// Start se connecte puis entretient le ping. La reconnexion est gérée
// par le client paho lui-même, on ne fait que logguer.
func (c *Client) Start(ctx context.Context) error {
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connexion au broker '%s' impossible: %w", c.settings.URL, token.Error())
	}

	go func() {
		ticker := time.NewTicker(time.Duration(c.settings.PingSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.client.Disconnect(250)
				log.Println("MQTT: déconnecté.")
				return
			case <-ticker.C:
				if c.client.IsConnected() {
					c.client.Publish(c.settings.PingTopic, 0, false, c.settings.ClientID)
				}
			}
		}
	}()
	return nil
}

// handleMessage décode une charge utile du topic de contrôle.
// Une commande invalide est logguée puis ignorée, jamais fatale.
func (c *Client) handleMessage(_ paho.Client, msg paho.Message) {
	cmd, err := c.parser.Parse(msg.Payload())
	if err != nil {
		log.Printf("MQTT: commande rejetée sur '%s': %v", msg.Topic(), err)
		return
	}
	select {
	case c.cmdOut <- cmd:
	default:
		// Canal plein : on jette la commande plutôt que de bloquer le
		// callback du client paho.
		log.Println("MQTT: canal de commandes saturé, commande ignorée.")
	}
}
