package bridge

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	sse "github.com/r3labs/sse/v2"
	"github.com/spf13/viper"
)

// BridgeEventConsumer subscribes to the bridge's SSE event stream so the
// state cache can follow colour changes without polling.
type BridgeEventConsumer struct {
	logger *log.Logger

	client       *sse.Client
	eventChannel chan *sse.Event
}

func NewBridgeEventConsumer(logger *log.Logger) *BridgeEventConsumer {
	return &BridgeEventConsumer{logger: logger}
}

func (b *BridgeEventConsumer) Subscribe(eventChannel chan *sse.Event) {

	b.eventChannel = eventChannel
	b.client = sse.NewClient(fmt.Sprintf("https://%s/eventstream", viper.GetString("bridgeIp")))

	b.client.Connection.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	b.client.Headers["bridge-application-key"] = viper.GetString("bridgeApplicationKey")

	b.client.OnConnect(func(_ *sse.Client) {
		b.logger.Info("Connected to bridge, listening for events...")
	})
	b.client.OnDisconnect(func(_ *sse.Client) {
		b.logger.Info("Disconnected from bridge")
	})

	if err := b.client.SubscribeChan("", b.eventChannel); err != nil {
		b.logger.Errorf("error subscribing to light updates: %s", err)
	}

}

func (b *BridgeEventConsumer) Unsubscribe() {
	b.logger.Debug("Unsubscribe events")
	b.client.Unsubscribe(b.eventChannel)
}
