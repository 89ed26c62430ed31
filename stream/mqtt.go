package stream

import (
	"context"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const disconnectQuiesce = 250

// MQTT publishes through a paho client.
type MQTT struct {
	client   mqtt.Client
	qos      byte
	retained bool
}

// DialMQTT connects to broker and blocks until the connection is established.
func DialMQTT(broker, clientID string, qos byte) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("could not connect to mqtt broker %s: %w", broker, token.Error())
	}
	return NewMQTT(client, qos), nil
}

// NewMQTT wraps a connected client. Messages are retained so late subscribers
// get the last sample.
func NewMQTT(client mqtt.Client, qos byte) *MQTT {
	return &MQTT{client: client, qos: qos, retained: true}
}

func (m *MQTT) Publish(ctx context.Context, topic string, payload []byte) error {
	token := m.client.Publish(topic, m.qos, m.retained, payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("could not publish to %s: %w", topic, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MQTT) Close() {
	m.client.Disconnect(disconnectQuiesce)
}
