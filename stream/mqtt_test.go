package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func completedToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool {
	<-t.done
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}            { return t.done }
func (t *fakeToken) Error() error                     { return t.err }

// fakeClient records publishes; the embedded interface covers the unused methods.
type fakeClient struct {
	mqtt.Client
	token        mqtt.Token
	topic        string
	qos          byte
	retained     bool
	payload      []byte
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.topic, c.qos, c.retained = topic, qos, retained
	c.payload, _ = payload.([]byte)
	return c.token
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.disconnected = true
}

func TestMQTT_Publish(t *testing.T) {
	client := &fakeClient{token: completedToken(nil)}
	m := NewMQTT(client, 1)
	assert.NoError(t, m.Publish(context.Background(), "sensors/lis3dh", []byte(`{"x":1}`)))
	assert.Equal(t, "sensors/lis3dh", client.topic)
	assert.Equal(t, byte(1), client.qos)
	assert.True(t, client.retained)
	assert.Equal(t, []byte(`{"x":1}`), client.payload)

	m.Close()
	assert.True(t, client.disconnected)
}

func TestMQTT_PublishError(t *testing.T) {
	brokerErr := errors.New("not connected")
	m := NewMQTT(&fakeClient{token: completedToken(brokerErr)}, 0)
	assert.ErrorIs(t, m.Publish(context.Background(), "t", nil), brokerErr)
}

func TestMQTT_PublishCancelled(t *testing.T) {
	pending := &fakeToken{done: make(chan struct{})}
	m := NewMQTT(&fakeClient{token: pending}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Publish(ctx, "t", nil), context.Canceled)
}
