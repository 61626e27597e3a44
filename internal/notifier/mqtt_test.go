package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertTopic(t *testing.T) {
	assert.Equal(t, "airmaint/alerts/N101SF", alertTopic("N101SF"))
	assert.Equal(t, "airmaint/alerts/unknown", alertTopic(""))
}

func TestConnect_BadBroker(t *testing.T) {
	_, err := Connect("tcp://localhost:1", "airmaint-test")
	assert.Error(t, err)
}
