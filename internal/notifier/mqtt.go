// Package notifier publishes maintenance alerts to an MQTT broker so hangar
// displays and ops dashboards can subscribe per aircraft.
package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/maintenance"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	topicPrefix    = "airmaint/alerts"
)

// AlertPublisher pushes alerts to one topic per aircraft registration.
type AlertPublisher struct {
	client mqtt.Client
}

// Connect dials the broker and returns a ready publisher.
func Connect(brokerURL, clientID string) (*AlertPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", brokerURL, err)
	}

	log.WithField("broker", brokerURL).Info("Connected to MQTT broker")
	return &AlertPublisher{client: client}, nil
}

// PublishAlerts sends each alert to its aircraft topic. Publish failures are
// logged and skipped; alerts are regenerated on the next scheduler pass.
func (p *AlertPublisher) PublishAlerts(alerts []maintenance.Alert) {
	for _, alert := range alerts {
		payload, err := json.Marshal(alert)
		if err != nil {
			log.WithError(err).WithField("schedule_id", alert.ScheduleID).Error("Failed to marshal alert")
			continue
		}

		token := p.client.Publish(alertTopic(alert.Registration), 1, false, payload)
		if !token.WaitTimeout(publishTimeout) {
			log.WithField("registration", alert.Registration).Warn("MQTT publish timed out")
			continue
		}
		if err := token.Error(); err != nil {
			log.WithError(err).WithField("registration", alert.Registration).Error("Failed to publish alert")
		}
	}
}

// Close flushes in-flight messages and disconnects.
func (p *AlertPublisher) Close() {
	p.client.Disconnect(250)
}

func alertTopic(registration string) string {
	if registration == "" {
		registration = "unknown"
	}
	return fmt.Sprintf("%s/%s", topicPrefix, registration)
}
