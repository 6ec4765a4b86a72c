// Package events publishes AI-decision events for the external analytics
// collaborator. Publishing is fire-and-forget: the play engine never waits
// on, nor fails because of, the event stream.
package events

import (
	"encoding/json"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// DecisionSubject is the NATS subject AI decisions are published on.
const DecisionSubject = "bridgeplay.ai.decision"

// Decision describes one AI card selection.
type Decision struct {
	Seat         string `json:"seat"`
	Card         string `json:"card"`
	Strategy     string `json:"strategy"`
	SolveTimeMs  int64  `json:"solve_time_ms"`
	UsedFallback bool   `json:"used_fallback"`
	Contract     string `json:"contract"`
	Trump        string `json:"trump"`
}

// Publisher accepts decision events. Implementations must not block the
// caller on delivery.
type Publisher interface {
	Publish(d Decision)
	Close()
}

// NopPublisher drops every event. It is the default so the engine works
// with no analytics infrastructure at all.
type NopPublisher struct{}

func (NopPublisher) Publish(Decision) {}
func (NopPublisher) Close()           {}

// NatsPublisher sends decisions over a NATS connection.
type NatsPublisher struct {
	nc *nats.Conn
}

// ConnectNats dials the NATS server, retrying a few times before giving
// up, since the analytics broker frequently starts after the trainer in
// dev environments.
func ConnectNats(url string) (*NatsPublisher, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(url)
			return err
		},
		retry.Attempts(5),
		retry.Delay(250*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{nc: nc}, nil
}

// Publish marshals and sends the event. Failures are logged and dropped;
// analytics loss must never surface to the player.
func (p *NatsPublisher) Publish(d Decision) {
	raw, err := json.Marshal(d)
	if err != nil {
		log.Err(err).Msg("marshal-decision-event")
		return
	}
	if err := p.nc.Publish(DecisionSubject, raw); err != nil {
		log.Err(err).Msg("publish-decision-event")
	}
}

func (p *NatsPublisher) Close() {
	p.nc.Close()
}
