package myevents

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventEnvelope is what travels over pubsub. The event itself is kept as a
// json string in EventPayload.
type EventEnvelope struct {
	UID           string
	CreatedAt     time.Time
	Topic         string
	AggregateUID  string
	EventTypeName string
	EventPayload  string `datastore:",noindex"`
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

// DecodePayload unmarshals the wrapped event into event.
func (e EventEnvelope) DecodePayload(event Event) error {
	err := json.Unmarshal([]byte(e.EventPayload), event)
	if err != nil {
		return fmt.Errorf("error decoding payload of %s: %w", e, err)
	}
	return nil
}

// Decode parses a message as published by mypublisher.
func Decode(message string) (EventEnvelope, error) {
	envelope := EventEnvelope{}
	err := json.Unmarshal([]byte(message), &envelope)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("error decoding envelope: %w", err)
	}
	return envelope, nil
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}
