package mypublisher

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/shopfrontend/lib/myevents"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
)

type enveloper struct {
	nower mytime.Nower
}

func newEnveloper(nower mytime.Nower) enveloper {
	return enveloper{
		nower: nower,
	}
}

func (e enveloper) do(topic string, event myevents.Event) (myevents.EventEnvelope, error) {
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		return myevents.EventEnvelope{}, fmt.Errorf("error marshalling event-payload: %w", err)
	}
	envelope := myevents.EventEnvelope{
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(jsonPayload),
	}

	// Content based uid: publishing the same event twice yields the same uid,
	// so subscribers can de-duplicate.
	envelope.UID, err = checksum(envelope)
	if err != nil {
		return myevents.EventEnvelope{}, fmt.Errorf("error checksumming event-payload: %w", err)
	}
	// excluded from the checksum on purpose
	envelope.CreatedAt = e.nower.Now()

	return envelope, nil
}

func checksum(envlp myevents.EventEnvelope) (string, error) {
	asJSON, err := json.Marshal(envlp)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(asJSON)
	return base64.RawURLEncoding.EncodeToString(sum[:]), nil
}
