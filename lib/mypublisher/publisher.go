package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/shopfrontend/lib/myevents"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mypubsub"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
)

type publisher struct {
	pubsub    mypubsub.PubSub
	enveloper enveloper
	logger    mylog.Logger
}

func New(pubsub mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) Publisher {
	return &publisher{
		pubsub:    pubsub,
		enveloper: newEnveloper(nower),
		logger:    logger,
	}
}

func (p *publisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *publisher) Publish(c context.Context, topic string, event myevents.Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %w", err)
	}

	jsonBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error serializing envelope %s: %w", envelope, err)
	}

	err = p.pubsub.Publish(c, topic, string(jsonBytes))
	if err != nil {
		return fmt.Errorf("error publishing envelope %s: %w", envelope, err)
	}

	p.logger.Log(c, envelope.AggregateUID, mylog.SeverityInfo, "Published event %s", envelope)

	return nil
}
