package mypubsub

import (
	"context"
	"os"
	"sync"

	"github.com/MarcGrol/shopfrontend/lib/mylog"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = func(c context.Context) (PubSub, func(), error) {
			return NewFakePubSub(), func() {}, nil
		}
	}
}

// FakePubSub keeps published messages in memory and logs them.
type FakePubSub struct {
	sync.Mutex
	logger    mylog.Logger
	Published map[string][]string
}

func NewFakePubSub() *FakePubSub {
	return &FakePubSub{
		logger:    mylog.New("pubsub"),
		Published: map[string][]string{},
	}
}

func (ps *FakePubSub) CreateTopic(c context.Context, topic string) error {
	return nil
}

func (ps *FakePubSub) Publish(c context.Context, topic string, data string) error {
	ps.Lock()
	defer ps.Unlock()

	ps.Published[topic] = append(ps.Published[topic], data)
	ps.logger.Log(c, topic, mylog.SeverityDebug, "Published on topic %s: %s", topic, data)

	return nil
}

func (ps *FakePubSub) Messages(topic string) []string {
	ps.Lock()
	defer ps.Unlock()

	return append([]string{}, ps.Published[topic]...)
}
