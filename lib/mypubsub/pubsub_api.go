package mypubsub

import "context"

// PubSub moves opaque string messages to the subscribers of a topic.
type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, data string) error
}

// New is set at init time: Google Cloud pubsub when GOOGLE_CLOUD_PROJECT is
// set, an in-memory fake otherwise.
var New func(c context.Context) (PubSub, func(), error)
