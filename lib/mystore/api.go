package mystore

import (
	"context"
	"os"
)

type ctxTransactionKey struct{}

// Filter is a single datastore style property filter, for example
// {Field: "AccessKey", Compare: "=", Value: key}.
type Filter struct {
	Field   string
	Compare string
	Value   any
}

// Store keeps entities of type T by uid. Calls made with the context passed
// into RunInTransaction take part in that transaction.
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	Delete(c context.Context, uid string) error
	List(c context.Context) ([]T, error)
	Query(c context.Context, filters []Filter, orderByField string) ([]T, error)
}

// New picks datastore when running on Google Cloud and memory otherwise.
func New[T any](c context.Context) (Store[T], func(), error) {
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		return NewGcloudStore[T](c, projectID)
	}

	return NewInMemoryStore[T](c)
}
