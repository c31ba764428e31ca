package mystore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/datastore"

	"github.com/MarcGrol/shopfrontend/lib/mylog"
)

const maxTransactionAttempts = 3

type gcloudStore[T any] struct {
	client *datastore.Client
	kind   string
	logger mylog.Logger
}

// NewGcloudStore stores entities in the datastore of the given project.
func NewGcloudStore[T any](c context.Context, projectID string) (Store[T], func(), error) {
	if projectID == "" {
		return nil, func() {}, errors.New("datastore requires a google cloud project")
	}
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating datastore-client: %w", err)
	}

	return &gcloudStore[T]{
			client: client,
			kind:   kindOf[T](),
			logger: mylog.New("mystore"),
		}, func() {
			client.Close()
		}, nil
}

// kindOf derives the datastore kind from the unqualified type name.
func kindOf[T any]() string {
	kind := fmt.Sprintf("%T", *new(T))
	if idx := strings.LastIndex(kind, "."); idx >= 0 {
		kind = kind[idx+1:]
	}
	return kind
}

func (s *gcloudStore[T]) key(uid string) *datastore.Key {
	return datastore.NameKey(s.kind, uid, nil)
}

func transactionFrom(c context.Context) *datastore.Transaction {
	tx, _ := c.Value(ctxTransactionKey{}).(*datastore.Transaction)
	return tx
}

func (s *gcloudStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	var err error
	for i := 1; i <= maxTransactionAttempts; i++ {
		err = s.runInTransaction(c, f)
		if errors.Is(err, datastore.ErrConcurrentTransaction) {
			// retry requires idempotency of the business logic
			s.logger.Log(c, s.kind, mylog.SeverityWarn, "Concurrent transaction error, retrying (%d of %d): %s", i, maxTransactionAttempts, err)
			continue
		}
		return err
	}
	return err
}

func (s *gcloudStore[T]) runInTransaction(c context.Context, f func(c context.Context) error) error {
	t, err := s.client.NewTransaction(c)
	if err != nil {
		return fmt.Errorf("error creating transaction: %w", err)
	}

	err = f(context.WithValue(c, ctxTransactionKey{}, t))
	if err != nil {
		rollbackErr := t.Rollback()
		if rollbackErr != nil {
			s.logger.Log(c, s.kind, mylog.SeverityError, "error rolling-back transaction %p: %s", t, rollbackErr)
		}
		return err
	}

	_, err = t.Commit()
	if err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func (s *gcloudStore[T]) Put(c context.Context, uid string, value T) error {
	var err error
	if tx := transactionFrom(c); tx != nil {
		_, err = tx.Put(s.key(uid), &value)
	} else {
		_, err = s.client.Put(c, s.key(uid), &value)
	}
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %w", s.kind, uid, err)
	}
	return nil
}

func (s *gcloudStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	var err error
	if tx := transactionFrom(c); tx != nil {
		err = tx.Get(s.key(uid), value)
	} else {
		err = s.client.Get(c, s.key(uid), value)
	}
	if err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return *value, false, nil
		}
		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %w", s.kind, uid, err)
	}

	return *value, true, nil
}

func (s *gcloudStore[T]) Delete(c context.Context, uid string) error {
	var err error
	if tx := transactionFrom(c); tx != nil {
		err = tx.Delete(s.key(uid))
	} else {
		err = s.client.Delete(c, s.key(uid))
	}
	if err != nil {
		return fmt.Errorf("error deleting entity %s with uid %s: %w", s.kind, uid, err)
	}
	return nil
}

func (s *gcloudStore[T]) List(c context.Context) ([]T, error) {
	return s.getAll(c, datastore.NewQuery(s.kind).Limit(100))
}

func (s *gcloudStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	q := datastore.NewQuery(s.kind)
	for _, f := range filters {
		q = q.FilterField(f.Field, f.Compare, f.Value)
	}
	if orderByField != "" {
		q = q.Order(orderByField)
	}
	return s.getAll(c, q)
}

func (s *gcloudStore[T]) getAll(c context.Context, q *datastore.Query) ([]T, error) {
	if tx := transactionFrom(c); tx != nil {
		q = q.Transaction(tx)
	}

	objectsToFetch := []T{}
	_, err := s.client.GetAll(c, q, &objectsToFetch)
	if err != nil {
		return nil, fmt.Errorf("error fetching entities %s: %w", s.kind, err)
	}
	return objectsToFetch, nil
}
