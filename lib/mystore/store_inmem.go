package mystore

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"
)

// inMemoryTxKey marks a context as running inside a transaction of one
// particular store, so other stores used in the same callback still lock.
// Nest RunInTransaction calls to roll back writes to several stores together.
type inMemoryTxKey struct {
	store any
}

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()
	defer s.Unlock()

	before := maps.Clone(s.Items)

	err := f(context.WithValue(c, inMemoryTxKey{store: s}, true))
	if err != nil {
		// Rollback
		s.Items = before
		return err
	}

	// Commit
	return nil
}

func (s *InMemoryStore[T]) locked(c context.Context, f func()) {
	if c.Value(inMemoryTxKey{store: s}) == nil {
		s.Lock()
		defer s.Unlock()
	}
	f()
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	s.locked(c, func() {
		s.Items[uid] = value
	})
	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var result T
	var exists bool
	s.locked(c, func() {
		result, exists = s.Items[uid]
	})
	return result, exists, nil
}

func (s *InMemoryStore[T]) Delete(c context.Context, uid string) error {
	s.locked(c, func() {
		delete(s.Items, uid)
	})
	return nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	var result []T
	s.locked(c, func() {
		result = make([]T, 0, len(s.Items))
		for _, v := range s.Items {
			result = append(result, v)
		}
	})
	return result, nil
}

// Query supports equality filters only. orderByField follows the datastore
// convention: a leading "-" sorts descending.
func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	for _, f := range filters {
		if f.Compare != "=" {
			return nil, fmt.Errorf("unsupported comparison %q on field %s", f.Compare, f.Field)
		}
	}

	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(all))
	for _, item := range all {
		if matches(item, filters) {
			result = append(result, item)
		}
	}

	if orderByField != "" {
		field, descending := strings.TrimPrefix(orderByField, "-"), strings.HasPrefix(orderByField, "-")
		slices.SortStableFunc(result, func(a, b T) int {
			order := compareField(fieldOf(a, field), fieldOf(b, field))
			if descending {
				return -order
			}
			return order
		})
	}

	return result, nil
}

func fieldOf(item any, name string) reflect.Value {
	v := reflect.Indirect(reflect.ValueOf(item))
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	return v.FieldByName(name)
}

func matches(item any, filters []Filter) bool {
	for _, f := range filters {
		v := fieldOf(item, f.Field)
		if !v.IsValid() || !v.CanInterface() || !v.Comparable() || v.Interface() != f.Value {
			return false
		}
	}
	return true
}

func compareField(a, b reflect.Value) int {
	if !a.IsValid() || !b.IsValid() || !a.CanInterface() {
		return 0
	}
	if at, ok := a.Interface().(time.Time); ok {
		return at.Compare(b.Interface().(time.Time))
	}
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return 0
	}
}
