package cart

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// receive fails the test instead of hanging when nothing arrives.
func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for concurrent call")
	}
	var zero T
	return zero
}

func TestConcurrentUse(t *testing.T) {
	t.Run("Concurrent first loads persist a single key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, sut, service, keyStore, _ := setup(t, ctrl, "")

		// given
		entered := make(chan struct{}, 2)
		release := make(chan struct{})
		issued := atomic.Int32{}
		service.EXPECT().GetBasket(c, "").DoAndReturn(func(c context.Context, accessKey string) (BasketResponse, error) {
			n := issued.Add(1)
			entered <- struct{}{}
			<-release
			return BasketResponse{
				User:  User{AccessKey: fmt.Sprintf("key-%d", n)},
				Items: []BasketItem{racket},
			}, nil
		}).Times(2)

		persisted := ""
		keyStore.EXPECT().Put(c, AccessKeyName, gomock.Any()).DoAndReturn(func(c context.Context, key string, value string) error {
			persisted = value
			return nil
		}).Times(1)

		// when
		errs := make(chan error, 2)
		for range 2 {
			go func() {
				errs <- sut.LoadCart(c)
			}()
		}
		receive(t, entered)
		receive(t, entered)
		close(release)

		// then
		assert.NoError(t, receive(t, errs))
		assert.NoError(t, receive(t, errs))
		require.NotEmpty(t, persisted)
		assert.Equal(t, persisted, sut.UserAccessKey())
		assert.Equal(t, []CartLineRef{{ProductID: 1, Amount: 2}}, sut.CartProducts())
	})

	t.Run("Last arriving update response wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, sut, service, _ := loaded(t, ctrl)

		// given
		earlier := []BasketItem{item(1, 10, 4), balls}
		later := []BasketItem{item(1, 10, 4), item(2, 25, 5)}

		racketEntered, racketRelease := make(chan struct{}), make(chan struct{})
		service.EXPECT().UpdateProduct(c, accessKey, ProductID(1), 4).DoAndReturn(func(c context.Context, accessKey string, productID ProductID, quantity int) ([]BasketItem, error) {
			close(racketEntered)
			<-racketRelease
			return earlier, nil
		})
		ballsEntered, ballsRelease := make(chan struct{}), make(chan struct{})
		service.EXPECT().UpdateProduct(c, accessKey, ProductID(2), 5).DoAndReturn(func(c context.Context, accessKey string, productID ProductID, quantity int) ([]BasketItem, error) {
			close(ballsEntered)
			<-ballsRelease
			return later, nil
		})

		// when
		racketDone := make(chan error, 1)
		go func() {
			racketDone <- sut.UpdateCartProductAmount(c, 1, 4)
		}()
		receive(t, racketEntered)

		ballsDone := make(chan error, 1)
		go func() {
			ballsDone <- sut.UpdateCartProductAmount(c, 2, 5)
		}()
		receive(t, ballsEntered)

		// then both optimistic edits are visible while both requests are in flight
		assert.Equal(t, []CartLineRef{{ProductID: 1, Amount: 4}, {ProductID: 2, Amount: 5}}, sut.CartProducts())

		close(ballsRelease)
		require.NoError(t, receive(t, ballsDone))
		assert.Equal(t, later, sut.Snapshot())

		close(racketRelease)
		require.NoError(t, receive(t, racketDone))
		assert.Equal(t, earlier, sut.Snapshot())
		assert.Equal(t, []CartLineRef{{ProductID: 1, Amount: 4}, {ProductID: 2, Amount: 5}}, sut.CartProducts())
	})

	t.Run("Adds waiting for their delay block nothing and run independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		c, sut, service, sleeper := loaded(t, ctrl)

		// given
		sleeping := make(chan struct{}, 2)
		wake := make(chan struct{})
		sleeper.EXPECT().Sleep(c, DefaultAddToCartDelay).DoAndReturn(func(c context.Context, d time.Duration) error {
			sleeping <- struct{}{}
			<-wake
			return nil
		}).Times(2)

		afterBoth := []BasketItem{racket, balls, item(3, 5, 1), item(4, 7, 2)}
		service.EXPECT().AddProduct(c, accessKey, ProductID(3), 1).Return(afterBoth, nil)
		service.EXPECT().AddProduct(c, accessKey, ProductID(4), 2).Return(afterBoth, nil)

		// when
		wg := sync.WaitGroup{}
		errs := make(chan error, 2)
		for _, add := range []CartLineRef{{ProductID: 3, Amount: 1}, {ProductID: 4, Amount: 2}} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- sut.AddProductToCart(c, add.ProductID, add.Amount)
			}()
		}
		receive(t, sleeping)
		receive(t, sleeping)

		// then reads and local edits proceed while both adds wait
		reads := make(chan []CartLineRef, 1)
		go func() {
			sut.UpdateCartProductAmount(c, 2, 0)
			reads <- sut.CartProducts()
		}()
		assert.Equal(t, []CartLineRef{{ProductID: 1, Amount: 2}, {ProductID: 2, Amount: 0}}, receive(t, reads))
		assert.Equal(t, accessKey, sut.UserAccessKey())

		close(wake)
		assert.NoError(t, receive(t, errs))
		assert.NoError(t, receive(t, errs))
		wg.Wait()

		assert.Equal(t, afterBoth, sut.Snapshot())
		assert.Equal(t, []CartLineRef{
			{ProductID: 1, Amount: 2},
			{ProductID: 2, Amount: 1},
			{ProductID: 3, Amount: 1},
			{ProductID: 4, Amount: 2},
		}, sut.CartProducts())
	})
}
