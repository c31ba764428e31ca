package cartfake

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myhttpclient"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mypublisher"
	"github.com/MarcGrol/shopfrontend/lib/mypubsub"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
	"github.com/MarcGrol/shopfrontend/lib/myuuid"
	"github.com/MarcGrol/shopfrontend/services/basketapi"
	"github.com/MarcGrol/shopfrontend/services/cart"
	"github.com/MarcGrol/shopfrontend/services/cart/cartapi"
)

func TestFakeCartService(t *testing.T) {
	CartServiceContract{
		service: func(t *testing.T) cart.CartService {
			return New([]cart.Product{
				{ID: 6, Title: "Tennis racket", Price: 16900},
				{ID: 7, Title: "Tennis balls", Price: 1000},
			})
		},
	}.Test(t)
}

func TestHTTPCartService(t *testing.T) {
	CartServiceContract{
		service: func(t *testing.T) cart.CartService {
			c := context.TODO()
			baskets, _, _ := mystore.NewInMemoryStore[basketapi.Basket](c)
			orders, _, _ := mystore.NewInMemoryStore[basketapi.Order](c)
			nower := mytime.RealNower{}
			publisher := mypublisher.New(mypubsub.NewFakePubSub(), nower, mylog.Discard())

			router := mux.NewRouter()
			err := basketapi.NewService(baskets, orders, nower, myuuid.RealUUIDer{}, publisher, mylog.Discard()).RegisterEndpoints(c, router)
			require.NoError(t, err)

			server := httptest.NewServer(router)
			t.Cleanup(server.Close)

			return cartapi.New(server.URL, myhttpclient.New(5*time.Second, mylog.Discard()), mylog.Discard())
		},
	}.Test(t)
}

// CartServiceContract is the behaviour every cart.CartService must show.
type CartServiceContract struct {
	service func(t *testing.T) cart.CartService
}

func (c CartServiceContract) Test(t *testing.T) {
	t.Run("issues a key for a caller without one", func(t *testing.T) {
		var (
			sut = c.service(t)
			ctx = context.Background()
		)

		resp, err := sut.GetBasket(ctx, "")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.User.AccessKey)
		assert.Empty(t, resp.Items)

		again, err := sut.GetBasket(ctx, resp.User.AccessKey)
		require.NoError(t, err)
		assert.Equal(t, resp.User.AccessKey, again.User.AccessKey)
	})

	t.Run("can add, update and delete products", func(t *testing.T) {
		var (
			sut = c.service(t)
			ctx = context.Background()
			key = newKey(t, sut)
		)

		items, err := sut.AddProduct(ctx, key, 6, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, cart.ProductID(6), items[0].Product.ID)

		items, err = sut.AddProduct(ctx, key, 6, 2)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)

		items, err = sut.AddProduct(ctx, key, 7, 1)
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = sut.UpdateProduct(ctx, key, 7, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, items[1].Quantity)

		items, err = sut.DeleteProduct(ctx, key, 6)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, cart.ProductID(7), items[0].Product.ID)

		resp, err := sut.GetBasket(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, items, resp.Items)
	})

	t.Run("rejects invalid product changes", func(t *testing.T) {
		var (
			sut = c.service(t)
			ctx = context.Background()
			key = newKey(t, sut)
		)

		_, err := sut.AddProduct(ctx, key, 99, 1)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		_, err = sut.AddProduct(ctx, key, 6, 0)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		_, err = sut.UpdateProduct(ctx, key, 6, 1)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))

		_, err = sut.AddProduct(ctx, "unknown", 6, 1)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
	})

	t.Run("rejects orders with blank customer fields", func(t *testing.T) {
		var (
			sut = c.service(t)
			ctx = context.Background()
			key = newKey(t, sut)
		)

		_, err := sut.AddProduct(ctx, key, 7, 1)
		require.NoError(t, err)

		_, err = sut.CreateOrder(ctx, key, cart.OrderRequest{Name: "   ", Address: "Street 1", Phone: "06"})
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		_, err = sut.CreateOrder(ctx, key, cart.OrderRequest{Name: "Marc", Address: "\t", Phone: " "})
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		resp, err := sut.GetBasket(ctx, key)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1)
	})

	t.Run("can place an order that only its owner can read", func(t *testing.T) {
		var (
			sut = c.service(t)
			ctx = context.Background()
			key = newKey(t, sut)
		)

		_, err := sut.CreateOrder(ctx, key, cart.OrderRequest{Name: "Marc", Address: "Street 1", Phone: "06"})
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err), "empty basket")

		items, err := sut.AddProduct(ctx, key, 7, 2)
		require.NoError(t, err)

		order, err := sut.CreateOrder(ctx, key, cart.OrderRequest{Name: "Marc", Address: "Street 1", Phone: "06", Comment: "ring twice"})
		require.NoError(t, err)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, items[0].Product.Price*2, order.TotalPrice)
		assert.Equal(t, "ring twice", order.Comment)

		got, err := sut.GetOrder(ctx, key, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order, got)

		_, err = sut.GetOrder(ctx, newKey(t, sut), order.ID)
		assert.True(t, myerrors.IsNotFound(err))

		resp, err := sut.GetBasket(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
	})
}

func newKey(t *testing.T, sut cart.CartService) string {
	resp, err := sut.GetBasket(context.Background(), "")
	require.NoError(t, err)
	return resp.User.AccessKey
}
