package cartapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myevents"
	"github.com/MarcGrol/shopfrontend/lib/myhttpclient"
	"github.com/MarcGrol/shopfrontend/lib/mykvstore"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mypublisher"
	"github.com/MarcGrol/shopfrontend/lib/mypubsub"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
	"github.com/MarcGrol/shopfrontend/lib/myuuid"
	"github.com/MarcGrol/shopfrontend/services/basketapi"
	"github.com/MarcGrol/shopfrontend/services/basketapi/basketevents"
	"github.com/MarcGrol/shopfrontend/services/cart"
)

// TestContract runs the http client and the cart store against a real
// basket api server.
func TestContract(t *testing.T) {
	c := context.TODO()
	server, pubsub := runBasketAPI(t)
	defer server.Close()

	service := New(server.URL, myhttpclient.New(5*time.Second, mylog.Discard()), mylog.Discard())
	entries, _, _ := mystore.NewInMemoryStore[mykvstore.Entry](c)
	keyStore := mykvstore.NewEntryStore(entries)

	store, err := cart.New(c, service, keyStore, cart.WithAddToCartDelay(0), cart.WithLogger(mylog.Discard()))
	require.NoError(t, err)

	t.Run("Load cart issues and persists a key", func(t *testing.T) {
		err := store.LoadCart(c)
		require.NoError(t, err)

		key, found, err := keyStore.Get(c, cart.AccessKeyName)
		require.NoError(t, err)
		assert.True(t, found)
		assert.NotEmpty(t, key)
		assert.Equal(t, key, store.UserAccessKey())
		assert.Empty(t, store.CartProducts())
	})

	t.Run("Add products", func(t *testing.T) {
		require.NoError(t, store.AddProductToCart(c, 6, 2))
		require.NoError(t, store.AddProductToCart(c, 7, 1))

		total, err := store.CartTotalPrice()
		require.NoError(t, err)
		assert.Equal(t, 16900*2+1000, total)

		details, err := store.CartDetailProducts()
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "Tennis racket", details[0].Product.Title)
		assert.NotEmpty(t, details[0].Product.Image)
	})

	t.Run("Add unknown product is rejected", func(t *testing.T) {
		err := store.AddProductToCart(c, 99, 1)
		require.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})

	t.Run("Update amount", func(t *testing.T) {
		require.NoError(t, store.UpdateCartProductAmount(c, 7, 3))

		assert.Contains(t, store.CartProducts(), cart.CartLineRef{ProductID: 7, Amount: 3})
		total, err := store.CartTotalPrice()
		require.NoError(t, err)
		assert.Equal(t, 16900*2+1000*3, total)
	})

	t.Run("Delete product", func(t *testing.T) {
		require.NoError(t, store.DeleteProduct(c, 6))

		assert.Equal(t, []cart.CartLineRef{{ProductID: 7, Amount: 3}}, store.CartProducts())
	})

	t.Run("Reload with persisted key keeps the cart", func(t *testing.T) {
		other, err := cart.New(c, service, keyStore, cart.WithLogger(mylog.Discard()))
		require.NoError(t, err)

		require.NoError(t, other.LoadCart(c))
		assert.Equal(t, store.UserAccessKey(), other.UserAccessKey())
		assert.Equal(t, store.CartProducts(), other.CartProducts())
	})

	t.Run("Place and load order", func(t *testing.T) {
		order, err := store.PlaceOrder(c, cart.OrderRequest{Name: "Marc", Address: "Street 1", Phone: "0612345678"})
		require.NoError(t, err)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, 3000, order.TotalPrice)
		assert.Empty(t, store.CartProducts())

		require.NoError(t, store.LoadOrderInfo(c, order.ID))
		assert.Equal(t, order, store.OrderInfoDetails())
	})

	t.Run("Order of another key is hidden", func(t *testing.T) {
		_, err := service.GetOrder(c, "someone-else", "unknown")
		require.Error(t, err)
		assert.True(t, myerrors.IsNotFound(err))
	})

	t.Run("Events were published", func(t *testing.T) {
		// created, 2x added, updated, deleted, order placed
		messages := pubsub.Messages(basketevents.TopicName)
		require.Len(t, messages, 6)

		envelope, err := myevents.Decode(messages[5])
		require.NoError(t, err)
		placed := basketevents.OrderPlaced{}
		require.NoError(t, envelope.DecodePayload(&placed))
		assert.Equal(t, store.UserAccessKey(), placed.AccessKey)
		assert.Equal(t, 3000, placed.TotalPrice)
	})
}

func runBasketAPI(t *testing.T) (*httptest.Server, *mypubsub.FakePubSub) {
	c := context.TODO()
	baskets, _, _ := mystore.NewInMemoryStore[basketapi.Basket](c)
	orders, _, _ := mystore.NewInMemoryStore[basketapi.Order](c)
	pubsub := mypubsub.NewFakePubSub()
	nower := mytime.RealNower{}
	publisher := mypublisher.New(pubsub, nower, mylog.Discard())

	router := mux.NewRouter()
	err := basketapi.NewService(baskets, orders, nower, myuuid.RealUUIDer{}, publisher, mylog.Discard()).RegisterEndpoints(c, router)
	require.NoError(t, err)

	return httptest.NewServer(router), pubsub
}
