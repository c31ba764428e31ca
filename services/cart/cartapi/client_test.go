package cartapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myhttpclient"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/services/cart"
)

const (
	baseURL   = "http://localhost:8080"
	accessKey = "abc123"
)

const itemsBody = `{"items":[{"product":{"id":6,"title":"Tennis racket","price":16900,"image":{"file":{"url":"http://img/6.jpg"}}},"quantity":2}]}`

func TestClient(t *testing.T) {

	t.Run("Get basket without key omits query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodGet, baseURL+"/api/baskets", nil).
			Return(200, []byte(`{"user":{"accessKey":"new-key"},"items":[]}`), nil)

		// when
		resp, err := sut.GetBasket(ctx, "")

		// then
		require.NoError(t, err)
		assert.Equal(t, "new-key", resp.User.AccessKey)
		assert.Empty(t, resp.Items)
	})

	t.Run("Get basket with key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodGet, baseURL+"/api/baskets?userAccessKey="+accessKey, nil).
			Return(200, []byte(`{"user":{"accessKey":"abc123"},"items":[]}`), nil)

		// when
		resp, err := sut.GetBasket(ctx, accessKey)

		// then
		require.NoError(t, err)
		assert.Equal(t, accessKey, resp.User.AccessKey)
	})

	t.Run("Add product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodPost, baseURL+"/api/baskets/products?userAccessKey="+accessKey, []byte(`{"productId":6,"quantity":2}`)).
			Return(200, []byte(itemsBody), nil)

		// when
		items, err := sut.AddProduct(ctx, accessKey, 6, 2)

		// then
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, cart.ProductID(6), items[0].Product.ID)
		assert.Equal(t, "http://img/6.jpg", items[0].Product.Image.File.URL)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Update product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodPut, baseURL+"/api/baskets/products?userAccessKey="+accessKey, []byte(`{"productId":6,"quantity":2}`)).
			Return(200, []byte(itemsBody), nil)

		// when
		items, err := sut.UpdateProduct(ctx, accessKey, 6, 2)

		// then
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Delete product sends only the product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodDelete, baseURL+"/api/baskets/products?userAccessKey="+accessKey, []byte(`{"productId":7}`)).
			Return(200, []byte(itemsBody), nil)

		// when
		items, err := sut.DeleteProduct(ctx, accessKey, 7)

		// then
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Get order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodGet, baseURL+"/api/orders/order-1?userAccessKey="+accessKey, nil).
			Return(200, []byte(`{"id":"order-1","name":"Marc","basket":`+itemsBody+`,"totalPrice":33800}`), nil)

		// when
		order, err := sut.GetOrder(ctx, accessKey, "order-1")

		// then
		require.NoError(t, err)
		assert.Equal(t, "order-1", order.ID)
		assert.Equal(t, "Marc", order.Name)
		assert.Len(t, order.Basket.Items, 1)
		assert.Equal(t, 33800, order.TotalPrice)
	})

	t.Run("Error response keeps remote status and message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodPost, gomock.Any(), gomock.Any()).
			Return(400, []byte(`{"errorCode":2,"message":"product 99 does not exist"}`), nil)

		// when
		_, err := sut.AddProduct(ctx, accessKey, 99, 1)

		// then
		require.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Contains(t, err.Error(), "product 99 does not exist")
	})

	t.Run("Transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodGet, gomock.Any(), gomock.Any()).
			Return(0, nil, fmt.Errorf("connection refused"))

		// when
		_, err := sut.GetBasket(ctx, accessKey)

		// then
		require.Error(t, err)
		assert.Equal(t, 503, myerrors.GetHTTPStatus(err))
	})

	t.Run("Invalid response body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sender, sut := setup(ctrl)

		// given
		sender.EXPECT().Send(ctx, http.MethodGet, gomock.Any(), gomock.Any()).
			Return(200, []byte(`<html>`), nil)

		// when
		_, err := sut.GetBasket(ctx, accessKey)

		// then
		require.Error(t, err)
		assert.Equal(t, 502, myerrors.GetHTTPStatus(err))
	})
}

func setup(ctrl *gomock.Controller) (context.Context, *myhttpclient.MockHTTPSender, cart.CartService) {
	c := context.TODO()
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	return c, sender, New(baseURL+"/", sender, mylog.Discard())
}
