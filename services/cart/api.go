package cart

import "context"

// CartService is the remote basket API. An empty access key means the
// caller has none yet.
//
//go:generate mockgen -source=api.go -package cart -destination cartservice_mock.go CartService
type CartService interface {
	GetBasket(c context.Context, accessKey string) (BasketResponse, error)
	AddProduct(c context.Context, accessKey string, productID ProductID, quantity int) ([]BasketItem, error)
	UpdateProduct(c context.Context, accessKey string, productID ProductID, quantity int) ([]BasketItem, error)
	DeleteProduct(c context.Context, accessKey string, productID ProductID) ([]BasketItem, error)
	GetOrder(c context.Context, accessKey string, orderID string) (OrderInfo, error)
	CreateOrder(c context.Context, accessKey string, req OrderRequest) (OrderInfo, error)
}
