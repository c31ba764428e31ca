// Package cartfake is an in-memory cart.CartService that behaves like the
// remote basket api.
package cartfake

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/lib/myuuid"
	"github.com/MarcGrol/shopfrontend/services/cart"
)

type order struct {
	accessKey string
	info      cart.OrderInfo
}

type FakeCartService struct {
	uuider   myuuid.UUIDer
	products []cart.Product
	Baskets  *mystore.InMemoryStore[[]cart.BasketItem]
	Orders   *mystore.InMemoryStore[order]
}

func New(products []cart.Product) *FakeCartService {
	baskets, _, _ := mystore.NewInMemoryStore[[]cart.BasketItem](context.Background())
	orders, _, _ := mystore.NewInMemoryStore[order](context.Background())
	return &FakeCartService{
		uuider:   myuuid.RealUUIDer{},
		products: products,
		Baskets:  baskets,
		Orders:   orders,
	}
}

func (f *FakeCartService) GetBasket(c context.Context, accessKey string) (cart.BasketResponse, error) {
	items, exists, err := f.Baskets.Get(c, accessKey)
	if err != nil {
		return cart.BasketResponse{}, err
	}
	if accessKey == "" || !exists {
		accessKey = f.uuider.Create()
		items = []cart.BasketItem{}
		err = f.Baskets.Put(c, accessKey, items)
		if err != nil {
			return cart.BasketResponse{}, err
		}
	}
	return cart.BasketResponse{
		User:  cart.User{AccessKey: accessKey},
		Items: slices.Clone(items),
	}, nil
}

func (f *FakeCartService) AddProduct(c context.Context, accessKey string, productID cart.ProductID, quantity int) ([]cart.BasketItem, error) {
	if quantity < 1 {
		return nil, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", quantity)
	}
	return f.modify(c, accessKey, productID, func(items []cart.BasketItem, idx int, product cart.Product) ([]cart.BasketItem, error) {
		if idx < 0 {
			return append(items, cart.BasketItem{Product: product, Quantity: quantity}), nil
		}
		items[idx].Quantity += quantity
		return items, nil
	})
}

func (f *FakeCartService) UpdateProduct(c context.Context, accessKey string, productID cart.ProductID, quantity int) ([]cart.BasketItem, error) {
	if quantity < 1 {
		return nil, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", quantity)
	}
	return f.modify(c, accessKey, productID, func(items []cart.BasketItem, idx int, product cart.Product) ([]cart.BasketItem, error) {
		if idx < 0 {
			return nil, myerrors.NewNotFoundError(fmt.Errorf("product %s not in basket", productID))
		}
		items[idx].Quantity = quantity
		return items, nil
	})
}

func (f *FakeCartService) DeleteProduct(c context.Context, accessKey string, productID cart.ProductID) ([]cart.BasketItem, error) {
	return f.modify(c, accessKey, productID, func(items []cart.BasketItem, idx int, product cart.Product) ([]cart.BasketItem, error) {
		if idx < 0 {
			return nil, myerrors.NewNotFoundError(fmt.Errorf("product %s not in basket", productID))
		}
		return slices.Delete(items, idx, idx+1), nil
	})
}

func (f *FakeCartService) GetOrder(c context.Context, accessKey string, orderID string) (cart.OrderInfo, error) {
	o, exists, err := f.Orders.Get(c, orderID)
	if err != nil {
		return cart.OrderInfo{}, err
	}
	if !exists || accessKey == "" || o.accessKey != accessKey {
		return cart.OrderInfo{}, myerrors.NewNotFoundError(fmt.Errorf("order with id %s not found", orderID))
	}
	return o.info, nil
}

func (f *FakeCartService) CreateOrder(c context.Context, accessKey string, req cart.OrderRequest) (cart.OrderInfo, error) {
	missing := []string{}
	for _, field := range []struct{ name, value string }{
		{"name", req.Name}, {"address", req.Address}, {"phone", req.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return cart.OrderInfo{}, myerrors.NewInvalidInputErrorf("missing fields: %s", strings.Join(missing, ", "))
	}

	var info cart.OrderInfo
	err := f.Baskets.RunInTransaction(c, func(c context.Context) error {
		items, exists, err := f.Baskets.Get(c, accessKey)
		if err != nil {
			return err
		}
		if accessKey == "" || !exists {
			return myerrors.NewNotFoundError(fmt.Errorf("basket with key %s not found", accessKey))
		}
		if len(items) == 0 {
			return myerrors.NewInvalidInputErrorf("basket is empty")
		}

		info = cart.OrderInfo{
			ID:      f.uuider.Create(),
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			Email:   req.Email,
			Comment: req.Comment,
			Basket:  cart.OrderBasket{Items: items},
		}
		for _, item := range items {
			info.TotalPrice += item.Product.Price * item.Quantity
		}

		err = f.Orders.Put(c, info.ID, order{accessKey: accessKey, info: info})
		if err != nil {
			return err
		}
		return f.Baskets.Put(c, accessKey, []cart.BasketItem{})
	})
	if err != nil {
		return cart.OrderInfo{}, err
	}

	return info, nil
}

func (f *FakeCartService) modify(c context.Context, accessKey string, productID cart.ProductID, change func(items []cart.BasketItem, idx int, product cart.Product) ([]cart.BasketItem, error)) ([]cart.BasketItem, error) {
	idx := slices.IndexFunc(f.products, func(p cart.Product) bool { return p.ID == productID })
	if idx < 0 {
		return nil, myerrors.NewInvalidInputErrorf("product %s does not exist", productID)
	}
	product := f.products[idx]

	var result []cart.BasketItem
	err := f.Baskets.RunInTransaction(c, func(c context.Context) error {
		items, exists, err := f.Baskets.Get(c, accessKey)
		if err != nil {
			return err
		}
		if accessKey == "" || !exists {
			return myerrors.NewNotFoundError(fmt.Errorf("basket with key %s not found", accessKey))
		}

		items = slices.Clone(items)
		lineIdx := slices.IndexFunc(items, func(item cart.BasketItem) bool { return item.Product.ID == productID })
		items, err = change(items, lineIdx, product)
		if err != nil {
			return err
		}

		result = slices.Clone(items)
		return f.Baskets.Put(c, accessKey, items)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
