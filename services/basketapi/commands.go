package basketapi

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myevents"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/services/basketapi/basketevents"
)

// getOrCreateBasket returns the basket of a known key. An absent or unknown
// key results in a fresh basket with a newly issued key.
func (s *service) getOrCreateBasket(c context.Context, accessKey string) (Basket, error) {
	if accessKey != "" {
		basket, found, err := s.basketStore.Get(c, accessKey)
		if err != nil {
			return Basket{}, myerrors.NewInternalError(err)
		}
		if found {
			s.logger.Log(c, accessKey, mylog.SeverityInfo, "Fetch basket")
			return basket, nil
		}
	}

	basket := Basket{
		AccessKey: s.uuider.Create(),
		CreatedAt: s.nower.Now(),
		Lines:     []BasketLine{},
	}

	s.logger.Log(c, basket.AccessKey, mylog.SeverityInfo, "Creating new basket")

	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		err := s.basketStore.Put(c, basket.AccessKey, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, basketevents.TopicName, basketevents.BasketCreated{
			AccessKey: basket.AccessKey,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Basket{}, err
	}

	return basket, nil
}

func (s *service) addProduct(c context.Context, accessKey string, req productRequest) (Basket, error) {
	if req.Quantity < 1 {
		return Basket{}, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", req.Quantity)
	}

	return s.modifyBasket(c, accessKey, req.ProductID, func(basket *Basket) (myevents.Event, error) {
		idx := basket.lineIndex(req.ProductID)
		if idx < 0 {
			basket.Lines = append(basket.Lines, BasketLine{ProductID: req.ProductID, Quantity: req.Quantity})
			idx = len(basket.Lines) - 1
		} else {
			basket.Lines[idx].Quantity += req.Quantity
		}

		return basketevents.BasketProductAdded{
			AccessKey: accessKey,
			ProductID: req.ProductID,
			Quantity:  basket.Lines[idx].Quantity,
		}, nil
	})
}

func (s *service) updateProduct(c context.Context, accessKey string, req productRequest) (Basket, error) {
	if req.Quantity < 1 {
		return Basket{}, myerrors.NewInvalidInputErrorf("quantity must be at least 1, got %d", req.Quantity)
	}

	return s.modifyBasket(c, accessKey, req.ProductID, func(basket *Basket) (myevents.Event, error) {
		idx := basket.lineIndex(req.ProductID)
		if idx < 0 {
			return nil, myerrors.NewNotFoundError(fmt.Errorf("product %d not in basket", req.ProductID))
		}
		basket.Lines[idx].Quantity = req.Quantity

		return basketevents.BasketProductUpdated{
			AccessKey: accessKey,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}, nil
	})
}

func (s *service) deleteProduct(c context.Context, accessKey string, req productRequest) (Basket, error) {
	return s.modifyBasket(c, accessKey, req.ProductID, func(basket *Basket) (myevents.Event, error) {
		idx := basket.lineIndex(req.ProductID)
		if idx < 0 {
			return nil, myerrors.NewNotFoundError(fmt.Errorf("product %d not in basket", req.ProductID))
		}
		basket.Lines = append(basket.Lines[:idx], basket.Lines[idx+1:]...)

		return basketevents.BasketProductDeleted{
			AccessKey: accessKey,
			ProductID: req.ProductID,
		}, nil
	})
}

// modifyBasket runs modify on the stored basket within a transaction and
// publishes the event it returns.
func (s *service) modifyBasket(c context.Context, accessKey string, productID int, modify func(basket *Basket) (myevents.Event, error)) (Basket, error) {
	if accessKey == "" {
		return Basket{}, myerrors.NewNotFoundError(fmt.Errorf("userAccessKey is required"))
	}

	_, found := findProduct(productID)
	if !found {
		return Basket{}, myerrors.NewInvalidInputErrorf("product %d does not exist", productID)
	}

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Modify basket for product %d", productID)

	var basket Basket
	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		basket, found, err = s.basketStore.Get(c, accessKey)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("basket with key %s not found", accessKey))
		}
		basket.Lines = slices.Clone(basket.Lines)

		event, err := modify(&basket)
		if err != nil {
			return err
		}

		now := s.nower.Now()
		basket.LastModified = &now

		err = s.basketStore.Put(c, accessKey, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, basketevents.TopicName, event)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Basket{}, err
	}

	return basket, nil
}

func (s *service) createOrder(c context.Context, accessKey string, req orderRequest) (Order, error) {
	missing := []string{}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return Order{}, myerrors.NewInvalidInputErrorf("missing fields: %s", strings.Join(missing, ", "))
	}
	if accessKey == "" {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("userAccessKey is required"))
	}

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Create order for %s", req.Name)

	var order Order
	// Nested transactions: any failure rolls back both the order and the basket.
	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		return s.orderStore.RunInTransaction(c, func(orderCtx context.Context) error {
			return s.placeOrder(c, orderCtx, accessKey, req, &order)
		})
	})
	if err != nil {
		return Order{}, err
	}

	return order, nil
}

func (s *service) placeOrder(c context.Context, orderCtx context.Context, accessKey string, req orderRequest, order *Order) error {
	basket, found, err := s.basketStore.Get(c, accessKey)
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if !found {
		return myerrors.NewNotFoundError(fmt.Errorf("basket with key %s not found", accessKey))
	}
	if len(basket.Lines) == 0 {
		return myerrors.NewInvalidInputErrorf("basket is empty")
	}

	*order = Order{
		ID:         s.uuider.Create(),
		AccessKey:  accessKey,
		CreatedAt:  s.nower.Now(),
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Email:      req.Email,
		Comment:    req.Comment,
		Lines:      basket.Lines,
		TotalPrice: calculateTotalPrice(basket.Lines),
	}

	err = s.orderStore.Put(orderCtx, order.ID, *order)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	basket.Lines = []BasketLine{}
	basket.LastModified = &order.CreatedAt
	err = s.basketStore.Put(c, accessKey, basket)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	err = s.publisher.Publish(orderCtx, basketevents.TopicName, basketevents.OrderPlaced{
		AccessKey:  accessKey,
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice,
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

// getOrder only reveals an order to the key that placed it.
func (s *service) getOrder(c context.Context, accessKey string, orderID string) (Order, error) {
	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Fetch order %s", orderID)

	order, found, err := s.orderStore.Get(c, orderID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found || accessKey == "" || order.AccessKey != accessKey {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with id %s not found", orderID))
	}

	return order, nil
}

// listOrders returns the orders of a key, most recent first.
func (s *service) listOrders(c context.Context, accessKey string) ([]Order, error) {
	if accessKey == "" {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("userAccessKey is required"))
	}

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "List orders")

	orders, err := s.orderStore.Query(c, []mystore.Filter{{Field: "AccessKey", Compare: "=", Value: accessKey}}, "-CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	return orders, nil
}
