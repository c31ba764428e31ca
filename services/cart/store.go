package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/mykvstore"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
)

// DefaultAddToCartDelay gives the UI time to show its loading state before
// a product is actually added.
const DefaultAddToCartDelay = 2 * time.Second

// CartStore mirrors the remote basket. The last successful server response
// is the authoritative snapshot; local line refs are derived from it and may
// be edited optimistically in between.
//
// The mutex is never held during a remote call. Responses are committed in
// arrival order: the last one wins.
type CartStore struct {
	service        CartService
	keyStore       mykvstore.KeyValueStore
	sleeper        mytime.Sleeper
	logger         mylog.Logger
	addToCartDelay time.Duration

	// serializes adopting a freshly issued access key
	keyLock sync.Mutex

	mu               sync.Mutex
	cartProducts     []CartLineRef
	userAccessKey    string
	cartProductsData []BasketItem
	orderInfo        *OrderInfo
}

type Option func(*CartStore)

func WithAddToCartDelay(d time.Duration) Option {
	return func(s *CartStore) {
		s.addToCartDelay = d
	}
}

func WithSleeper(sleeper mytime.Sleeper) Option {
	return func(s *CartStore) {
		s.sleeper = sleeper
	}
}

func WithLogger(logger mylog.Logger) Option {
	return func(s *CartStore) {
		s.logger = logger
	}
}

// New reads a previously persisted access key from keyStore.
func New(c context.Context, service CartService, keyStore mykvstore.KeyValueStore, opts ...Option) (*CartStore, error) {
	s := &CartStore{
		service:        service,
		keyStore:       keyStore,
		sleeper:        mytime.RealSleeper{},
		logger:         mylog.New("cart"),
		addToCartDelay: DefaultAddToCartDelay,
		cartProducts:   []CartLineRef{},
	}
	for _, opt := range opts {
		opt(s)
	}

	key, found, err := keyStore.Get(c, AccessKeyName)
	if err != nil {
		return nil, errors.Wrap(err, "error reading access key")
	}
	if found {
		s.userAccessKey = key
	}

	return s, nil
}

func (s *CartStore) LoadCart(c context.Context) error {
	accessKey := s.UserAccessKey()

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Load cart")

	resp, err := s.service.GetBasket(c, accessKey)
	if err != nil {
		return errors.Wrap(err, "error loading cart")
	}

	if accessKey == "" {
		err = s.adoptAccessKey(c, resp.User.AccessKey)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateCartProductsData(resp.Items)
	s.syncCartProducts()

	return nil
}

// adoptAccessKey persists and commits a newly issued key, unless a
// concurrent load already did so.
func (s *CartStore) adoptAccessKey(c context.Context, accessKey string) error {
	s.keyLock.Lock()
	defer s.keyLock.Unlock()

	if s.UserAccessKey() != "" {
		return nil
	}

	if accessKey == "" {
		return myerrors.NewFromHTTPStatus(0, fmt.Errorf("basket service did not issue an access key"))
	}

	err := s.keyStore.Put(c, AccessKeyName, accessKey)
	if err != nil {
		return errors.Wrap(err, "error persisting access key")
	}

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Adopted new access key")

	s.mu.Lock()
	s.userAccessKey = accessKey
	s.mu.Unlock()

	return nil
}

// AddProductToCart waits for the add-to-cart delay before calling the
// service. Concurrent calls each run independently.
func (s *CartStore) AddProductToCart(c context.Context, productID ProductID, amount int) error {
	err := s.sleeper.Sleep(c, s.addToCartDelay)
	if err != nil {
		return errors.Wrap(err, "add to cart interrupted")
	}

	accessKey := s.UserAccessKey()

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Add %d x product %s", amount, productID)

	items, err := s.service.AddProduct(c, accessKey, productID, amount)
	if err != nil {
		return errors.Wrapf(err, "error adding product %s", productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateCartProductsData(items)
	s.syncCartProducts()

	return nil
}

// UpdateCartProductAmount changes the local amount right away. Amounts below
// one stay local. On success only the snapshot is replaced: the local line
// refs keep the amounts as edited. On failure the local line refs are reset
// from the current snapshot before the wrapped service error is returned.
// The store is consistent again by then, so callers may ignore the error.
func (s *CartStore) UpdateCartProductAmount(c context.Context, productID ProductID, amount int) error {
	s.mu.Lock()
	s.setCartProductAmount(productID, amount)
	accessKey := s.userAccessKey
	s.mu.Unlock()

	if amount < 1 {
		return nil
	}

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Update product %s to amount %d", productID, amount)

	items, err := s.service.UpdateProduct(c, accessKey, productID, amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Log(c, accessKey, mylog.SeverityWarn, "Update of product %s failed, restoring cart: %s", productID, err)
		s.syncCartProducts()
		return errors.Wrapf(err, "error updating product %s", productID)
	}

	s.updateCartProductsData(items)

	return nil
}

// DeleteProduct removes the line locally before calling the service. On
// failure the local line refs are reset from the current snapshot and the
// wrapped service error is returned, as for UpdateCartProductAmount.
func (s *CartStore) DeleteProduct(c context.Context, productID ProductID) error {
	s.mu.Lock()
	s.removeCartProduct(productID)
	accessKey := s.userAccessKey
	s.mu.Unlock()

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Delete product %s", productID)

	items, err := s.service.DeleteProduct(c, accessKey, productID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Log(c, accessKey, mylog.SeverityWarn, "Delete of product %s failed, restoring cart: %s", productID, err)
		s.syncCartProducts()
		return errors.Wrapf(err, "error deleting product %s", productID)
	}

	s.updateCartProductsData(items)
	s.syncCartProducts()

	return nil
}

func (s *CartStore) LoadOrderInfo(c context.Context, orderID string) error {
	accessKey := s.UserAccessKey()

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Load order %s", orderID)

	order, err := s.service.GetOrder(c, accessKey, orderID)
	if err != nil {
		return errors.Wrapf(err, "error loading order %s", orderID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderInfo = &order

	return nil
}

// PlaceOrder turns the remote basket into an order. The server empties the
// basket, so the local cart is reset as well.
func (s *CartStore) PlaceOrder(c context.Context, req OrderRequest) (OrderInfo, error) {
	accessKey := s.UserAccessKey()

	s.logger.Log(c, accessKey, mylog.SeverityInfo, "Place order for %s", req.Name)

	order, err := s.service.CreateOrder(c, accessKey, req)
	if err != nil {
		return OrderInfo{}, errors.Wrap(err, "error placing order")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderInfo = &order
	s.updateCartProductsData([]BasketItem{})
	s.syncCartProducts()

	return order, nil
}

func (s *CartStore) UserAccessKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userAccessKey
}

// CartProducts returns a copy of the local line refs.
func (s *CartStore) CartProducts() []CartLineRef {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]CartLineRef{}, s.cartProducts...)
}

// Snapshot returns a copy of the last server snapshot, nil before the first
// successful response.
func (s *CartStore) Snapshot() []BasketItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cartProductsData == nil {
		return nil
	}
	return append([]BasketItem{}, s.cartProductsData...)
}

// Below: state transitions, callers hold the lock.

func (s *CartStore) setCartProductAmount(productID ProductID, amount int) {
	for i := range s.cartProducts {
		if s.cartProducts[i].ProductID == productID {
			s.cartProducts[i].Amount = amount
			return
		}
	}
}

func (s *CartStore) removeCartProduct(productID ProductID) {
	remaining := make([]CartLineRef, 0, len(s.cartProducts))
	for _, p := range s.cartProducts {
		if p.ProductID != productID {
			remaining = append(remaining, p)
		}
	}
	s.cartProducts = remaining
}

func (s *CartStore) updateCartProductsData(items []BasketItem) {
	if items == nil {
		items = []BasketItem{}
	}
	s.cartProductsData = items
}

func (s *CartStore) syncCartProducts() {
	s.cartProducts = deriveCartProducts(s.cartProductsData)
}

func deriveCartProducts(items []BasketItem) []CartLineRef {
	lines := make([]CartLineRef, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineRef{
			ProductID: item.Product.ID,
			Amount:    item.Quantity,
		})
	}
	return lines
}
