package cart

import (
	"errors"
	"fmt"
)

// ErrProductNotInSnapshot means a local line ref has no matching product in
// the server snapshot. Only happens between an optimistic edit and the next
// successful sync.
var ErrProductNotInSnapshot = errors.New("product not in cart snapshot")

// CartDetailProducts joins every local line ref with its product from the
// snapshot. Computed on every call.
func (s *CartStore) CartDetailProducts() ([]CartDetailProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartDetailProducts(s.cartProducts, s.cartProductsData)
}

// CartTotalPrice sums price times amount over CartDetailProducts.
func (s *CartStore) CartTotalPrice() (int, error) {
	details, err := s.CartDetailProducts()
	if err != nil {
		return 0, err
	}
	return totalPrice(details), nil
}

// OrderInfoDetails returns the zero OrderInfo until an order is loaded.
func (s *CartStore) OrderInfoDetails() OrderInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderInfo == nil {
		return OrderInfo{}
	}
	return *s.orderInfo
}

func cartDetailProducts(lines []CartLineRef, snapshot []BasketItem) ([]CartDetailProduct, error) {
	details := make([]CartDetailProduct, 0, len(lines))
	for _, line := range lines {
		product, found := findProduct(snapshot, line.ProductID)
		if !found {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, ErrProductNotInSnapshot)
		}
		details = append(details, CartDetailProduct{
			ProductID: line.ProductID,
			Amount:    line.Amount,
			Product: ProductDetail{
				ID:    product.ID,
				Title: product.Title,
				Price: product.Price,
				Image: product.Image.File.URL,
			},
		})
	}
	return details, nil
}

func findProduct(snapshot []BasketItem, productID ProductID) (Product, bool) {
	for _, item := range snapshot {
		if item.Product.ID == productID {
			return item.Product, true
		}
	}
	return Product{}, false
}

func totalPrice(details []CartDetailProduct) int {
	total := 0
	for _, d := range details {
		total += d.TotalPrice()
	}
	return total
}
