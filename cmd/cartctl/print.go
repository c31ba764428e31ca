package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MarcGrol/shopfrontend/services/cart"
)

func (a *app) printCart(store *cart.CartStore) error {
	details, err := store.CartDetailProducts()
	if err != nil {
		return err
	}
	total, err := store.CartTotalPrice()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tPRODUCT\tAMOUNT\tPRICE\tSUBTOTAL\n")
	for _, d := range details {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", d.ProductID, d.Product.Title, d.Amount, formatPrice(d.Product.Price), formatPrice(d.TotalPrice()))
	}
	fmt.Fprintf(w, "\t\t\tTOTAL\t%s\n", formatPrice(total))
	return w.Flush()
}

func (a *app) printOrder(order cart.OrderInfo) {
	fmt.Fprintf(a.out, "Order %s\n", order.ID)
	fmt.Fprintf(a.out, "  %s, %s, %s\n", order.Name, order.Address, order.Phone)
	if order.Email != "" {
		fmt.Fprintf(a.out, "  %s\n", order.Email)
	}
	if order.Comment != "" {
		fmt.Fprintf(a.out, "  %q\n", order.Comment)
	}
	for _, item := range order.Basket.Items {
		fmt.Fprintf(a.out, "  %dx %s\n", item.Quantity, item.Product.Title)
	}
	fmt.Fprintf(a.out, "  total: %s\n", formatPrice(order.TotalPrice))
}

// formatPrice renders an amount in cents.
func formatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
