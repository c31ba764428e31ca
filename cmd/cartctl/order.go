package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/shopfrontend/services/cart"
)

func newOrderCmd(a *app) *cobra.Command {
	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Place or inspect orders",
	}

	req := cart.OrderRequest{}
	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "Turn your cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				order, err := store.PlaceOrder(c, req)
				if err != nil {
					return err
				}
				a.printOrder(order)
				return nil
			})
		},
	}
	placeCmd.Flags().StringVar(&req.Name, "name", "", "name of the recipient")
	placeCmd.Flags().StringVar(&req.Address, "address", "", "delivery address")
	placeCmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	placeCmd.Flags().StringVar(&req.Email, "email", "", "email address")
	placeCmd.Flags().StringVar(&req.Comment, "comment", "", "comment for the delivery")
	_ = placeCmd.MarkFlagRequired("name")
	_ = placeCmd.MarkFlagRequired("address")
	_ = placeCmd.MarkFlagRequired("phone")

	showCmd := &cobra.Command{
		Use:   "show <orderId>",
		Short: "Show a previously placed order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				err := store.LoadOrderInfo(c, args[0])
				if err != nil {
					return err
				}
				a.printOrder(store.OrderInfoDetails())
				return nil
			})
		},
	}

	orderCmd.AddCommand(placeCmd, showCmd)

	return orderCmd
}
