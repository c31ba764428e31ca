package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/shopfrontend/services/cart"
)

func newCartCmd(a *app) *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the contents of your cart",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the products in your cart and the total price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				return a.printCart(store)
			})
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <productId> <amount>",
		Short: "Add an amount of a product to your cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, amount, err := parseProductAmount(args)
			if err != nil {
				return err
			}
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				err := store.AddProductToCart(c, productID, amount)
				if err != nil {
					return err
				}
				return a.printCart(store)
			})
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <productId> <amount>",
		Short: "Change the amount of a product in your cart",
		Long: `Change the amount of a product in your cart.

An amount below 1 is only applied locally and is not sent to the basket api.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, amount, err := parseProductAmount(args)
			if err != nil {
				return err
			}
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				err := store.UpdateCartProductAmount(c, productID, amount)
				if err != nil {
					return err
				}
				return a.printCart(store)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <productId>",
		Short: "Remove a product from your cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			return a.withLoadedCart(cmd, func(c context.Context, store *cart.CartStore) error {
				err := store.DeleteProduct(c, productID)
				if err != nil {
					return err
				}
				return a.printCart(store)
			})
		},
	}

	cartCmd.AddCommand(showCmd, addCmd, updateCmd, deleteCmd)

	return cartCmd
}

func parseProductID(arg string) (cart.ProductID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return cart.ProductID(id), nil
}

func parseProductAmount(args []string) (cart.ProductID, int, error) {
	productID, err := parseProductID(args[0])
	if err != nil {
		return 0, 0, err
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid amount %q", args[1])
	}
	return productID, amount, nil
}
