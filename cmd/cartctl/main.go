// Command cartctl manages a shopping cart against a remote basket api.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MarcGrol/shopfrontend/lib/myconfig"
	"github.com/MarcGrol/shopfrontend/lib/myhttpclient"
	"github.com/MarcGrol/shopfrontend/lib/mykvstore"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/services/cart"
	"github.com/MarcGrol/shopfrontend/services/cart/cartapi"
)

// storeFactory builds the cart store a command works on. The returned func
// releases its resources.
type storeFactory func(c context.Context) (*cart.CartStore, func(), error)

type app struct {
	out      io.Writer
	newStore storeFactory
}

func main() {
	a := &app{
		out:      os.Stdout,
		newStore: storeFromConfig,
	}
	err := newRootCmd(a).ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cartctl",
		Short: "Manage your shopping cart and orders",
		Long: `cartctl keeps a shopping cart in sync with the basket api.

The access key issued on first use is persisted, so the same cart is used
on every invocation. Configuration is read from the environment and from
an optional .env file in the working directory.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCartCmd(a), newOrderCmd(a))

	return rootCmd
}

func storeFromConfig(c context.Context) (*cart.CartStore, func(), error) {
	cfg, err := myconfig.Load(".env")
	if err != nil {
		return nil, func() {}, err
	}

	keyStore, cleanup, err := mykvstore.New(c, cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("error creating key-value store: %w", err)
	}

	logger := mylog.New("cartctl")
	service := cartapi.New(cfg.BaseURL, myhttpclient.New(cfg.HTTPTimeout, logger), logger)

	store, err := cart.New(c, service, keyStore,
		cart.WithAddToCartDelay(cfg.AddToCartDelay),
		cart.WithLogger(logger))
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	return store, cleanup, nil
}

// withLoadedCart runs f on a freshly loaded cart.
func (a *app) withLoadedCart(cmd *cobra.Command, f func(c context.Context, store *cart.CartStore) error) error {
	c := cmd.Context()

	store, cleanup, err := a.newStore(c)
	if err != nil {
		return err
	}
	defer cleanup()

	err = store.LoadCart(c)
	if err != nil {
		return err
	}

	return f(c, store)
}
