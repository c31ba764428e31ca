package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/MarcGrol/shopfrontend/lib/myconfig"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mypublisher"
	"github.com/MarcGrol/shopfrontend/lib/mypubsub"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
	"github.com/MarcGrol/shopfrontend/lib/myuuid"
	"github.com/MarcGrol/shopfrontend/services/basketapi"
)

func main() {
	c := context.Background()

	cfg, err := myconfig.Load(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}

	router := mux.NewRouter()
	router.Use(otelmux.Middleware("basketapi"))

	basketStore, basketStoreCleanup, err := mystore.New[basketapi.Basket](c)
	if err != nil {
		log.Fatalf("Error creating basket store: %s", err)
	}
	defer basketStoreCleanup()

	orderStore, orderStoreCleanup, err := mystore.New[basketapi.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	nower := mytime.RealNower{}
	publisher := mypublisher.New(pubsub, nower, mylog.New("publisher"))

	basketService := basketapi.NewService(basketStore, orderStore, nower, myuuid.RealUUIDer{}, publisher, mylog.New("basketapi"))
	err = basketService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering basket endpoints: %s", err)
	}

	startWebServerBlocking(cfg.Port, router)
}

func startWebServerBlocking(port string, router *mux.Router) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s/api/baskets)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
