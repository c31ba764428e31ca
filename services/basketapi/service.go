package basketapi

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/lib/mypublisher"
	"github.com/MarcGrol/shopfrontend/lib/mystore"
	"github.com/MarcGrol/shopfrontend/lib/mytime"
	"github.com/MarcGrol/shopfrontend/lib/myuuid"
	"github.com/MarcGrol/shopfrontend/services/basketapi/basketevents"
)

type service struct {
	basketStore mystore.Store[Basket]
	orderStore  mystore.Store[Order]
	publisher   mypublisher.Publisher
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(basketStore mystore.Store[Basket], orderStore mystore.Store[Order], nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher, logger mylog.Logger) *service {
	return &service{
		basketStore: basketStore,
		orderStore:  orderStore,
		publisher:   pub,
		nower:       nower,
		uuider:      uuider,
		logger:      logger,
	}
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, basketevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %w", basketevents.TopicName, err)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/baskets", s.getBasketPage()).Methods("GET")
	api.HandleFunc("/baskets/products", s.addProductPage()).Methods("POST")
	api.HandleFunc("/baskets/products", s.updateProductPage()).Methods("PUT")
	api.HandleFunc("/baskets/products", s.deleteProductPage()).Methods("DELETE")
	api.HandleFunc("/orders", s.createOrderPage()).Methods("POST")
	api.HandleFunc("/orders", s.listOrdersPage()).Methods("GET")
	api.HandleFunc("/orders/{orderID}", s.getOrderPage()).Methods("GET")

	return nil
}
