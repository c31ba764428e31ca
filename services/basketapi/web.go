package basketapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfrontend/lib/mycontext"
	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myhttp"
)

var queryDecoder = formcodec.NewDecoder()

func (s *service) getBasketPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query, err := parseQuery(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		basket, err := s.getOrCreateBasket(c, query.UserAccessKey)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, basketResponse{
			User:  userResponse{AccessKey: basket.AccessKey},
			Items: toItemResponses(basket.Lines),
		})
	}
}

func (s *service) addProductPage() http.HandlerFunc {
	return s.productPage(s.addProduct)
}

func (s *service) updateProductPage() http.HandlerFunc {
	return s.productPage(s.updateProduct)
}

func (s *service) deleteProductPage() http.HandlerFunc {
	return s.productPage(s.deleteProduct)
}

func (s *service) productPage(command func(c context.Context, accessKey string, req productRequest) (Basket, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query, err := parseQuery(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		req := productRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		basket, err := command(c, query.UserAccessKey, req)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, itemsResponse{
			Items: toItemResponses(basket.Lines),
		})
	}
}

func (s *service) createOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query, err := parseQuery(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		req := orderRequest{}
		err = json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		order, err := s.createOrder(c, query.UserAccessKey, req)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusCreated, toOrderResponse(order))
	}
}

func (s *service) getOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query, err := parseQuery(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		order, err := s.getOrder(c, query.UserAccessKey, mux.Vars(r)["orderID"])
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, toOrderResponse(order))
	}
}

func (s *service) listOrdersPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		query, err := parseQuery(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		orders, err := s.listOrders(c, query.UserAccessKey)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		resp := ordersResponse{Orders: make([]orderResponse, 0, len(orders))}
		for _, o := range orders {
			resp.Orders = append(resp.Orders, toOrderResponse(o))
		}
		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func parseQuery(r *http.Request) (basketQuery, error) {
	query := basketQuery{}
	err := queryDecoder.Decode(&query, r.URL.Query())
	if err != nil {
		return query, myerrors.NewInvalidInputError(fmt.Errorf("error parsing query: %s", err))
	}
	return query, nil
}

func toOrderResponse(order Order) orderResponse {
	return orderResponse{
		ID:         order.ID,
		Name:       order.Name,
		Address:    order.Address,
		Phone:      order.Phone,
		Email:      order.Email,
		Comment:    order.Comment,
		Basket:     orderBasketResponse{Items: toItemResponses(order.Lines)},
		TotalPrice: order.TotalPrice,
	}
}
