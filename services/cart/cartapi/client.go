// Package cartapi talks to the remote basket api over http/json.
package cartapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/shopfrontend/lib/myerrors"
	"github.com/MarcGrol/shopfrontend/lib/myhttp"
	"github.com/MarcGrol/shopfrontend/lib/myhttpclient"
	"github.com/MarcGrol/shopfrontend/lib/mylog"
	"github.com/MarcGrol/shopfrontend/services/cart"
)

type accessKeyQuery struct {
	UserAccessKey string `form:"userAccessKey,omitempty"`
}

type productRequest struct {
	ProductID cart.ProductID `json:"productId"`
	Quantity  int            `json:"quantity"`
}

type deleteProductRequest struct {
	ProductID cart.ProductID `json:"productId"`
}

type client struct {
	baseURL      string
	httpSender   myhttpclient.HTTPSender
	queryEncoder *formcodec.Encoder
	logger       mylog.Logger
}

func New(baseURL string, httpSender myhttpclient.HTTPSender, logger mylog.Logger) cart.CartService {
	return &client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpSender:   httpSender,
		queryEncoder: formcodec.NewEncoder(),
		logger:       logger,
	}
}

func (cl *client) GetBasket(c context.Context, accessKey string) (cart.BasketResponse, error) {
	resp := cart.BasketResponse{}
	err := cl.call(c, http.MethodGet, "/api/baskets", accessKey, nil, &resp)
	if err != nil {
		return cart.BasketResponse{}, err
	}
	return resp, nil
}

func (cl *client) AddProduct(c context.Context, accessKey string, productID cart.ProductID, quantity int) ([]cart.BasketItem, error) {
	return cl.callItems(c, http.MethodPost, accessKey, productRequest{ProductID: productID, Quantity: quantity})
}

func (cl *client) UpdateProduct(c context.Context, accessKey string, productID cart.ProductID, quantity int) ([]cart.BasketItem, error) {
	return cl.callItems(c, http.MethodPut, accessKey, productRequest{ProductID: productID, Quantity: quantity})
}

func (cl *client) DeleteProduct(c context.Context, accessKey string, productID cart.ProductID) ([]cart.BasketItem, error) {
	return cl.callItems(c, http.MethodDelete, accessKey, deleteProductRequest{ProductID: productID})
}

func (cl *client) GetOrder(c context.Context, accessKey string, orderID string) (cart.OrderInfo, error) {
	resp := cart.OrderInfo{}
	err := cl.call(c, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), accessKey, nil, &resp)
	if err != nil {
		return cart.OrderInfo{}, err
	}
	return resp, nil
}

func (cl *client) CreateOrder(c context.Context, accessKey string, req cart.OrderRequest) (cart.OrderInfo, error) {
	resp := cart.OrderInfo{}
	err := cl.call(c, http.MethodPost, "/api/orders", accessKey, req, &resp)
	if err != nil {
		return cart.OrderInfo{}, err
	}
	return resp, nil
}

func (cl *client) callItems(c context.Context, method string, accessKey string, req any) ([]cart.BasketItem, error) {
	resp := cart.ItemsResponse{}
	err := cl.call(c, method, "/api/baskets/products", accessKey, req, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (cl *client) call(c context.Context, method string, path string, accessKey string, req any, resp any) error {
	query, err := cl.queryEncoder.Encode(accessKeyQuery{UserAccessKey: accessKey})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error encoding query: %w", err))
	}

	fullURL := cl.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var body []byte
	if req != nil {
		body, err = json.Marshal(req)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error serializing request: %w", err))
		}
	}

	status, respBody, err := cl.httpSender.Send(c, method, fullURL, body)
	if err != nil {
		cl.logger.Log(c, accessKey, mylog.SeverityWarn, "Error calling %s %s: %s", method, path, err)
		return myerrors.NewUnavailableError(err)
	}

	cl.logger.Log(c, accessKey, mylog.SeverityDebug, "%s %s -> %d", method, path, status)

	if status < 200 || status >= 300 {
		return myerrors.NewFromHTTPStatus(status, fmt.Errorf("%s %s failed with status %d: %s", method, path, status, errorMessage(respBody)))
	}

	err = json.Unmarshal(respBody, resp)
	if err != nil {
		return myerrors.NewFromHTTPStatus(http.StatusBadGateway, fmt.Errorf("error parsing response of %s %s: %w", method, path, err))
	}

	return nil
}

func errorMessage(respBody []byte) string {
	errResp := myhttp.ErrorResponse{}
	err := json.Unmarshal(respBody, &errResp)
	if err != nil || errResp.Message == "" {
		return strings.TrimSpace(string(respBody))
	}
	return errResp.Message
}
