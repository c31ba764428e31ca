package myhttpclient

import (
	"context"
	"time"

	"github.com/MarcGrol/shopfrontend/lib/mylog"
)

//go:generate mockgen -source=api.go -package myhttpclient -destination httpsender_mock.go HTTPSender
type HTTPSender interface {
	Send(c context.Context, method string, url string, body []byte) (int, []byte, error)
}

// New returns a json sender. With HTTP_DEBUG set, request and response dumps
// go to logger at debug severity.
func New(timeout time.Duration, logger mylog.Logger) HTTPSender {
	return newJSONHTTPClient(timeout, logger)
}
