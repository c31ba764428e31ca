package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MarcGrol/shopfrontend/lib/mylog"
)

const (
	defaultTimeout = 5 * time.Second
)

type jsonHTTPClient struct {
	client *http.Client
	logger mylog.Logger
	debug  bool
}

func newJSONHTTPClient(timeout time.Duration, logger mylog.Logger) *jsonHTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = mylog.Discard()
	}
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
		debug:  os.Getenv("HTTP_DEBUG") != "",
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	var reqBody io.Reader
	if len(body) > 0 {
		reqBody = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %w", method, url, err)
	}

	if len(body) > 0 {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	if c.debug {
		reqDump, err := httputil.DumpRequestOut(httpReq, true)
		if err == nil {
			c.logger.Log(ctx, "http", mylog.SeverityDebug, "HTTP-req:\n%s", string(reqDump))
		}
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %w", method, url, err)
	}
	defer httpResp.Body.Close()

	if c.debug {
		respDump, err := httputil.DumpResponse(httpResp, true)
		if err == nil {
			c.logger.Log(ctx, "http", mylog.SeverityDebug, "HTTP-resp:\n%s", string(respDump))
		}
		c.logger.Log(ctx, "http", mylog.SeverityDebug, "HTTP call: %s %s -> %d", method, url, httpResp.StatusCode)
	}

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response %s %s: %w", method, url, err)
	}

	return httpResp.StatusCode, respPayload, nil
}
