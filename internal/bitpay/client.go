// Package bitpay fetches invoices from the BitPay REST API. It is the only
// source this service trusts for invoice state.
package bitpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/valyala/fasthttp"
)

const apiVersion = "2.0.0"

var ErrUnexpectedStatus = errors.New("bitpay: unexpected response status")

type Client struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	HTTP    *fasthttp.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Timeout: timeout,
		HTTP: &fasthttp.Client{
			MaxConnsPerHost:     50,
			MaxIdleConnDuration: 30 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnWaitTimeout:  timeout,
		},
	}
}

type invoiceResponse struct {
	Data  *models.Invoice `json:"data"`
	Error string          `json:"error"`
}

// GetInvoice returns the invoice with the given id, or nil when BitPay does
// not know it.
func (c *Client) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(http.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Accept-Version", apiVersion)
	req.SetRequestURI(c.invoiceURL(id))

	if err := c.HTTP.DoTimeout(req, resp, c.timeout(ctx)); err != nil {
		return nil, fmt.Errorf("bitpay: get invoice %s: %w", id, err)
	}

	status := resp.StatusCode()
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w %d for invoice %s", ErrUnexpectedStatus, status, id)
	}

	var body invoiceResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("bitpay: decoding invoice %s: %w", id, err)
	}
	if body.Data == nil || body.Data.ID == "" {
		return nil, nil
	}

	return body.Data, nil
}

func (c *Client) invoiceURL(id string) string {
	u := c.BaseURL + "/invoices/" + url.PathEscape(id)
	if c.Token != "" {
		u += "?token=" + url.QueryEscape(c.Token)
	}
	return u
}

func (c *Client) timeout(ctx context.Context) time.Duration {
	timeout := c.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}
