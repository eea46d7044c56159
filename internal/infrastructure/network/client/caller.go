package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet_inspector/internal/domain/entity"
	networkdefinition "wallet_inspector/internal/infrastructure/network/definition"
	"wallet_inspector/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRequestTimeout = 10 * time.Second
	maxBodyExcerpt        = 512
	jsonRPCVersion        = "2.0"
)

// Options tunes the transport of a Client.
type Options struct {
	// RequestTimeout bounds every provider call. Zero means 10s.
	RequestTimeout time.Duration
	// RateLimit is the allowed number of outgoing calls per second. Zero or less disables pacing.
	RateLimit float64
	// BurstLimit is the limiter bucket size; at least 1.
	BurstLimit int
	// MaxConnsPerHost caps the fasthttp connection pool. Zero keeps the fasthttp default.
	MaxConnsPerHost int
}

// Client talks to the blockchain-data provider over JSON-RPC (POST) or REST (GET).
// Every call ends in one of three outcomes besides success: *entity.TransportError,
// *entity.ProtocolError or *entity.DecodeError.
type Client struct {
	httpClient *fasthttp.Client
	endpoints  networkdefinition.Endpoints
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a provider client for the given endpoint table.
func NewClient(endpoints networkdefinition.Endpoints, opts Options, logger *zap.Logger) *Client {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	if opts.BurstLimit < 1 {
		opts.BurstLimit = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &fasthttp.Client{
			Name:            "wallet_inspector",
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		endpoints: endpoints,
		timeout:   opts.RequestTimeout,
		limiter:   rate.NewLimiter(limit, opts.BurstLimit),
		logger:    logger.Named("ProviderClient"),
	}
}

type rpcRequest struct {
	JSONRPC string              `json:"jsonrpc"`
	Method  string              `json:"method"`
	Params  jsoniter.RawMessage `json:"params"`
}

type rpcResponse struct {
	Result jsoniter.RawMessage `json:"result"`
}

// QueryParam is the single key/value pair sent with a REST call.
type QueryParam struct {
	Key   string
	Value string
}

// CallRPC POSTs {"jsonrpc":"2.0","method":method,"params":params} to url and decodes the
// "result" member of the response into R.
func CallRPC[R any, P any](ctx context.Context, c *Client, url, method string, params []P) (R, error) {
	var result R
	if params == nil {
		params = []P{}
	}

	rawParams, err := json.Marshal(params)
	if err != nil {
		return result, fmt.Errorf("failed to encode params for %s: %w", method, err)
	}
	payload, err := json.Marshal(rpcRequest{JSONRPC: jsonRPCVersion, Method: method, Params: rawParams})
	if err != nil {
		return result, fmt.Errorf("failed to encode request for %s: %w", method, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	start := time.Now()
	body, err := c.roundTrip(ctx, method, req)
	if err == nil {
		var envelope rpcResponse
		if uerr := json.Unmarshal(body, &envelope); uerr != nil {
			err = c.decodeError(method, string(rawParams), body, uerr)
		} else if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
			err = c.decodeError(method, string(rawParams), body, errors.New("response has no result"))
		} else if uerr := json.Unmarshal(envelope.Result, &result); uerr != nil {
			err = c.decodeError(method, string(rawParams), body, uerr)
		}
	}
	observe(method, start, err)
	return result, err
}

// CallQuery GETs url/path?key=value and decodes the whole response body into R.
func CallQuery[R any](ctx context.Context, c *Client, url, path string, param QueryParam) (R, error) {
	var result R
	rawParams, _ := json.Marshal(map[string]string{param.Key: param.Value})

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(strings.TrimRight(url, "/") + "/" + strings.TrimLeft(path, "/"))
	req.URI().QueryArgs().Add(param.Key, param.Value)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	body, err := c.roundTrip(ctx, path, req)
	if err == nil {
		if uerr := json.Unmarshal(body, &result); uerr != nil {
			err = c.decodeError(path, string(rawParams), body, uerr)
		}
	}
	observe(path, start, err)
	return result, err
}

// roundTrip executes req and classifies transport and protocol failures.
// On success the returned body is a copy owned by the caller.
func (c *Client) roundTrip(ctx context.Context, endpoint string, req *fasthttp.Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entity.TransportError{Endpoint: endpoint, Timeout: errors.Is(err, context.DeadlineExceeded), Err: err}
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &entity.TransportError{Endpoint: endpoint, Timeout: errors.Is(ctx.Err(), context.DeadlineExceeded), Err: err}
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Calling provider", zap.String("endpoint", endpoint))
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		timeout := errors.Is(err, fasthttp.ErrTimeout) || errors.Is(err, fasthttp.ErrDialTimeout)
		c.logger.Error("Failed to execute request to provider",
			zap.String("endpoint", endpoint),
			zap.Bool("timeout", timeout),
			zap.Error(err))
		return nil, &entity.TransportError{Endpoint: endpoint, Timeout: timeout, Err: err}
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	success := status >= 200 && status < 300

	if !json.Valid(body) {
		if !success {
			c.logger.Error("Provider request failed",
				zap.String("endpoint", endpoint),
				zap.Int("statusCode", status),
				zap.ByteString("responseBody", excerpt(body)))
			return nil, &entity.TransportError{Endpoint: endpoint, StatusCode: status, Err: errors.New(fasthttp.StatusMessage(status))}
		}
		return body, nil // left to the decoder, which reports a DecodeError
	}

	if perr := protocolError(endpoint, body); perr != nil {
		c.logger.Warn("Provider returned an error",
			zap.String("endpoint", endpoint),
			zap.Int("statusCode", status),
			zap.Int("code", perr.Code),
			zap.String("message", perr.Message))
		return nil, perr
	}

	if !success {
		return nil, &entity.TransportError{Endpoint: endpoint, StatusCode: status, Err: errors.New(fasthttp.StatusMessage(status))}
	}
	return body, nil
}

// protocolError reports the provider "error" member if it is present and not null.
// Both {"error":{"code":..,"message":".."}} and {"error":"message"} forms are understood.
func protocolError(endpoint string, body []byte) *entity.ProtocolError {
	errField := json.Get(body, "error")
	switch errField.ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return nil
	case jsoniter.StringValue:
		msg := errField.ToString()
		if msg == "" {
			msg = entity.UnknownProviderError
		}
		return &entity.ProtocolError{Endpoint: endpoint, Message: msg}
	case jsoniter.ObjectValue:
		perr := &entity.ProtocolError{Endpoint: endpoint, Message: entity.UnknownProviderError}
		if m := errField.Get("message"); m.ValueType() == jsoniter.StringValue && m.ToString() != "" {
			perr.Message = m.ToString()
		}
		if code := errField.Get("code"); code.ValueType() == jsoniter.NumberValue {
			perr.Code = code.ToInt()
		}
		return perr
	default:
		return &entity.ProtocolError{Endpoint: endpoint, Message: entity.UnknownProviderError}
	}
}

func (c *Client) decodeError(endpoint, params string, body []byte, err error) *entity.DecodeError {
	c.logger.Error("Could not decode the provider response",
		zap.String("endpoint", endpoint),
		zap.String("params", params),
		zap.ByteString("responseBody", excerpt(body)),
		zap.Error(err))
	return &entity.DecodeError{Endpoint: endpoint, Params: params, Body: string(excerpt(body)), Err: err}
}

func excerpt(body []byte) []byte {
	if len(body) > maxBodyExcerpt {
		return body[:maxBodyExcerpt]
	}
	return body
}

func observe(endpoint string, start time.Time, err error) {
	metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.ProviderRequests.WithLabelValues(endpoint, outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		te *entity.TransportError
		pe *entity.ProtocolError
		de *entity.DecodeError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &te):
		return metrics.OutcomeTransport
	case errors.As(err, &pe):
		return metrics.OutcomeProtocol
	case errors.As(err, &de):
		return metrics.OutcomeDecode
	default:
		return "error"
	}
}
