package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/goodtodo/taskdeck/domain"
	"github.com/goodtodo/taskdeck/pkg/logger"
)

// TokenFunc supplies the current bearer token, or "" when no session
// is active. Keeping it a callback means the client always sees the
// token installed by the most recent login.
type TokenFunc func() string

// Client is the shared HTTP plumbing for the REST repositories. All
// requests carry a generated X-Request-ID which also tags the log
// lines for that request.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	token   TokenFunc
	logger  *zap.Logger
}

// NewClient builds a REST client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, token TokenFunc, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		token:   token,
		logger:  log,
	}
}

// do issues one request and decodes a 2xx JSON body into out (out may
// be nil for empty responses). Non-2xx statuses and transport errors
// come back classified on the domain error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)
	log := logger.WithRequestID(ctx, c.logger)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Request-ID", requestID)
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "encode request body", err)
		}
		req.SetBody(payload)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return domain.WrapError(domain.ErrCodeUnavailable,
			fmt.Sprintf("%s %s", method, path), err)
	}

	status := resp.StatusCode()
	log.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status))

	if status < 200 || status > 299 {
		return errorFromStatus(status, method, path, resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "decode response body", err)
	}
	return nil
}

// serverError is the error body shape the service returns.
type serverError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func errorFromStatus(status int, method, path string, body []byte) error {
	msg := fmt.Sprintf("%s %s returned %d", method, path, status)
	var se serverError
	if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
		msg = se.Message
	}

	var code domain.ErrorCode
	switch {
	case status == fasthttp.StatusUnauthorized:
		code = domain.ErrCodeUnauthorized
	case status == fasthttp.StatusForbidden:
		code = domain.ErrCodeForbidden
	case status == fasthttp.StatusNotFound:
		code = domain.ErrCodeNotFound
	case status >= 400 && status < 500:
		code = domain.ErrCodeInvalid
	default:
		code = domain.ErrCodeUnavailable
	}
	return domain.NewError(code, msg)
}
