// internals/clients/echomind/client.go
package echomind

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultTimeout = 15 * time.Second

var (
	// ErrBusy: aksi sejenis masih in-flight (pengganti flag submitting/assigning).
	ErrBusy = errors.New("another request is still in progress")
	// ErrMissingParam: route parameter kosong, tidak ada request yang dikirim.
	ErrMissingParam = errors.New("missing route parameter")
)

// APIError = response non-2xx dari backend (message selalu ada).
type APIError struct {
	Status  int
	Message string
	Code    string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("echomind: %d %s", e.Status, e.Message)
}

// IsNotFound true bila err adalah APIError 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == fiber.StatusNotFound
}

// StatusOf mengembalikan status HTTP dari APIError, 0 untuk error lain.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// envelope {success, message, data} / {success:false, message, error_code, errors}
type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
	Data      json.RawMessage     `json:"data"`
}

type Client struct {
	BaseURL string
	Auth    AuthProvider
	Timeout time.Duration
}

type Option func(*Client)

func WithAuth(a AuthProvider) Option {
	return func(c *Client) { c.Auth = a }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: DefaultTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) timeoutFor(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if remain := time.Until(dl); remain < timeout {
			timeout = remain
		}
	}
	if timeout <= 0 {
		return 0, context.DeadlineExceeded
	}
	return timeout, nil
}

// do mengirim request JSON lalu decode field data ke out (boleh nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	timeout, err := c.timeoutFor(ctx)
	if err != nil {
		return err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.BaseURL + path)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	if c.Auth != nil {
		if tok := c.Auth.Token(); tok != "" {
			a.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		}
	}
	if body != nil {
		a.JSONEncoder(sonic.Marshal).JSON(body)
	}
	a.Timeout(timeout)

	// Bytes() melepas agent
	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("echomind: %s %s: %w", method, path, errors.Join(errs...))
	}

	var env envelope
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &env); err != nil && code < 300 {
			return fmt.Errorf("echomind: decode %s %s: %w", method, path, err)
		}
	}

	if code < 200 || code >= 300 {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = fiber.ErrInternalServerError.Message
			if code < 500 {
				msg = strconv.Itoa(code) + " request failed"
			}
		}
		log.WithFields(log.Fields{"status": code, "method": method, "path": path}).Debug("echomind request gagal")
		return &APIError{Status: code, Message: msg, Code: env.ErrorCode, Fields: env.Errors}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return sonic.Unmarshal(env.Data, out)
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}

func query(path string, v url.Values) string {
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}
