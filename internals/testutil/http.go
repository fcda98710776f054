package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	helper "echomind_backend/internals/helpers"
)

// Envelope = bentuk response standar {success, message, data, errors, pagination}.
type Envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code"`
	Errors     map[string][]string `json:"errors"`
	Data       json.RawMessage     `json:"data"`
	Pagination *helper.Pagination  `json:"pagination"`
}

// Decode data envelope ke out.
func (e Envelope) Decode(t testing.TB, out any) {
	t.Helper()
	if err := sonic.Unmarshal(e.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", string(e.Data), err)
	}
}

// Do mengirim request lewat app.Test; body nil = tanpa body.
func (e *Env) Do(t testing.TB, method, path, token string, body any) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.App.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env Envelope
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: non-JSON body %q", method, path, string(raw))
		}
	}
	return resp.StatusCode, env
}
