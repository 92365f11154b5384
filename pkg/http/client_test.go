package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSendAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q, want application/json", got)
		}
		if got := r.Header.Get("X-PrivateKey"); got != "key" {
			t.Errorf("X-PrivateKey = %q, want key", got)
		}
		w.Write([]byte(`{"status":true,"message":"ok"}`))
	}))
	defer srv.Close()

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	c := NewClient()
	err := c.SendAndParse(context.Background(), &RequestOptions{
		Method:  MethodPost,
		URL:     srv.URL,
		Headers: map[string]string{"X-PrivateKey": "key"},
		Body:    map[string]string{"mode": "FULL"},
	}, &resp)
	if err != nil {
		t.Fatalf("SendAndParse: %v", err)
	}
	if !resp.Status || resp.Message != "ok" {
		t.Errorf("decoded %+v", resp)
	}
}

func TestClientSendAndParseNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Invalid Token"}`))
	}))
	defer srv.Close()

	c := NewClient()
	err := c.SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, nil)
	if err == nil {
		t.Fatal("expected an error for a 403 response")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "Invalid Token") {
		t.Errorf("error should carry the status and response body, got %v", err)
	}
}
