// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

func TestResponder__problem(t *testing.T) {
	logger := log.NewNopLogger()

	router := mux.NewRouter()
	router.Methods("GET").Path("/bad").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(logger, w, r)
		responder.Problem(errors.New("bad request body"))
	})

	req := httptest.NewRequest("GET", "/bad", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	w.Flush()

	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "bad request body") {
		t.Errorf("body: %s", w.Body.String())
	}
}

func TestResponder__idempotency(t *testing.T) {
	logger := log.NewNopLogger()

	router := mux.NewRouter()
	router.Methods("POST").Path("/thing").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(logger, w, r)
		if responder == nil {
			return
		}
		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
		})
	})

	do := func() int {
		req := httptest.NewRequest("POST", "/thing", nil)
		req.Header.Set("X-Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		w.Flush()
		return w.Code
	}

	if code := do(); code != http.StatusOK {
		t.Errorf("got %d", code)
	}
	if code := do(); code != http.StatusPreconditionFailed {
		t.Errorf("got %d", code)
	}
}

func TestCleanPath(t *testing.T) {
	if v := CleanPath("/batches/generate"); v != "batches-generate" {
		t.Errorf("got %q", v)
	}
	if v := CleanPath("/ping"); v != "ping" {
		t.Errorf("got %q", v)
	}
}
