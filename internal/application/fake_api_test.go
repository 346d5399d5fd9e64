package application_test

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

type apiCall struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type apiHandler func(call apiCall) (string, error)

// fakeAPI is an in-memory domain.APIClient answering with canned JSON.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	handler apiHandler
}

func newFakeAPI(h apiHandler) *fakeAPI { return &fakeAPI{handler: h} }

func respond(body string) apiHandler {
	return func(apiCall) (string, error) { return body, nil }
}

func fail(status int, msg string) apiHandler {
	return func(apiCall) (string, error) {
		return "", &domain.APIError{Status: status, Message: msg}
	}
}

func (f *fakeAPI) Get(_ context.Context, path string, params *domain.Params, out any) error {
	return f.serve(apiCall{Method: "GET", Path: path, Query: params.Values()}, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	return f.serve(apiCall{Method: "POST", Path: path, Body: body}, out)
}

func (f *fakeAPI) serve(c apiCall, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	h := f.handler
	f.mu.Unlock()

	body, err := h(c)
	if err != nil {
		return err
	}
	if out == nil || body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func (f *fakeAPI) LastCall() apiCall {
	calls := f.Calls()
	if len(calls) == 0 {
		return apiCall{}
	}
	return calls[len(calls)-1]
}

func (f *fakeAPI) SetHandler(h apiHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = h
}
