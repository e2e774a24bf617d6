package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// RecordedRequest is a request observed by a TestAPIServer.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string

	ContentLength    int64
	TransferEncoding []string
}

type cannedResponse struct {
	status int
	body   string
}

// TestAPIServer is a local stand-in for the Strike API. Routes are matched on
// method and path, ignoring the query string, and answer with canned
// responses.
type TestAPIServer struct {
	server *httptest.Server

	mu          sync.Mutex
	routes      map[string]cannedResponse
	requests    []RecordedRequest
	shouldError bool
	delay       time.Duration
}

// NewTestAPIServer starts a server that is closed when the test completes.
func NewTestAPIServer(t *testing.T) *TestAPIServer {
	s := &TestAPIServer{
		routes: make(map[string]cannedResponse),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handler))
	t.Cleanup(s.server.Close)
	return s
}

// URL is the server's base URL, without an API version.
func (s *TestAPIServer) URL() string {
	return s.server.URL
}

// Close shuts the server down. Requests made afterwards fail at the transport.
func (s *TestAPIServer) Close() {
	s.server.Close()
}

// Handle registers a canned response for method and path.
func (s *TestAPIServer) Handle(method, path string, status int, body string) {
	s.mu.Lock()
	s.routes[routeKey(method, path)] = cannedResponse{
		status: status,
		body:   body,
	}
	s.mu.Unlock()
}

// HandleJSON registers a canned response whose body is v encoded as JSON.
func (s *TestAPIServer) HandleJSON(t *testing.T, method, path string, status int, v interface{}) {
	body, err := json.Marshal(v)
	require.NoError(t, err)
	s.Handle(method, path, status, string(body))
}

func (s *TestAPIServer) handler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	shouldError := s.shouldError
	delay := s.delay
	route, ok := s.routes[routeKey(r.Method, r.URL.Path)]
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     string(body),

		ContentLength:    r.ContentLength,
		TransferEncoding: r.TransferEncoding,
	})
	s.mu.Unlock()

	time.Sleep(delay)

	if shouldError {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"data":{"status":404,"code":"NOT_FOUND","message":"no route for %s %s"}}`, r.Method, r.URL.Path)
		return
	}

	if len(route.body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(route.status)
	if len(route.body) > 0 {
		io.WriteString(w, route.body)
	}
}

func (s *TestAPIServer) GetReceivedRequests() []RecordedRequest {
	s.mu.Lock()
	copied := make([]RecordedRequest, len(s.requests))
	copy(copied, s.requests)
	s.mu.Unlock()
	return copied
}

func (s *TestAPIServer) SimulateErrors() {
	s.mu.Lock()
	s.shouldError = true
	s.mu.Unlock()
}

func (s *TestAPIServer) SimulateDelay(delay time.Duration) {
	s.mu.Lock()
	s.delay = delay
	s.mu.Unlock()
}

func (s *TestAPIServer) Reset() {
	s.mu.Lock()
	s.shouldError = false
	s.delay = 0
	s.requests = nil
	s.routes = make(map[string]cannedResponse)
	s.mu.Unlock()
}

// NewRandomID returns an id shaped like the ones the API assigns.
func NewRandomID() string {
	return uuid.New().String()
}

func routeKey(method, path string) string {
	return method + " " + path
}
