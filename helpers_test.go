package mailrify

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testAPIKey = "test_key"

// capturedRequest is what the fake API saw for one call.
type capturedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// fakeAPI answers every request with a fixed status and body and records
// what it received.
type fakeAPI struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []capturedRequest
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

func (f *fakeAPI) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the server")
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// startFakeAPI serves fixed responses at <server>/api, mirroring the real
// base URL layout.
func startFakeAPI(t *testing.T, status int, body string) (*fakeAPI, string) {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv.URL + "/api"
}

// newFakeClient returns a Client talking to a fake API.
func newFakeClient(t *testing.T, status int, body string, opts ...Option) (*Client, *fakeAPI) {
	t.Helper()
	f, baseURL := startFakeAPI(t, status, body)
	c, err := New(testAPIKey, append([]Option{WithBaseURL(baseURL)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, f
}

// clearMailrifyEnv unsets the MAILRIFY_* variables for the duration of the
// test.
func clearMailrifyEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvBaseURL, EnvTimeout} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
