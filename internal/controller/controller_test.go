package controller

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Duhandrade22/vet-system/vetapi"
)

// fakeNotifier records notifications instead of rendering them.
type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

// fakePrompter answers every confirmation the same way.
type fakePrompter struct {
	answer bool
	asked  []string
}

func (p *fakePrompter) Confirm(q string) bool {
	p.asked = append(p.asked, q)
	return p.answer
}

// fakeNavigator records route changes.
type fakeNavigator struct {
	routes []string
}

func (n *fakeNavigator) NavigateTo(route string) { n.routes = append(n.routes, route) }

// newBackend starts a test server and an authenticated client against
// it, counting every request that reaches the handler.
func newBackend(t *testing.T, handler http.Handler) (*vetapi.Client, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	store := vetapi.NewMemorySessionStore()
	store.Save("test-token", []byte(`{"id":"u1","name":"Ana"}`))
	client := vetapi.NewClient(
		vetapi.WithBaseURL(server.URL),
		vetapi.WithSessionStore(store),
	)
	return client, &requests
}

func TestDebounce_CollapsesRapidCalls(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	debounced := Debounce(30*time.Millisecond, func(v string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, v)
	})

	debounced("a")
	debounced("ab")
	debounced("abc")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"abc"}, calls)
}

func TestDebounce_SeparateIdleGaps(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	debounced := Debounce(20*time.Millisecond, func(v string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, v)
	})

	debounced("first")
	time.Sleep(60 * time.Millisecond)
	debounced("second")
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second"}, calls)
}
