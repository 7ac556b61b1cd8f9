package test

import (
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/revdash/revdash/internal/dashboard"
)

var _ dashboard.Requester = (*TestRequester)(nil)

type Call struct {
	Method string
	Path   string
	Values url.Values
}

type stub struct {
	body string
	err  error
}

// TestRequester scripts dashboard responses per method and path, and
// records every call so tests can assert on request counts and bodies.
type TestRequester struct {
	t     *testing.T
	mu    sync.Mutex
	stubs map[string]stub
	calls []Call
}

func NewTestRequester(t *testing.T) *TestRequester {
	return &TestRequester{
		t:     t,
		stubs: make(map[string]stub),
	}
}

func (r *TestRequester) StubGet(path string, body string) {
	r.stubs["GET "+path] = stub{body: body}
}

func (r *TestRequester) StubPost(path string, body string) {
	r.stubs["POST "+path] = stub{body: body}
}

func (r *TestRequester) FailGet(path string, err error) {
	r.stubs["GET "+path] = stub{err: err}
}

func (r *TestRequester) FailPost(path string, err error) {
	r.stubs["POST "+path] = stub{err: err}
}

func (r *TestRequester) Get(path string, query url.Values) ([]byte, error) {
	return r.record("GET", path, query)
}

func (r *TestRequester) PostForm(path string, form url.Values) ([]byte, error) {
	return r.record("POST", path, form)
}

func (r *TestRequester) record(method string, path string, values url.Values) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Path: path, Values: values})
	s, ok := r.stubs[method+" "+path]
	if !ok {
		return nil, fmt.Errorf("unexpected request %s %s", method, path)
	}
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

// CallsTo returns the recorded calls for a method and path.
func (r *TestRequester) CallsTo(method string, path string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ret []Call
	for _, c := range r.calls {
		if c.Method == method && c.Path == path {
			ret = append(ret, c)
		}
	}
	return ret
}
