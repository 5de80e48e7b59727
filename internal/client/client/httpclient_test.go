package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/dmitrijs2005/usermgmt/internal/netx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	Method    string
	Path      string
	Query     string
	Body      map[string]any
	RequestID string
}

type fakeDirectory struct {
	mu     sync.Mutex
	seen   []seenRequest
	status int
	reply  string
}

func (f *fakeDirectory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	var body map[string]any
	if len(b) > 0 {
		_ = json.Unmarshal(b, &body)
	}

	f.mu.Lock()
	f.seen = append(f.seen, seenRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Body:      body,
		RequestID: r.Header.Get(common.RequestIDHeaderName),
	})
	status, reply := f.status, f.reply
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply))
}

func newTestClient(t *testing.T, fd *fakeDirectory) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(fd)
	t.Cleanup(ts.Close)

	c, err := NewHTTPClient(ts.URL+"/api/user", 0, logging.Nop())
	require.NoError(t, err)
	c.newID = func() string { return "req-1" }
	return c
}

func TestNewHTTPClient_RejectsBadEndpoints(t *testing.T) {
	for _, ep := range []string{"", "localhost:3000/api/user", "ftp://host/api/user", "http:///api/user", "http://[::1"} {
		_, err := NewHTTPClient(ep, 0, logging.Nop())
		assert.Error(t, err, ep)
	}
}

func TestHTTPClient_List(t *testing.T) {
	fd := &fakeDirectory{reply: `[{"_id":"1","username":"alice","email":"a@x.com"},{"_id":"2","username":"bob","status":"BLOCKED"}]`}
	c := newTestClient(t, fd)

	got, err := c.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "bob", got[1].Username)
	assert.Equal(t, "BLOCKED", got[1].Status)

	require.Len(t, fd.seen, 1)
	assert.Equal(t, http.MethodGet, fd.seen[0].Method)
	assert.Equal(t, "/api/user", fd.seen[0].Path)
	assert.Empty(t, fd.seen[0].Query)
	assert.Equal(t, "req-1", fd.seen[0].RequestID)
}

func TestHTTPClient_ListNullIsEmpty(t *testing.T) {
	c := newTestClient(t, &fakeDirectory{reply: `null`})

	got, err := c.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHTTPClient_Create(t *testing.T) {
	fd := &fakeDirectory{status: http.StatusCreated}
	c := newTestClient(t, fd)

	err := c.Create(context.Background(), models.CreatePayload{
		Username: "bob", Email: "b@x.com", Password: "pw", Firstname: "Bob", Lastname: "B",
	})
	require.NoError(t, err)

	require.Len(t, fd.seen, 1)
	assert.Equal(t, http.MethodPost, fd.seen[0].Method)
	assert.Equal(t, "/api/user", fd.seen[0].Path)
	assert.Equal(t, map[string]any{
		"username": "bob", "email": "b@x.com", "password": "pw", "firstname": "Bob", "lastname": "B",
	}, fd.seen[0].Body)
}

func TestHTTPClient_UpdateUsesQueryID(t *testing.T) {
	fd := &fakeDirectory{}
	c := newTestClient(t, fd)

	err := c.Update(context.Background(), "1", models.Draft{Email: "alice@new.com", Firstname: "Alice", Lastname: "A"}.UpdatePayload())
	require.NoError(t, err)

	require.Len(t, fd.seen, 1)
	assert.Equal(t, http.MethodPut, fd.seen[0].Method)
	assert.Equal(t, "/api/user", fd.seen[0].Path)
	assert.Equal(t, "id=1", fd.seen[0].Query)
	assert.Equal(t, map[string]any{"email": "alice@new.com", "firstname": "Alice", "lastname": "A"}, fd.seen[0].Body)
}

func TestHTTPClient_DeleteEscapesID(t *testing.T) {
	fd := &fakeDirectory{}
	c := newTestClient(t, fd)

	require.NoError(t, c.Delete(context.Background(), "a b&c"))

	require.Len(t, fd.seen, 1)
	assert.Equal(t, http.MethodDelete, fd.seen[0].Method)
	assert.Equal(t, "id=a+b%26c", fd.seen[0].Query)
	assert.Nil(t, fd.seen[0].Body)
}

func TestHTTPClient_EmptyIDIssuesNoCall(t *testing.T) {
	fd := &fakeDirectory{}
	c := newTestClient(t, fd)

	require.ErrorIs(t, c.Delete(context.Background(), ""), ErrEmptyID)
	require.ErrorIs(t, c.Update(context.Background(), "", models.UpdatePayload{}), ErrEmptyID)
	assert.Empty(t, fd.seen)
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	t.Run("rejected with message", func(t *testing.T) {
		c := newTestClient(t, &fakeDirectory{status: http.StatusBadRequest, reply: `{"message":"email already used"}`})

		err := c.Create(context.Background(), models.CreatePayload{})
		require.ErrorIs(t, err, common.ErrRejected)

		var se *netx.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "email already used", se.Message)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, &fakeDirectory{status: http.StatusNotFound})
		require.ErrorIs(t, c.Delete(context.Background(), "9"), common.ErrNotFound)
	})

	t.Run("unavailable", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		c, err := NewHTTPClient(url+"/api/user", 0, logging.Nop())
		require.NoError(t, err)

		_, err = c.List(context.Background())
		require.ErrorIs(t, err, common.ErrUnavailable)
	})
}

func TestHTTPClient_KeepsEndpointQuery(t *testing.T) {
	fd := &fakeDirectory{}
	ts := httptest.NewServer(fd)
	defer ts.Close()

	c, err := NewHTTPClient(ts.URL+"/api/user?tenant=t1", 0, logging.Nop())
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), "7"))
	require.Len(t, fd.seen, 1)
	assert.Equal(t, "id=7&tenant=t1", fd.seen[0].Query)
	assert.Equal(t, ts.URL+"/api/user?tenant=t1", c.Endpoint())
}
