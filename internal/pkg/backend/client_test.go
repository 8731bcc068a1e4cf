package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"Domain already taken"}`, want: "Domain already taken"},
		{name: "validation list", body: `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"msg":"field required"}]}`, want: "value is not a valid email address; field required"},
		{name: "empty detail", body: `{"detail":""}`, want: "HTTP error! status: 400"},
		{name: "no detail", body: `{"error":"nope"}`, want: "HTTP error! status: 400"},
		{name: "not json", body: `<html>bad gateway</html>`, want: "HTTP error! status: 400"},
		{name: "empty body", body: ``, want: "HTTP error! status: 400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.body), 400))
		})
	}
}

func TestClientGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tiers/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("plan_id"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	var out []struct {
		ID int64 `json:"id"`
	}
	err := c.Get(context.Background(), "/tiers/", url.Values{"plan_id": {"2"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestClientPostReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "al-azhar", body["domain"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Domain already registered"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	err := c.Post(context.Background(), "/tenants/", map[string]string{"domain": "al-azhar"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "/tenants/", apiErr.Endpoint)
	assert.Equal(t, "Domain already registered", err.Error())
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second)
	err := c.Get(context.Background(), "/plans/", nil, &[]int{})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClientGetHonoursCacheControl(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "max-age=60")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	for i := 0; i < 3; i++ {
		var out []int
		require.NoError(t, c.Get(context.Background(), "/plans/", nil, &out))
	}
	assert.Equal(t, 1, hits)
}
