package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	_, err := tr.Get(context.Background(), "secret-token", "/daily-workings")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json; charset=utf-8", gotContentType)
}

func TestTransportGetWithQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	_, err := tr.GetWithQuery(context.Background(), "tok", "/daily-workings/timerecord", map[string]string{
		"employeeKeys": "K1,K2",
		"start":        "2016-05-01",
		"end":          "2016-05-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "/daily-workings/timerecord", gotPath)
	assert.Equal(t, "employeeKeys=K1%2CK2&end=2016-05-02&start=2016-05-01", gotQuery)
}

func TestTransportPostBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL)
	_, err := tr.Post(context.Background(), "tok", "/daily-workings/timerecord/k", map[string]string{"date": "2016-05-01"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, map[string]any{"date": "2016-05-01"}, gotBody)
}

func TestTransportNetworkError(t *testing.T) {
	tr := NewTransport("http://127.0.0.1:1")
	_, err := tr.Get(context.Background(), "tok", "/employees/1000")
	require.Error(t, err)
}

func TestNewTransportDefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewTransport("").BaseURL)
}
