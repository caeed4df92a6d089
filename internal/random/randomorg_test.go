package random

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ParsesPlainTextFraction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("num"))
		assert.Equal(t, "plain", r.URL.Query().Get("format"))
		w.Write([]byte("0.42\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	v, err := c.Float(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.42, v)
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_GarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a number</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ValueOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("1.00\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("0.50\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond)
	_, err := c.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_DeadServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second)
	_, err := c.Float(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
