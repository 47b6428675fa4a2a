package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProduct_ReshapesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8001234", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Pasta di semola 500g",
			"description": "Trafilata al bronzo",
			"price": {"amount": 199},
			"categories": [{"name": "Dispensa"}, {"name": "Pasta"}],
			"assets": [{"url": "https://img.example.com/{width}/pasta{slug}.jpg"}],
			"sku": "8001234"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.FetchProduct(context.Background(), "8001234")

	require.NoError(t, err)
	assert.Equal(t, "Pasta di semola 500g", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1.99")))
	assert.Equal(t, "1.99", p.Price.StringFixed(2))
	assert.Equal(t, "Dispensa > Pasta", p.Category)
	assert.Equal(t, "https://img.example.com/500/pasta.jpg", p.Image)
	assert.Equal(t, "8001234", p.SKU)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, "live", p.Source)
}

func TestFetchProduct_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.FetchProduct(context.Background(), "missing")

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestFetchProduct_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "NotJSON", body: `<html>not json</html>`},
		{name: "MissingPrice", body: `{"name": "Pasta", "categories": []}`},
		{name: "MissingName", body: `{"price": {"amount": 199}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			p, err := c.FetchProduct(context.Background(), "8001234")

			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestFetchProduct_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewClient(srv.URL, time.Second)
	p, err := c.FetchProduct(context.Background(), "8001234")

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestFetchProduct_ZeroPriceAmountIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Omaggio", "price": {"amount": 0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.FetchProduct(context.Background(), "omaggio")

	require.NoError(t, err)
	assert.Equal(t, "0.00", p.Price.StringFixed(2))
}
