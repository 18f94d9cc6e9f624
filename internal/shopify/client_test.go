package shopify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListThemes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-01/themes.json", r.URL.Path)
		assert.Equal(t, "tok-123", r.Header.Get("X-Shopify-Access-Token"))
		fmt.Fprint(w, `{"themes":[
			{"id":1,"name":"Live","role":"main"},
			{"id":2,"name":"Dev","role":"development"}
		]}`)
	}))
	defer srv.Close()

	client := NewClient("tok-123", 2*time.Second)
	client.baseURL = srv.URL

	themes, err := client.ListThemes(context.Background(), "acme.myshopify.com")
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, int64(2), themes[1].ID)
	assert.Equal(t, "development", themes[1].Role)
}

func TestListThemesErrors(t *testing.T) {
	t.Run("missing token fails before any request", func(t *testing.T) {
		client := NewClient("", time.Second)
		_, err := client.ListThemes(context.Background(), "acme.myshopify.com")
		assert.Error(t, err)
	})

	t.Run("non-200 surfaces status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"errors":"invalid token"}`, http.StatusForbidden)
		}))
		defer srv.Close()

		client := NewClient("bad", time.Second)
		client.baseURL = srv.URL

		_, err := client.ListThemes(context.Background(), "acme.myshopify.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})
}
