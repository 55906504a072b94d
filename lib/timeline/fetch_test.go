package timeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<table><tr bgcolor="81D666"><td>1983</td><td><a href="/Lisa">Lisa</a></td></tr></table>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Timeout: 5 * time.Second})

	doc, err := client.Fetch(context.Background(), server.URL+"/timeline")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("tr[bgcolor]").Length())
	require.Equal(t, DefaultUserAgent, userAgent)

	_, err = client.Fetch(context.Background(), server.URL+"/missing")
	require.Error(t, err)
}

func TestFetchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(ClientOptions{UserAgent: "test-agent", Timeout: time.Second})
	_, err := client.Fetch(context.Background(), url)
	require.Error(t, err)
}
