package restyutil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mu       sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id, contents string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClientDumpsExchanges(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<table></table>"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	res, err := client.R().SetContext(context.Background()).Get(server.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())

	require.Len(t, out.messages, 1)
	dump := out.messages["1"]
	require.True(t, strings.HasPrefix(dump, "---- REQUEST ----"))
	require.Contains(t, dump, "GET "+server.URL)
	require.Contains(t, dump, "<table></table>")
}

func TestFormatRequestBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	require.Equal(t, "", formatRequestBody(req))

	// resty installs a GetBody on body-less requests that returns no reader
	req.GetBody = func() (io.ReadCloser, error) {
		return nil, nil
	}
	require.Equal(t, "", formatRequestBody(req))

	req, err = http.NewRequest(http.MethodPost, "http://example.com", strings.NewReader("name=Lisa"))
	require.NoError(t, err)
	require.Equal(t, "name=Lisa", formatRequestBody(req))
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale"), []byte("x"), 0600))

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("1", "hello")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}
