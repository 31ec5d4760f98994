package tcgapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) (*Client, *httptest.Server, func()) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	server := httptest.NewServer(nil)
	client := NewClient(
		logger,
		WithBaseURL(server.URL),
		WithAPIKey("test-key"),
		WithRetryConfig(3, time.Millisecond, 10*time.Millisecond),
	)
	client.client = server.Client()

	cleanup := func() {
		server.Close()
	}

	return client, server, cleanup
}

const pageBody = `{
	"data": [
		{"id": "base1-4", "name": "Charizard", "set": {"id": "base1", "name": "Base Set", "series": "Base"}, "number": "4"},
		{"id": "base1-2", "name": "Blastoise", "set": {"id": "base1", "name": "Base Set", "series": "Base"}, "number": "2"}
	],
	"page": 2,
	"pageSize": 250,
	"count": 2,
	"totalCount": 5000
}`

func TestClient_GetCardsPage(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/cards", r.URL.Path)
			assert.Equal(t, "*", r.URL.Query().Get("q"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "250", r.URL.Query().Get("pageSize"))
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(pageBody))
		})

		page, err := client.GetCardsPage(ctx, "*", 2, 250)
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, 5000, page.TotalCount)
		assert.Equal(t, 2, page.Page)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls int32
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(pageBody))
		})

		page, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("rate limit handling", func(t *testing.T) {
		var calls int32
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(pageBody))
		})

		_, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("rate limit wait replaces backoff", func(t *testing.T) {
		var sleeps []time.Duration
		client.sleep = func(ctx context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)
			return nil
		}
		defer func() { client.sleep = sleepCtx }()

		var calls int32
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit exceeded")
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
		// capped Retry-After between attempts, nothing after the last one
		assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, sleeps)
	})

	t.Run("server errors back off between attempts", func(t *testing.T) {
		var sleeps []time.Duration
		client.sleep = func(ctx context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)
			return nil
		}
		defer func() { client.sleep = sleepCtx }()

		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.Error(t, err)
		assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, sleeps)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls int32
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.Error(t, err)
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("max retries exceeded", func(t *testing.T) {
		var calls int32
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.GetCardsPage(ctx, "*", 1, 250)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max retries exceeded")
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("invalid paging", func(t *testing.T) {
		_, err := client.GetCardsPage(ctx, "*", 0, 250)
		assert.Error(t, err)
		_, err = client.GetCardsPage(ctx, "*", 1, 251)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := client.GetCardsPage(cancelled, "*", 1, 250)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_TotalCount(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		w.Write([]byte(`{"data": [{"id": "base1-1"}], "page": 1, "pageSize": 1, "count": 1, "totalCount": 18234}`))
	})

	total, err := client.TotalCount(context.Background(), "*")
	require.NoError(t, err)
	assert.Equal(t, 18234, total)
}

func TestClient_GetCard(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cards/base1-4", r.URL.Path)
			w.Write([]byte(`{"data": {
				"id": "base1-4", "name": "Charizard", "number": "4", "rarity": "Rare Holo",
				"set": {"id": "base1", "name": "Base Set", "series": "Base"},
				"images": {"small": "s.png", "large": "l.png"},
				"tcgplayer": {"url": "https://tcgplayer.example/4", "prices": {"holofoil": {"market": 350.5, "mid": 300}}}
			}}`))
		})

		card, err := client.GetCard(ctx, "base1-4")
		require.NoError(t, err)
		assert.Equal(t, "Charizard", card.Name)
		assert.Equal(t, "Base Set", card.Set.Name)

		holo, ok := card.Price("holofoil")
		require.True(t, ok)
		assert.Equal(t, 350.5, *holo.Market)
		_, ok = card.Price("normal")
		assert.False(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetCard(ctx, "missing-1")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}
