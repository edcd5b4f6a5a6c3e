package knowledge_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saulo-duarte/quizgen/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWikipediaServer(t *testing.T, handler http.HandlerFunc) *knowledge.WikipediaClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return knowledge.NewWikipediaClient(knowledge.WikipediaConfig{
		APIURL:         srv.URL + "/w/api.php",
		RESTURL:        srv.URL + "/api/rest_v1",
		UserAgent:      "quizgen-test",
		SearchTimeout:  time.Second,
		ExtractTimeout: time.Second,
	})
}

func TestWikipediaClient_Extract(t *testing.T) {
	ctx := context.Background()

	t.Run("SearchThenExtract", func(t *testing.T) {
		client := newWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/w/api.php", r.URL.Path)
			assert.Equal(t, "quizgen-test", r.Header.Get("User-Agent"))
			q := r.URL.Query()
			w.Header().Set("Content-Type", "application/json")

			switch {
			case q.Get("list") == "search":
				assert.Equal(t, "photosynthesis", q.Get("srsearch"))
				assert.Equal(t, "3", q.Get("srlimit"))
				w.Write([]byte(`{"query":{"search":[{"title":"Photosynthesis"},{"title":"Plant"}]}}`))
			case q.Get("prop") == "extracts":
				assert.Equal(t, "Photosynthesis", q.Get("titles"))
				assert.Equal(t, "1", q.Get("explaintext"))
				w.Write([]byte(`{"query":{"pages":{"24544":{"title":"Photosynthesis","extract":"Photosynthesis   is\na process."}}}}`))
			default:
				t.Errorf("unexpected query %s", r.URL.RawQuery)
			}
		})

		content, err := client.Extract(ctx, "photosynthesis")
		require.NoError(t, err)
		assert.Equal(t, "Photosynthesis is a process.", content)
	})

	t.Run("NoSearchHits", func(t *testing.T) {
		calls := 0
		client := newWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"query":{"search":[]}}`))
		})

		content, err := client.Extract(ctx, "qwertyuiop")
		require.NoError(t, err)
		assert.Empty(t, content)
		assert.Equal(t, 1, calls)
	})

	t.Run("ServerError", func(t *testing.T) {
		client := newWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := client.Extract(ctx, "anything")
		assert.ErrorIs(t, err, knowledge.ErrUnexpectedReply)
	})

	t.Run("Timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(srv.Close)

		client := knowledge.NewWikipediaClient(knowledge.WikipediaConfig{
			APIURL:        srv.URL,
			SearchTimeout: 50 * time.Millisecond,
		})

		_, err := client.Extract(ctx, "slow")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestWikipediaClient_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := newWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/rest_v1/page/summary/Black hole", r.URL.Path)
			w.Write([]byte(`{
				"title":"Black hole",
				"extract":"A black hole is a region of spacetime.",
				"content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Black_hole"}},
				"thumbnail":{"source":"https://upload.wikimedia.org/bh.jpg"}
			}`))
		})

		summary, err := client.Summary(ctx, "Black hole")
		require.NoError(t, err)
		assert.Equal(t, &knowledge.Summary{
			Title:     "Black hole",
			Extract:   "A black hole is a region of spacetime.",
			URL:       "https://en.wikipedia.org/wiki/Black_hole",
			Thumbnail: "https://upload.wikimedia.org/bh.jpg",
		}, summary)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newWikipediaServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Summary(ctx, "Nope")
		assert.ErrorIs(t, err, knowledge.ErrNotFound)
	})
}
