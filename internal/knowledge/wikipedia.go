package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("wikipedia page not found")
	ErrUnexpectedReply = errors.New("unexpected reply from wikipedia")
)

type WikipediaConfig struct {
	APIURL         string
	RESTURL        string
	UserAgent      string
	SearchTimeout  time.Duration
	ExtractTimeout time.Duration
	HTTPClient     *http.Client
}

// WikipediaClient reads article intros through the MediaWiki Action API and
// page summaries through the REST API.
type WikipediaClient struct {
	httpClient     *http.Client
	apiURL         string
	restURL        string
	userAgent      string
	searchTimeout  time.Duration
	extractTimeout time.Duration
}

func NewWikipediaClient(cfg WikipediaConfig) *WikipediaClient {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = 10 * time.Second
	}
	if cfg.ExtractTimeout <= 0 {
		cfg.ExtractTimeout = 15 * time.Second
	}
	return &WikipediaClient{
		httpClient:     client,
		apiURL:         cfg.APIURL,
		restURL:        strings.TrimRight(cfg.RESTURL, "/"),
		userAgent:      cfg.UserAgent,
		searchTimeout:  cfg.SearchTimeout,
		extractTimeout: cfg.ExtractTimeout,
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string  `json:"title"`
			Extract *string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

type summaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// Extract searches for query and returns the cleaned plain-text intro of the
// best match. An empty string with a nil error means nothing was found.
func (c *WikipediaClient) Extract(ctx context.Context, query string) (string, error) {
	title, err := c.search(ctx, query)
	if err != nil || title == "" {
		return "", err
	}

	params := url.Values{
		"action":          {"query"},
		"format":          {"json"},
		"prop":            {"extracts"},
		"titles":          {title},
		"exintro":         {"1"},
		"explaintext":     {"1"},
		"exsectionformat": {"plain"},
	}

	var resp extractResponse
	if err := c.getJSON(ctx, c.extractTimeout, c.apiURL+"?"+params.Encode(), &resp); err != nil {
		return "", fmt.Errorf("extract %q: %w", title, err)
	}

	for _, page := range resp.Query.Pages {
		if page.Extract != nil {
			return CleanContent(*page.Extract), nil
		}
	}
	return "", nil
}

func (c *WikipediaClient) search(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"format":   {"json"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"3"},
		"srprop":   {"snippet"},
	}

	var resp searchResponse
	if err := c.getJSON(ctx, c.searchTimeout, c.apiURL+"?"+params.Encode(), &resp); err != nil {
		return "", fmt.Errorf("search %q: %w", query, err)
	}
	if len(resp.Query.Search) == 0 {
		return "", nil
	}
	return resp.Query.Search[0].Title, nil
}

func (c *WikipediaClient) Summary(ctx context.Context, topic string) (*Summary, error) {
	endpoint := c.restURL + "/page/summary/" + url.PathEscape(topic)

	var resp summaryResponse
	if err := c.getJSON(ctx, c.searchTimeout, endpoint, &resp); err != nil {
		return nil, err
	}

	summary := &Summary{
		Title:   resp.Title,
		Extract: resp.Extract,
		URL:     resp.ContentURLs.Desktop.Page,
	}
	if summary.Title == "" {
		summary.Title = topic
	}
	if resp.Thumbnail != nil {
		summary.Thumbnail = resp.Thumbnail.Source
	}
	return summary, nil
}

func (c *WikipediaClient) getJSON(ctx context.Context, timeout time.Duration, endpoint string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUnexpectedReply, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedReply, err)
	}
	return nil
}
