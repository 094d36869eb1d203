// Package newsapi fetches top headlines from the NewsAPI REST service.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/headlines/internal/domain/news"
)

const (
	topHeadlinesPath = "/v2/top-headlines"
	userAgent        = "Headlines/1.0"
	maxErrorBody     = 4 << 10
)

// ErrRateLimited is returned when the API refuses the call for quota reasons.
var ErrRateLimited = errors.New("newsapi: rate limited")

// ErrMissingAPIKey is returned before any request when no key is configured.
var ErrMissingAPIKey = errors.New("newsapi: api key is empty")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("newsapi: http %d", e.StatusCode)
	}
	return fmt.Sprintf("newsapi: http %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Options select which headlines are requested.
type Options struct {
	BaseURL  string
	APIKey   string
	Country  string
	Category string
	Query    string
	PageSize int
}

// Client implements usecase.HeadlineSource.
type Client struct {
	opts Options
	http *http.Client
}

// NewClient creates a Client. A nil httpClient uses a default with a
// conservative timeout.
func NewClient(opts Options, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{opts: opts, http: httpClient}
}

type response struct {
	Status       string    `json:"status"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	TotalResults *int      `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Fetch requests one page of top headlines.
func (c *Client) Fetch(ctx context.Context) (news.Page, error) {
	if strings.TrimSpace(c.opts.APIKey) == "" {
		return news.Page{}, ErrMissingAPIKey
	}
	endpoint, err := c.endpoint()
	if err != nil {
		return news.Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return news.Page{}, fmt.Errorf("newsapi: build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.opts.APIKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return news.Page{}, fmt.Errorf("newsapi: request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return news.Page{}, decodeError(resp)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return news.Page{}, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if body.Status == "error" {
		return news.Page{}, classify(resp.StatusCode, body.Code, body.Message)
	}

	return toPage(body), nil
}

func (c *Client) endpoint() (string, error) {
	base := strings.TrimRight(strings.TrimSpace(c.opts.BaseURL), "/")
	if base == "" {
		base = "https://newsapi.org"
	}
	u, err := url.Parse(base + topHeadlinesPath)
	if err != nil {
		return "", fmt.Errorf("newsapi: invalid base url: %w", err)
	}

	q := u.Query()
	if c.opts.Country != "" {
		q.Set("country", c.opts.Country)
	}
	if c.opts.Category != "" {
		q.Set("category", c.opts.Category)
	}
	if c.opts.Query != "" {
		q.Set("q", c.opts.Query)
	}
	if c.opts.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(c.opts.PageSize))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func decodeError(resp *http.Response) error {
	var body response
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(data, &body)
	return classify(resp.StatusCode, body.Code, body.Message)
}

func classify(status int, code, message string) error {
	apiErr := &APIError{StatusCode: status, Code: code, Message: message}
	if status == http.StatusTooManyRequests || code == "rateLimited" {
		return fmt.Errorf("%w: %w", ErrRateLimited, apiErr)
	}
	return apiErr
}

func toPage(body response) news.Page {
	items := make([]news.Item, 0, len(body.Articles))
	for _, a := range body.Articles {
		items = append(items, news.Item{
			Title:       a.Title,
			Description: a.Description,
			ImageURL:    a.URLToImage,
			URL:         a.URL,
			Source:      a.Source.Name,
			Author:      a.Author,
			Content:     a.Content,
			PublishedAt: parseTime(a.PublishedAt),
		})
	}
	return news.Page{TotalResults: body.TotalResults, Articles: items}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
