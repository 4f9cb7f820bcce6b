// Package youtube is a thin client for the two YouTube Data API calls the
// bot needs: listing recent comment threads for a channel and resolving
// video titles.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"comments_bot/internal/model"
)

const baseURL = "https://www.googleapis.com/youtube/v3"

// MaxResults is the page size requested from the comment threads listing.
const MaxResults = 100

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from the YouTube Data API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("youtube api: status %d", e.StatusCode)
}

// Client calls the YouTube Data API with a fixed API key.
type Client struct {
	client HTTPClient
	apiKey string
}

// New creates a Client with the given HTTP client and API key.
func New(client HTTPClient, apiKey string) *Client {
	return &Client{client: client, apiKey: apiKey}
}

type commentThreadsResponse struct {
	Items []struct {
		Snippet struct {
			TopLevelComment struct {
				ID      string `json:"id"`
				Snippet struct {
					VideoID           string    `json:"videoId"`
					AuthorDisplayName string    `json:"authorDisplayName"`
					AuthorChannelURL  string    `json:"authorChannelUrl"`
					TextDisplay       string    `json:"textDisplay"`
					PublishedAt       time.Time `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ListRecentThreads fetches the most recent published comment threads for a
// channel. Comments come back in the order the API returned them, which is
// newest first.
func (c *Client) ListRecentThreads(ctx context.Context, channelID string, maxResults int) ([]model.Comment, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("allThreadsRelatedToChannelId", channelID)
	q.Set("moderationStatus", "published")
	q.Set("maxResults", strconv.Itoa(maxResults))

	var resp commentThreadsResponse
	if err := c.get(ctx, "commentThreads", q, &resp); err != nil {
		return nil, fmt.Errorf("list comment threads for %s: %w", channelID, err)
	}

	comments := make([]model.Comment, 0, len(resp.Items))
	for _, item := range resp.Items {
		top := item.Snippet.TopLevelComment
		comments = append(comments, model.Comment{
			ID:          top.ID,
			VideoID:     top.Snippet.VideoID,
			Author:      top.Snippet.AuthorDisplayName,
			AuthorURL:   top.Snippet.AuthorChannelURL,
			Text:        top.Snippet.TextDisplay,
			PublishedAt: top.Snippet.PublishedAt,
		})
	}
	return comments, nil
}

// ListVideoTitles resolves video IDs to their titles. An empty input
// short-circuits to an empty map without a network call. Videos absent from
// the response (deleted, private) are simply missing from the map.
func (c *Client) ListVideoTitles(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", strings.Join(ids, ","))

	var resp videosResponse
	if err := c.get(ctx, "videos", q, &resp); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	titles := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		titles[item.ID] = item.Snippet.Title
	}
	return titles, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/"+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		_ = json.Unmarshal(body, &apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
