// YouTube Data API implementation of [VideoFinder] and [PlaylistPublisher]
//
// Search uses the API key alone; playlist mutation additionally requires an
// OAuth bearer token for the signed-in user.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"gigmix/internal/models"
	"gigmix/internal/shared"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// YouTubeClient implements [VideoFinder] and [PlaylistPublisher] against the
// YouTube Data API v3.
type YouTubeClient struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// NewYouTubeClient creates a YouTube client with the given API key.
func NewYouTubeClient(key string, client *http.Client) *YouTubeClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &YouTubeClient{
		baseURL:    defaultYouTubeBaseURL,
		key:        key,
		httpClient: client,
	}
}

// FindVideo searches for "<artist> - <song> official audio" and returns the
// single best-matching video id.
func (y *YouTubeClient) FindVideo(ctx context.Context, artist, song string) (string, error) {
	if y.key == "" {
		return "", fmt.Errorf("%w: video API key not set", shared.ErrMissingConfig)
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("q", fmt.Sprintf("%s - %s official audio", artist, song))
	query.Set("type", "video")
	query.Set("maxResults", "1")
	query.Set("key", y.key)

	var body struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
		} `json:"items"`
	}

	reqURL := y.baseURL + "/search?" + query.Encode()
	if err := getJSON(ctx, y.httpClient, reqURL, &body); err != nil {
		return "", fmt.Errorf("%w: video search: %v", shared.ErrAPIRequest, err)
	}

	if len(body.Items) == 0 || body.Items[0].ID.VideoID == "" {
		return "", fmt.Errorf("%w: no video for '%s - %s'", shared.ErrNoResults, artist, song)
	}

	return body.Items[0].ID.VideoID, nil
}

// CreatePlaylist creates a new private playlist for the token's user.
func (y *YouTubeClient) CreatePlaylist(ctx context.Context, token, title, description string) (models.PlaylistHandle, error) {
	if y.key == "" {
		return models.PlaylistHandle{}, fmt.Errorf("%w: video API key not set", shared.ErrMissingConfig)
	}
	if token == "" {
		return models.PlaylistHandle{}, fmt.Errorf("%w: bearer token required to create a playlist", shared.ErrNotAuthenticated)
	}

	createReq := struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
		Status struct {
			PrivacyStatus string `json:"privacyStatus"`
		} `json:"status"`
	}{}
	createReq.Snippet.Title = title
	createReq.Snippet.Description = description
	createReq.Status.PrivacyStatus = "private"

	var body struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	}

	reqURL := y.baseURL + "/playlists?part=snippet%2Cstatus&key=" + url.QueryEscape(y.key)
	if err := postJSON(ctx, y.httpClient, reqURL, token, createReq, &body); err != nil {
		return models.PlaylistHandle{}, fmt.Errorf("failed to create playlist: %w", err)
	}
	if body.ID == "" {
		return models.PlaylistHandle{}, fmt.Errorf("%w: create response missing playlist id", shared.ErrBadResponse)
	}

	return models.PlaylistHandle{
		ID:    body.ID,
		Title: title,
		URL:   "https://www.youtube.com/playlist?list=" + body.ID,
	}, nil
}

// AddPlaylistItem appends one video to an existing playlist.
func (y *YouTubeClient) AddPlaylistItem(ctx context.Context, token, playlistID, videoID string) error {
	if token == "" {
		return fmt.Errorf("%w: bearer token required to add playlist items", shared.ErrNotAuthenticated)
	}

	itemReq := struct {
		Snippet struct {
			PlaylistID string `json:"playlistId"`
			ResourceID struct {
				Kind    string `json:"kind"`
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	}{}
	itemReq.Snippet.PlaylistID = playlistID
	itemReq.Snippet.ResourceID.Kind = "youtube#video"
	itemReq.Snippet.ResourceID.VideoID = videoID

	reqURL := y.baseURL + "/playlistItems?part=snippet&key=" + url.QueryEscape(y.key)
	if err := postJSON(ctx, y.httpClient, reqURL, token, itemReq, nil); err != nil {
		return fmt.Errorf("failed to add playlist item: %w", err)
	}

	return nil
}

// ParseVideoID extracts a video id from a watch link.
//
// Accepts watch?v= URLs, youtu.be short links, and bare 11-character ids.
func ParseVideoID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}

	if videoIDPattern.MatchString(link) {
		return link, true
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}

	if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
		return id, true
	}

	if strings.Contains(u.Host, "youtu.be") {
		if id := strings.Trim(u.Path, "/"); videoIDPattern.MatchString(id) {
			return id, true
		}
	}

	return "", false
}
