package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gigmix/internal/shared"
)

func TestYouTubeClient(t *testing.T) {
	t.Run("FindVideo", func(t *testing.T) {
		t.Run("Returns Top Result", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}

				q := r.URL.Query()
				if got := q.Get("q"); got != "The Marcus King Band - Goodbye Carolina official audio" {
					t.Errorf("unexpected search query: %q", got)
				}
				if got := q.Get("type"); got != "video" {
					t.Errorf("expected type=video, got %q", got)
				}
				if got := q.Get("maxResults"); got != "1" {
					t.Errorf("expected maxResults=1, got %q", got)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"items":[{"id":{"videoId":"dQw4w9WgXcQ"}}]}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			id, err := client.FindVideo(context.Background(), "The Marcus King Band", "Goodbye Carolina")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if id != "dQw4w9WgXcQ" {
				t.Errorf("unexpected video id: %q", id)
			}
		})

		t.Run("No Results", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"items":[]}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			_, err := client.FindVideo(context.Background(), "Nobody", "Nothing")
			if !errors.Is(err, shared.ErrNoResults) {
				t.Errorf("expected ErrNoResults, got %v", err)
			}
		})

		t.Run("Missing API Key", func(t *testing.T) {
			client := NewYouTubeClient("", nil)

			_, err := client.FindVideo(context.Background(), "Anyone", "Anything")
			if !errors.Is(err, shared.ErrMissingConfig) {
				t.Errorf("expected ErrMissingConfig, got %v", err)
			}
		})
	})

	t.Run("CreatePlaylist", func(t *testing.T) {
		t.Run("Creates Private Playlist", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playlists" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer user_token" {
					t.Errorf("expected bearer header, got %q", got)
				}

				var req struct {
					Snippet struct {
						Title       string `json:"title"`
						Description string `json:"description"`
					} `json:"snippet"`
					Status struct {
						PrivacyStatus string `json:"privacyStatus"`
					} `json:"status"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}

				if req.Snippet.Title != "Concert Mix" {
					t.Errorf("unexpected title: %q", req.Snippet.Title)
				}
				if req.Status.PrivacyStatus != "private" {
					t.Errorf("expected private playlist, got %q", req.Status.PrivacyStatus)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"PL123","snippet":{"title":"Concert Mix"}}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			handle, err := client.CreatePlaylist(context.Background(), "user_token", "Concert Mix", "Songs from upcoming shows")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if handle.ID != "PL123" {
				t.Errorf("unexpected playlist id: %q", handle.ID)
			}
			if handle.URL != "https://www.youtube.com/playlist?list=PL123" {
				t.Errorf("unexpected playlist URL: %q", handle.URL)
			}
		})

		t.Run("Missing Token", func(t *testing.T) {
			client := NewYouTubeClient("yt_key", nil)

			_, err := client.CreatePlaylist(context.Background(), "", "Concert Mix", "")
			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
		})

		t.Run("Missing Playlist ID", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			_, err := client.CreatePlaylist(context.Background(), "user_token", "Concert Mix", "")
			if !errors.Is(err, shared.ErrBadResponse) {
				t.Errorf("expected ErrBadResponse, got %v", err)
			}
		})
	})

	t.Run("AddPlaylistItem", func(t *testing.T) {
		t.Run("Posts Video Resource", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playlistItems" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}

				var req struct {
					Snippet struct {
						PlaylistID string `json:"playlistId"`
						ResourceID struct {
							Kind    string `json:"kind"`
							VideoID string `json:"videoId"`
						} `json:"resourceId"`
					} `json:"snippet"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}

				if req.Snippet.PlaylistID != "PL123" {
					t.Errorf("unexpected playlist id: %q", req.Snippet.PlaylistID)
				}
				if req.Snippet.ResourceID.Kind != "youtube#video" {
					t.Errorf("unexpected resource kind: %q", req.Snippet.ResourceID.Kind)
				}
				if req.Snippet.ResourceID.VideoID != "dQw4w9WgXcQ" {
					t.Errorf("unexpected video id: %q", req.Snippet.ResourceID.VideoID)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"PLI1"}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			err := client.AddPlaylistItem(context.Background(), "user_token", "PL123", "dQw4w9WgXcQ")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Provider Rejection", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
			}))
			defer server.Close()

			client := NewYouTubeClient("yt_key", server.Client())
			client.baseURL = server.URL

			err := client.AddPlaylistItem(context.Background(), "user_token", "PL123", "dQw4w9WgXcQ")
			if err == nil {
				t.Fatal("expected error for rejected add")
			}
		})
	})

	t.Run("ParseVideoID", func(t *testing.T) {
		cases := []struct {
			name string
			link string
			want string
			ok   bool
		}{
			{"Watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
			{"Short Link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
			{"Bare ID", "dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
			{"Watch URL With Extras", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
			{"Empty", "", "", false},
			{"Not A Video Link", "https://example.com/page", "", false},
			{"Short ID", "abc123", "", false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := ParseVideoID(tc.link)
				if ok != tc.ok {
					t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
				}
				if got != tc.want {
					t.Errorf("expected id %q, got %q", tc.want, got)
				}
			})
		}
	})
}
