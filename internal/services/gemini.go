// Gemini implementation of [SongSuggester]
//
// Uses the generateContent endpoint with a declared JSON response schema so
// the model returns a parseable array instead of prose.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gigmix/internal/models"
	"gigmix/internal/shared"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiClient implements [SongSuggester] against the Gemini generateContent API.
type GeminiClient struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// NewGeminiClient creates a song-suggestion client with the given API key.
func NewGeminiClient(key string, client *http.Client) *GeminiClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &GeminiClient{
		baseURL:    defaultGeminiBaseURL,
		key:        key,
		httpClient: client,
	}
}

type geminiSchema struct {
	Type       string                  `json:"type"`
	Items      *geminiSchema           `json:"items,omitempty"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMIMEType string        `json:"responseMimeType"`
		ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
	} `json:"generationConfig"`
}

func newSongListRequest(prompt string) geminiRequest {
	var req geminiRequest
	req.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	req.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: prompt}}

	req.GenerationConfig.ResponseMIMEType = "application/json"
	req.GenerationConfig.ResponseSchema = &geminiSchema{
		Type: "ARRAY",
		Items: &geminiSchema{
			Type: "OBJECT",
			Properties: map[string]geminiSchema{
				"artistName": {Type: "STRING"},
				"songTitle":  {Type: "STRING"},
			},
			Required: []string{"artistName", "songTitle"},
		},
	}
	return req
}

// SuggestSongs asks the model for exactly one song per artist.
//
// The response text is itself a JSON-encoded array; a parse failure or an
// unexpected shape fails the whole call with [shared.ErrBadResponse], never a
// partial playlist.
func (c *GeminiClient) SuggestSongs(ctx context.Context, artists []string) ([]models.PlaylistEntry, error) {
	if c.key == "" {
		return nil, fmt.Errorf("%w: suggestion API key not set", shared.ErrMissingConfig)
	}

	prompt := fmt.Sprintf(
		"For each of the following musical artists, pick exactly one well-known song by that artist. "+
			"Return a JSON array with one object per artist, in the same order, "+
			"each with fields \"artistName\" and \"songTitle\". Artists: %s",
		strings.Join(artists, ", "),
	)

	var body struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	reqURL := c.baseURL + "?key=" + c.key
	if err := postJSON(ctx, c.httpClient, reqURL, "", newSongListRequest(prompt), &body); err != nil {
		return nil, fmt.Errorf("%w: song suggestion: %v", shared.ErrAPIRequest, err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates in suggestion response", shared.ErrBadResponse)
	}

	var pairs []struct {
		ArtistName string `json:"artistName"`
		SongTitle  string `json:"songTitle"`
	}
	text := body.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &pairs); err != nil {
		return nil, fmt.Errorf("%w: suggestion payload is not a song array: %v", shared.ErrBadResponse, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: suggestion payload is empty", shared.ErrBadResponse)
	}
	if len(pairs) != len(artists) {
		return nil, fmt.Errorf("%w: expected %d songs, got %d", shared.ErrBadResponse, len(artists), len(pairs))
	}

	entries := make([]models.PlaylistEntry, len(pairs))
	for i, pair := range pairs {
		entries[i] = models.PlaylistEntry{
			Artist:   pair.ArtistName,
			Song:     pair.SongTitle,
			Selected: true,
		}
	}

	return entries, nil
}
