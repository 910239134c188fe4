package server

import (
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

// OAuthResult carries the outcome of the authorization code flow.
type OAuthResult struct {
	Token *oauth2.Token
	err   error
}

func (o *OAuthResult) Error() error {
	return o.err
}

// OAuthHandler serves the Google redirect callback and turns the
// authorization code into a token. Implements [Handler].
type OAuthHandler struct {
	config     *oauth2.Config
	state      string
	resultChan chan OAuthResult
	once       sync.Once
}

// NewOAuthHandler creates a callback handler bound to the given OAuth2
// config. The state token must be random per flow for CSRF protection.
func NewOAuthHandler(config *oauth2.Config, state string) *OAuthHandler {
	return &OAuthHandler{
		config:     config,
		state:      state,
		resultChan: make(chan OAuthResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *OAuthHandler) Routes() []string {
	return []string{"/callback"}
}

// ServeHTTP validates the callback, exchanges the code, and delivers the
// result. Only the first result is delivered; later callbacks get an error
// page.
func (h *OAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := h.exchange(r)
	if err != nil {
		h.send(OAuthResult{err: err})
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.send(OAuthResult{Token: token})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, signedInPage)
}

// exchange checks the state and code parameters and trades the code for a
// token using the request's context.
func (h *OAuthHandler) exchange(r *http.Request) (*oauth2.Token, error) {
	query := r.URL.Query()

	if query.Get("state") != h.state {
		return nil, fmt.Errorf("invalid state parameter")
	}

	code := query.Get("code")
	if code == "" {
		return nil, fmt.Errorf("authorization failed: %s - %s",
			query.Get("error"), query.Get("error_description"))
	}

	token, err := h.config.Exchange(r.Context(), code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	return token, nil
}

// send delivers the result exactly once and closes the channel.
func (h *OAuthHandler) send(result OAuthResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the channel that receives exactly one flow outcome before
// being closed.
func (h *OAuthHandler) Result() <-chan OAuthResult {
	return h.resultChan
}

const signedInPage = `<!DOCTYPE html>
<html>
<head>
    <title>gigmix</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .card { text-align: center; background: white; padding: 2rem;
                border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #FF0000; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="card">
        <h1>✓ Signed In</h1>
        <p>gigmix can now create playlists on your account. You can close this window and return to the terminal.</p>
    </div>
</body>
</html>
`
