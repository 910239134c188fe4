package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gigmix/internal/models"
	"gigmix/internal/server"
	"gigmix/internal/shared"
)

// youtubeScope grants playlist creation and mutation on the user's channel.
const youtubeScope = "https://www.googleapis.com/auth/youtube"

// googleOAuthConfig builds the OAuth2 config for the sign-in flow.
func googleOAuthConfig(config *shared.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.Google.ClientID,
		ClientSecret: config.Google.ClientSecret,
		RedirectURL:  config.Google.RedirectURI,
		Scopes:       []string{youtubeScope},
		Endpoint:     google.Endpoint,
	}
}

// AuthLogin runs the Google OAuth flow and holds the resulting token in memory.
//
// Nothing is written to disk; the credential lives for this process only.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.signIn(cmd.String("account")); err != nil {
		return err
	}

	return r.writePlain("✓ Signed in. The credential is held in memory for this session only.\n")
}

// AuthStatus reports the in-memory credential and which provider keys are configured.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("gigmix auth status")

	if cred, ok := r.state.Credential(); ok {
		r.writePlain("Credential: ✓ signed in as %s\n", cred.Account)
	} else {
		r.writePlain("Credential: ✗ not signed in\n")
	}

	keys := []struct {
		name  string
		value string
	}{
		{"Geocoding (OpenCage)", r.config.Providers.OpenCageKey},
		{"Events (Ticketmaster)", r.config.Providers.TicketmasterKey},
		{"Songs (Gemini)", r.config.Providers.GeminiKey},
		{"Videos (YouTube)", r.config.Providers.YouTubeKey},
		{"Google OAuth client", r.config.Google.ClientID},
	}
	for _, key := range keys {
		mark := "✗"
		if key.value != "" {
			mark = "✓"
		}
		r.writePlain("%s: %s\n", key.name, mark)
	}

	return nil
}

// AuthLogout discards the in-memory credential.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.state.ClearCredential()
	return r.writePlain("✓ Signed out\n")
}

// signIn runs the OAuth flow and stores the credential in application state.
func (r *Runner) signIn(account string) (models.Credential, error) {
	if r.config.Google.ClientID == "" || r.config.Google.ClientSecret == "" {
		return models.Credential{}, fmt.Errorf("%w: Google OAuth client not configured", shared.ErrMissingCredentials)
	}

	token, err := r.doOAuth(googleOAuthConfig(r.config))
	if err != nil {
		return models.Credential{}, err
	}

	if account == "" {
		account = "google"
	}

	cred := models.Credential{Account: account, BearerToken: token.AccessToken}
	r.state.SetCredential(cred)
	return cred, nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	oauthHandler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewBasicRouter()
	router.Use(server.LoggingMiddleware(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Bind before opening the browser so the callback port is already
	// listening when the redirect arrives.
	listener, err := net.Listen("tcp", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", serverAddr, err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth server at %v", serverAddr)
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	r.writePlain("→ Opening browser for Google sign-in...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	return result.Token, nil
}
