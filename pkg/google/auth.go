package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klokku/caltally/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

var ErrUnauthenticated = errors.New("user is unauthenticated, authentication is required")

type GoogleAuth struct {
	oauthConfig *oauth2.Config
	tokens      *TokenStore
	prompt      io.Writer
}

func NewGoogleAuth(cfg config.Application) (*GoogleAuth, error) {
	credentials, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		err := fmt.Errorf("unable to read Google client credentials: %w", err)
		log.Error(err)
		return nil, err
	}
	oauthConfig, err := google.ConfigFromJSON(credentials, gcal.CalendarReadonlyScope)
	if err != nil {
		err := fmt.Errorf("unable to parse Google client credentials: %w", err)
		log.Error(err)
		return nil, err
	}

	return &GoogleAuth{
		oauthConfig: oauthConfig,
		tokens:      NewTokenStore(cfg.Google.TokenFile),
		prompt:      os.Stderr,
	}, nil
}

func (g *GoogleAuth) getClient(ctx context.Context) (*http.Client, error) {
	token, err := g.tokens.Load()
	if err != nil {
		log.Error(err)
		return nil, err
	}
	if token == nil || (!token.Valid() && token.RefreshToken == "") {
		log.Info("No usable Google token found, starting authorization")
		token, err = g.authorize(ctx)
		if err != nil {
			return nil, err
		}
		if err := g.tokens.Save(token); err != nil {
			log.Error(err)
			return nil, err
		}
	}

	tokenSource := newPersistingTokenSource(g.oauthConfig.TokenSource(ctx, token), g.tokens, token)
	return oauth2.NewClient(ctx, tokenSource), nil
}

type callbackResult struct {
	code string
	err  error
}

// authorize runs the installed-app flow: the consent page redirects to a
// loopback listener on a free port which receives the authorization code.
func (g *GoogleAuth) authorize(ctx context.Context) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		err := fmt.Errorf("unable to start OAuth callback listener: %w", err)
		log.Error(err)
		return nil, err
	}

	oauthConfig := *g.oauthConfig
	oauthConfig.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	stateNonce := uuid.NewString()
	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(stateNonce, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		_ = srv.Serve(listener)
	}()
	defer srv.Close()

	log.Tracef("Waiting for Google auth callback with nonce: %s", stateNonce)
	authUrl := oauthConfig.AuthCodeURL(stateNonce, oauth2.AccessTypeOffline)
	fmt.Fprintf(g.prompt, "Open this URL in your browser to authorize access to your calendar:\n%s\n", authUrl)

	select {
	case result := <-results:
		if result.err != nil {
			log.Error(result.err)
			return nil, result.err
		}
		token, err := oauthConfig.Exchange(ctx, result.code)
		if err != nil {
			err := fmt.Errorf("unable to exchange code for token: %w", err)
			log.Error(err)
			return nil, err
		}
		log.Debug("Successfully obtained Google auth token")
		return token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func callbackHandler(stateNonce string, results chan<- callbackResult) http.HandlerFunc {
	report := func(result callbackResult) {
		select {
		case results <- result:
		default:
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		query := r.URL.Query()
		if errParam := query.Get("error"); errParam != "" {
			http.Error(w, "Authorization failed: "+errParam, http.StatusBadRequest)
			report(callbackResult{err: fmt.Errorf("%w: %s", ErrUnauthenticated, errParam)})
			return
		}
		if query.Get("state") != stateNonce {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			report(callbackResult{err: fmt.Errorf("%w: state mismatch in OAuth callback", ErrUnauthenticated)})
			return
		}
		code := query.Get("code")
		if code == "" {
			http.Error(w, "Missing authorization code", http.StatusBadRequest)
			report(callbackResult{err: fmt.Errorf("%w: missing authorization code", ErrUnauthenticated)})
			return
		}
		fmt.Fprintln(w, "Authorization complete. You may close this window and return to the terminal.")
		report(callbackResult{code: code})
	}
}
