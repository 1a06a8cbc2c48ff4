package supabase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// OAuthProvider names an external identity provider.
type OAuthProvider string

const (
	ProviderGitHub OAuthProvider = "github"
	ProviderGoogle OAuthProvider = "google"
	ProviderAzure  OAuthProvider = "azure"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new user. GoTrue sends a confirmation email; no session
// is issued until the address is confirmed, so only the error is returned.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	return c.do(ctx, "POST", "/auth/v1/signup", credentials{Email: email, Password: password}, nil, nil)
}

// SignInWithPassword exchanges email/password for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*types.Session, error) {
	var session types.Session
	err := c.do(ctx, "POST", "/auth/v1/token?grant_type=password",
		credentials{Email: email, Password: password}, &session, nil)
	if err != nil {
		return nil, err
	}
	c.SetAccessToken(session.AccessToken)
	return &session, nil
}

// SignOut revokes the current session server-side and drops the local token.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, "POST", "/auth/v1/logout", nil, nil, nil)
	c.SetAccessToken("")
	return err
}

// RefreshSession exchanges a refresh token for a new session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*types.Session, error) {
	var session types.Session
	err := c.do(ctx, "POST", "/auth/v1/token?grant_type=refresh_token",
		map[string]string{"refresh_token": refreshToken}, &session, nil)
	if err != nil {
		return nil, err
	}
	c.SetAccessToken(session.AccessToken)
	return &session, nil
}

// OAuthURL builds the browser URL that starts an OAuth sign-in with the
// given provider. The redirect URL must be whitelisted in the project's
// auth configuration.
func (c *Client) OAuthURL(provider OAuthProvider, redirectTo string) string {
	q := url.Values{}
	q.Set("provider", string(provider))
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return fmt.Sprintf("%s/auth/v1/authorize?%s", c.baseURL, q.Encode())
}
