package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pfa-project/specgen/internal/models"
)

// Session manages the authenticated lifecycle around a Client: login,
// signup, logout, and the token file that lets a session survive restarts.
type Session struct {
	client    *Client
	tokenPath string
	user      models.UserInfo
}

// NewSession wraps a client and a path to the token file. If the file
// exists, its token is loaded into the client immediately.
func NewSession(c *Client, tokenPath string) *Session {
	s := &Session{client: c, tokenPath: tokenPath}
	if data, err := os.ReadFile(tokenPath); err == nil && len(data) > 0 {
		c.SetToken(string(data))
	}
	return s
}

// Client returns the underlying API client.
func (s *Session) Client() *Client {
	return s.client
}

// User returns the user info from the last successful login, if any.
func (s *Session) User() models.UserInfo {
	return s.user
}

// Authenticated reports whether a bearer token is installed. It does not
// guarantee the token is still accepted by the server.
func (s *Session) Authenticated() bool {
	return s.client.Token() != ""
}

// SignIn authenticates against the API and persists the returned token.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return err
	}

	s.client.SetToken(resp.Token)
	s.user = resp.User
	return s.saveToken(resp.Token)
}

// SignUp registers a new account and logs in with it.
func (s *Session) SignUp(ctx context.Context, name, email, password, confirmPassword string) error {
	req := models.SignupRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	var user models.UserInfo
	if err := s.client.do(ctx, http.MethodPost, "/api/auth/signup", req, &user); err != nil {
		return err
	}
	return s.SignIn(ctx, email, password)
}

// SignOut clears the installed token and removes the token file.
func (s *Session) SignOut() error {
	s.client.SetToken("")
	s.user = models.UserInfo{}
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

func (s *Session) saveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
