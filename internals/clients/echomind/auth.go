package echomind

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	FullName    *string   `json:"full_name,omitempty"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	InstituteID *uint     `json:"institute_id,omitempty"`
}

// AuthProvider = kapabilitas auth yang di-inject ke client.
type AuthProvider interface {
	Token() string
	CurrentUser() (User, bool)
	Logout()
}

// StaticAuth: token tetap (service account / test).
type StaticAuth struct {
	AccessToken string
	User        *User
}

func (s StaticAuth) Token() string { return s.AccessToken }

func (s StaticAuth) CurrentUser() (User, bool) {
	if s.User == nil {
		return User{}, false
	}
	return *s.User, true
}

func (StaticAuth) Logout() {}

// SessionAuth menyimpan token hasil login.
type SessionAuth struct {
	mu        sync.RWMutex
	token     string
	expiresAt int64
	user      *User
}

func (s *SessionAuth) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionAuth) ExpiresAt() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *SessionAuth) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *SessionAuth) Logout() {
	s.mu.Lock()
	s.token, s.expiresAt, s.user = "", 0, nil
	s.mu.Unlock()
}

func (s *SessionAuth) set(token string, exp int64, u User) {
	s.mu.Lock()
	s.token, s.expiresAt, s.user = token, exp, &u
	s.mu.Unlock()
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	User        User   `json:"user"`
}

// Login → SessionAuth baru, dipasang sebagai Auth client.
func (c *Client) Login(ctx context.Context, identifier, password string) (*SessionAuth, error) {
	var res loginResponse
	body := fiber.Map{"identifier": identifier, "password": password}
	if err := c.do(ctx, fiber.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	sess := &SessionAuth{}
	sess.set(res.AccessToken, res.ExpiresAt, res.User)
	c.Auth = sess
	return sess, nil
}

// Logout mem-blacklist token di server lalu membersihkan sesi lokal.
// Sesi lokal tetap dibersihkan walau request gagal.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, fiber.MethodPost, "/api/auth/logout", nil, nil)
	if c.Auth != nil {
		c.Auth.Logout()
	}
	return err
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, fiber.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
