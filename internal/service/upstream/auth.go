package upstream

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"MarketLens/internal/domain/models"
	domainservice "MarketLens/internal/domain/service"
	"MarketLens/internal/service/session"
)

// AuthClient handles credentials and profile operations. Login is the one
// form-encoded call in the API; on success the bearer token is stored under
// the caller's session for the configured TTL.
type AuthClient struct {
	t        *Transport
	tokenTTL time.Duration
}

func NewAuthClient(t *Transport, tokenTTL time.Duration) domainservice.AuthSource {
	return &AuthClient{t: t, tokenTTL: tokenTTL}
}

type tokenReply struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *AuthClient) Login(ctx context.Context, sess *session.Session, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var reply tokenReply
	if err := c.t.postForm(ctx, sess, "auth_token", "/auth/token", form, &reply); err != nil {
		return err
	}
	if reply.AccessToken == "" {
		return fmt.Errorf("upstream /auth/token: empty access token")
	}
	if err := sess.SetToken(ctx, reply.AccessToken, c.tokenTTL); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

func (c *AuthClient) Register(ctx context.Context, sess *session.Session, req models.RegisterRequest) error {
	return c.t.post(ctx, sess, "auth_register", "/auth/register", req, nil)
}

func (c *AuthClient) Me(ctx context.Context, sess *session.Session) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.t.get(ctx, sess, "auth_me", "/auth/me", nil, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (c *AuthClient) UpdateProfile(ctx context.Context, sess *session.Session, req models.ProfileUpdateRequest) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.t.put(ctx, sess, "auth_me", "/auth/me", req, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func (c *AuthClient) SubmitQuiz(ctx context.Context, sess *session.Session, req models.QuizRequest) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.t.post(ctx, sess, "auth_quiz", "/auth/quiz", req, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
