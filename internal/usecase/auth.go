package usecase

import (
	"context"
	"time"

	"MarketLens/internal/domain/models"
	domservice "MarketLens/internal/domain/service"
	"MarketLens/internal/service/session"
	"MarketLens/pkg/logger"
)

// AuthUseCase owns the session lifecycle: login exchanges credentials for an
// upstream bearer token and binds it to a fresh gateway session id, which is
// what the client holds from then on.
type AuthUseCase struct {
	auth  domservice.AuthSource
	store session.Store
	ttl   time.Duration
	log   *logger.Logger
}

func NewAuthUseCase(auth domservice.AuthSource, store session.Store, ttl time.Duration, log *logger.Logger) *AuthUseCase {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &AuthUseCase{auth: auth, store: store, ttl: ttl, log: log}
}

// Session rebinds a client-supplied session id to the store.
func (uc *AuthUseCase) Session(id string) *session.Session {
	if id == "" {
		return session.Anonymous()
	}
	return session.New(id, uc.store)
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (models.AuthResult, error) {
	id := session.NewID()
	sess := session.New(id, uc.store)

	if err := uc.auth.Login(ctx, sess, username, password); err != nil {
		return models.AuthResult{}, err
	}

	result := models.AuthResult{SessionID: id}
	profile, err := uc.auth.Me(ctx, sess)
	if err != nil {
		// Login succeeded; a missing profile is not fatal.
		uc.log.Warn("profile fetch after login failed", logger.Error(err))
		return result, nil
	}
	result.Profile = &profile
	return result, nil
}

// Register creates the account upstream, then logs straight in so the client
// leaves with a usable session.
func (uc *AuthUseCase) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	if err := uc.auth.Register(ctx, session.Anonymous(), req); err != nil {
		return models.AuthResult{}, err
	}
	return uc.Login(ctx, req.Username, req.Password)
}

func (uc *AuthUseCase) Me(ctx context.Context, sess *session.Session) (models.UserProfile, error) {
	return uc.auth.Me(ctx, sess)
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, sess *session.Session, req models.ProfileUpdateRequest) (models.UserProfile, error) {
	return uc.auth.UpdateProfile(ctx, sess, req)
}

func (uc *AuthUseCase) SubmitQuiz(ctx context.Context, sess *session.Session, req models.QuizRequest) (models.UserProfile, error) {
	return uc.auth.SubmitQuiz(ctx, sess, req)
}

// Logout drops the session's token.
func (uc *AuthUseCase) Logout(ctx context.Context, sess *session.Session) error {
	return sess.Evict(ctx)
}
