package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// SessionService owns the session state for one principal-session. It is the
// only component allowed to mutate the wrapped Session, and every mutation
// rewrites the persisted slot in the same call so the two never diverge.
//
// Concurrent Login calls are not sequenced: the last write wins. Callers are
// expected to keep at most one login in flight (forms disable their submit
// control while a request is outstanding).
type SessionService struct {
	sessionID string
	session   *domain.Session
	repo      ports.SessionRepository
	auth      ports.AuthBackend
	logger    zerolog.Logger
}

func NewSessionService(sessionID string, repo ports.SessionRepository, auth ports.AuthBackend, logger zerolog.Logger) *SessionService {
	return &SessionService{
		sessionID: sessionID,
		session:   domain.NewSession(),
		repo:      repo,
		auth:      auth,
		logger:    logger,
	}
}

// Hydrate reads the persisted identity once. A corrupt or invalid entry is
// discarded and the slot cleared; the failure is never surfaced because a
// corrupt local cache is not actionable by the user. Loading clears exactly
// once regardless of outcome.
func (s *SessionService) Hydrate(ctx context.Context) {
	defer func() { s.session.Loading = false }()

	if s.sessionID == "" {
		return
	}

	identity, err := s.repo.Load(ctx, s.sessionID)
	switch {
	case errors.Is(err, ports.ErrSessionNotFound):
		return
	case errors.Is(err, ports.ErrSessionCorrupt):
		s.logger.Debug().Err(err).Str("session_id", s.sessionID).Msg("discarding persisted session")
		s.clearSlot(ctx)
		return
	case err != nil:
		// Transient store failure: start unauthenticated but leave the
		// slot alone so a later reload can still pick the session up.
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("session hydration failed")
		return
	}

	if err := identity.Validate(); err != nil {
		s.logger.Debug().Err(err).Str("session_id", s.sessionID).Msg("discarding persisted session")
		s.clearSlot(ctx)
		return
	}

	s.session.Identity = identity
}

// Login verifies credentials upstream. On success the returned identity
// becomes current and is persisted synchronously. On failure the session is
// left untouched and the upstream message is propagated; no retry is made.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	s.session.Identity = identity
	if err := s.repo.Save(ctx, s.sessionID, identity); err != nil {
		s.logger.Error().Err(err).Str("session_id", s.sessionID).Msg("persist session failed")
	}

	s.logger.Info().Int64("user_id", identity.ID).Str("role", string(identity.Role)).Msg("login")
	return identity, nil
}

// Adopt installs an already-verified identity (OTP completion, admin login)
// as the current one and persists it. Same write path as Login.
func (s *SessionService) Adopt(ctx context.Context, identity *domain.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	s.session.Identity = identity
	if err := s.repo.Save(ctx, s.sessionID, identity); err != nil {
		s.logger.Error().Err(err).Str("session_id", s.sessionID).Msg("persist session failed")
	}
	return nil
}

// Logout notifies upstream best-effort, then unconditionally clears the local
// identity and the storage slot. The fail-open ordering means a user can
// never be stuck logged in because of a network error.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("upstream logout failed")
	}

	s.session.Identity = nil
	s.clearSlot(ctx)
}

// UpdateIdentity merges the patch into the current identity and re-persists
// the result. No-op when unauthenticated. Upstream is not contacted; callers
// sync with the backend themselves.
func (s *SessionService) UpdateIdentity(ctx context.Context, patch domain.IdentityPatch) {
	if !s.session.Authenticated() {
		return
	}

	merged := patch.Apply(*s.session.Identity)
	s.session.Identity = &merged
	if err := s.repo.Save(ctx, s.sessionID, &merged); err != nil {
		s.logger.Error().Err(err).Str("session_id", s.sessionID).Msg("persist session failed")
	}
}

// HasRole reports whether the current identity holds role. False when
// unauthenticated.
func (s *SessionService) HasRole(role domain.Role) bool {
	return s.session.Authenticated() && s.session.Identity.Role == role
}

// Session exposes the wrapped session state.
func (s *SessionService) Session() *domain.Session {
	return s.session
}

// ID returns the session identifier this store persists under.
func (s *SessionService) ID() string {
	return s.sessionID
}

func (s *SessionService) clearSlot(ctx context.Context) {
	if s.sessionID == "" {
		return
	}
	if err := s.repo.Delete(ctx, s.sessionID); err != nil {
		s.logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("clear session slot failed")
	}
}
