// Package session owns the console's per-login lifecycle: the token
// store, the REST clients, the query cache and the entity query
// modules. One Session is created when the operator signs in and torn
// down on logout; nothing here is package-global.
package session

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/thanhvu/engcenter-console/internal/app/cascade"
	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/models/enums"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/app/resources"
	"github.com/thanhvu/engcenter-console/internal/config"
	"github.com/thanhvu/engcenter-console/internal/pkg/auth"
	"github.com/thanhvu/engcenter-console/internal/pkg/metrics"
	"github.com/thanhvu/engcenter-console/internal/pkg/querycache"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// Session is the console's authenticated context
type Session struct {
	cfg      *config.Config
	logger   zerolog.Logger
	tokens   *auth.TokenStore
	registry *prometheus.Registry
	api      *rest.Client
	public   *rest.Client
	cache    *querycache.Cache

	// Queries are the per-entity query/mutation modules
	Queries *queries.Registry

	mu   sync.RWMutex
	user models.User
	role enums.RoleType
}

// New wires a session against the configured backend. The query cache
// lives exactly as long as the session.
func New(cfg *config.Config, logger zerolog.Logger) *Session {
	tokens := auth.NewTokenStore()
	registry := prometheus.NewRegistry()

	api := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.RequestTimeout(),
		Logger:  logger,
	}, tokens)

	cache := querycache.New(cfg.CacheFreshFor(), metrics.NewCacheMetrics(registry), logger)

	return &Session{
		cfg:      cfg,
		logger:   logger,
		tokens:   tokens,
		registry: registry,
		api:      api,
		public:   api.Public(),
		cache:    cache,
		Queries:  queries.NewRegistry(cache, api, logger),
		role:     enums.RoleUnknown,
	}
}

// Login authenticates under the configured login timeout. A backend
// response arriving after the timeout loses the race; the caller sees
// the timeout error.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LoginTimeout())
	defer cancel()

	result, err := resources.Login(ctx, s.public, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}

	s.tokens.Set(result.Token)

	role := result.User.PrimaryRole()
	if role == enums.RoleUnknown {
		// Role list can be absent from the profile; the token claims
		// are the fallback
		if claims, err := auth.Inspect(result.Token); err == nil && len(claims.Roles) > 0 {
			role = enums.ParseRole(claims.Roles[0])
		}
	}

	s.mu.Lock()
	s.user = result.User
	s.role = role
	s.mu.Unlock()

	s.logger.Info().
		Str("user", result.User.Code).
		Str("role", string(role)).
		Msg("Signed in")

	return result.User, nil
}

// Logout ends the session server-side and tears the local state down.
// The local teardown happens regardless of the server call's outcome;
// a dead backend must not pin a session alive.
func (s *Session) Logout(ctx context.Context) error {
	err := resources.Logout(ctx, s.api)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Server-side logout failed")
	}

	s.tokens.Clear()
	s.cache.Clear()

	s.mu.Lock()
	s.user = models.User{}
	s.role = enums.RoleUnknown
	s.mu.Unlock()

	return err
}

// Bootstrap refreshes the session's profile from the backend
func (s *Session) Bootstrap(ctx context.Context) (models.User, error) {
	user, err := resources.MyInfo(ctx, s.api)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.user = user
	if role := user.PrimaryRole(); role != enums.RoleUnknown {
		s.role = role
	}
	s.mu.Unlock()

	return user, nil
}

// SendOTP starts password recovery, under the login timeout
func (s *Session) SendOTP(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LoginTimeout())
	defer cancel()
	return resources.SendOTP(ctx, s.public, dto.SendOTPRequest{Email: email})
}

// VerifyOTP checks the recovery code, under the login timeout
func (s *Session) VerifyOTP(ctx context.Context, email, otp string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LoginTimeout())
	defer cancel()
	return resources.VerifyOTP(ctx, s.public, dto.VerifyOTPRequest{Email: email, OTP: otp})
}

// ResetPassword completes password recovery, under the login timeout
func (s *Session) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LoginTimeout())
	defer cancel()
	return resources.ResetPassword(ctx, s.public, dto.ResetPasswordRequest{Email: email, OTP: otp, NewPassword: newPassword})
}

// CurrentUser returns the signed-in user's profile
func (s *Session) CurrentUser() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role returns the session's resolved role
func (s *Session) Role() enums.RoleType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// LandingRoute returns the dashboard route for the session's role. The
// routing layer dispatches on this; unknown roles land on the login page.
func (s *Session) LandingRoute() string {
	return s.Role().LandingRoute()
}

// CourseClassCascade builds a course-to-class dependent selection
// backed by the session's cached class queries
func (s *Session) CourseClassCascade() *cascade.Cascade[models.Class] {
	return cascade.New(func(ctx context.Context, courseID string) ([]models.Class, error) {
		classes, _, err := s.Queries.Classes.ByCourse(ctx, courseID)
		return classes, err
	}, func(c models.Class) string { return c.ID })
}

// Metrics exposes the session's metric registry for scraping
func (s *Session) Metrics() prometheus.Gatherer {
	return s.registry
}
