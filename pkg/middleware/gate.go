package middleware

import (
	"context"
	"net/http"
	"net/url"

	"flight-booking/pkg/auth"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectSignIn
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectHome:
		return "redirect_home"
	default:
		return "redirect_sign_in"
	}
}

// RoleResolver looks up the caller's organization role in the identity provider
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (auth.Role, error)
}

// GateResult is the outcome of one access decision
type GateResult struct {
	Class    RouteClass
	Decision Decision
	UserID   string
	Role     auth.Role
	Token    string
}

// Gate decides per request whether to pass, send to sign-in or send home.
// Every failure while checking identity denies.
type Gate struct {
	routes     RouteTable
	sessions   auth.SessionVerifier
	roles      RoleResolver
	signInPath string
	homePath   string
	metrics    *Metrics
	log        *zap.Logger
}

func NewGate(
	routes RouteTable,
	sessions auth.SessionVerifier,
	roles RoleResolver,
	config utils.RoutesConfig,
	metrics *Metrics,
	log *zap.Logger,
) *Gate {
	return &Gate{
		routes:     routes,
		sessions:   sessions,
		roles:      roles,
		signInPath: config.SignInPath,
		homePath:   config.HomePath,
		metrics:    metrics,
		log:        log.With(zap.String("middleware", "gate")),
	}
}

// Decide classifies the request and resolves identity only as far as the class needs
func (g *Gate) Decide(r *http.Request) GateResult {
	class := g.routes.Classify(r.URL.Path)
	result := GateResult{Class: class, Role: auth.RoleUnauthenticated}

	if class == RoutePublic {
		result.Decision = DecisionAllow
		return result
	}

	token := auth.TokenFromRequest(r)
	session, err := g.sessions.Verify(r.Context(), token)
	if err != nil {
		g.log.Debug("Session rejected",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		result.Decision = DecisionRedirectSignIn
		return result
	}

	result.UserID = session.UserID
	result.Token = token

	// Protected routes need a session only
	if class == RouteProtected {
		result.Decision = DecisionAllow
		result.Role = auth.RoleMember
		return result
	}

	role, err := g.roles.ResolveRole(r.Context(), session.UserID)
	if err != nil {
		g.log.Warn("Admin check: role lookup failed, denying",
			zap.String("user_id", session.UserID),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		result.Decision = DecisionRedirectSignIn
		result.Role = auth.RoleUnauthenticated
		return result
	}

	result.Role = role
	if role != auth.RoleAdmin {
		g.log.Warn("Admin check: non-admin access attempt",
			zap.String("user_id", session.UserID),
			zap.String("path", r.URL.Path),
		)
		result.Decision = DecisionRedirectHome
		return result
	}

	result.Decision = DecisionAllow
	return result
}

// Handler applies Decide to every request. Page requests are redirected;
// API requests get 401 for sign-in decisions and 403 for home decisions.
func (g *Gate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := g.Decide(r)
		g.metrics.ObserveGate(result.Class, result.Decision)

		switch result.Decision {
		case DecisionAllow:
			ctx := r.Context()
			if result.UserID != "" {
				ctx = utils.SetUserContext(ctx, result.UserID, result.Role.String())
				ctx = utils.SetTokenContext(ctx, result.Token)
			}
			next.ServeHTTP(w, r.WithContext(ctx))

		case DecisionRedirectHome:
			if isAPIPath(r.URL.Path) {
				utils.ResponseForbidden(w, "Admin access required")
				return
			}
			http.Redirect(w, r, g.homePath, http.StatusFound)

		default:
			if isAPIPath(r.URL.Path) {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			http.Redirect(w, r, g.signInURL(r), http.StatusFound)
		}
	})
}

func (g *Gate) signInURL(r *http.Request) string {
	q := url.Values{}
	q.Set("redirect_url", r.URL.RequestURI())
	return g.signInPath + "?" + q.Encode()
}
