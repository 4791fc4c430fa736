package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rolecrm/internal/access"
	apperrors "rolecrm/internal/errors"
	"rolecrm/internal/services"
)

// Context keys set by Authenticate.
const (
	IdentityKey  = "identity"
	SessionIDKey = "sessionID"
)

const tokenIssuer = "rolecrm-api"

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID     string      `json:"user_id"`
	Role       access.Role `json:"role"`
	Categories []string    `json:"categories"`
	SessionID  string      `json:"session_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with HS256.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token bound to session.
func (m *TokenManager) Issue(session *services.Session) (string, error) {
	now := m.now()
	claims := &JWTClaims{
		UserID:     session.Identity.ID,
		Role:       session.Identity.Role,
		Categories: session.Identity.AllowedCategories,
		SessionID:  session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   session.Identity.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token string and returns its claims.
func (m *TokenManager) Parse(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(m.now))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("token carries no session")
	}
	return claims, nil
}

// Authenticate resolves the bearer token into the current session's
// identity. It never aborts: requests without a valid token, or with a
// token from a session that has since been replaced, continue
// unauthenticated and are stopped by Guard where a page requires it.
func Authenticate(tokens *TokenManager, sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.Next()
			return
		}

		current, ok := sessions.Current()
		if !ok || current.ID != claims.SessionID || current.Identity.ID != claims.UserID {
			c.Next()
			return
		}

		identity := current.Identity
		c.Set(IdentityKey, &identity)
		c.Set(SessionIDKey, current.ID)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Authenticate.
func CurrentIdentity(c *gin.Context) (*access.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*access.Identity)
	return identity, ok && identity != nil
}

// Guard returns a middleware enforcing req against the live permission
// table. Unauthenticated requests get 401 and denied ones 403, each with
// the page the client should move to.
func Guard(perms services.PermissionServicer, req access.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, authenticated := CurrentIdentity(c)
		decision := access.Guard(authenticated, identity, perms.Table(), req)

		switch decision.State {
		case access.StateAuthenticatedAllowed:
			c.Next()
		case access.StateUnauthenticated:
			abortWithRedirect(c, http.StatusUnauthorized, apperrors.ErrUnauthorized, decision.Redirect)
		default:
			abortWithRedirect(c, http.StatusForbidden, apperrors.ErrForbidden, decision.Redirect)
		}
	}
}

// GuardPage is Guard with the requirement of a named page.
func GuardPage(perms services.PermissionServicer, page string) gin.HandlerFunc {
	return Guard(perms, access.RequirementFor(page))
}

func abortWithRedirect(c *gin.Context, status int, appErr *apperrors.AppError, redirect string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
		"redirect": redirect,
	})
}
