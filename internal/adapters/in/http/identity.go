package http

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingOrg   = errors.New("missing org in claims")
)

const identityContextKey = "supplychain.identity"

// Claims carry the caller's organization (MSP id) and role claims.
type Claims struct {
	jwt.RegisteredClaims
	Org   string   `json:"org"`
	Roles []string `json:"roles,omitempty"`
}

// TokenService signs and verifies HS256 bearer tokens.
type TokenService struct {
	secret []byte
	issuer string
}

func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for org with the given roles, valid for ttl.
func (s *TokenService) Issue(org kernel.OrgID, roles []kernel.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   org.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Org: org.String(),
	}
	for _, r := range roles {
		claims.Roles = append(claims.Roles, r.String())
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token and returns its claims. Only HS256
// tokens stamped with this service's issuer are accepted.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Org == "" {
		return nil, ErrMissingOrg
	}
	return claims, nil
}

// tokenIdentity exposes verified claims as the caller of one request.
type tokenIdentity struct {
	org   kernel.OrgID
	roles []kernel.Role
}

var _ ports.Identity = tokenIdentity{}

func newTokenIdentity(claims *Claims) tokenIdentity {
	id := tokenIdentity{org: kernel.OrgID(claims.Org)}
	for _, r := range claims.Roles {
		id.roles = append(id.roles, kernel.Role(r))
	}
	return id
}

func (i tokenIdentity) CurrentOrganization() (kernel.OrgID, error) {
	if i.org == "" {
		return "", errs.NewValueIsRequiredError("org")
	}
	return i.org, nil
}

func (i tokenIdentity) HasRoleClaim(role kernel.Role) bool {
	return slices.Contains(i.roles, role)
}

// Authenticate rejects requests without a valid bearer token and stores the
// caller identity on the echo context.
func Authenticate(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: ErrMissingToken.Error()})
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: err.Error()})
			}

			c.Set(identityContextKey, newTokenIdentity(claims))
			return next(c)
		}
	}
}

func callerOf(c echo.Context) ports.Identity {
	if id, ok := c.Get(identityContextKey).(ports.Identity); ok {
		return id
	}
	return tokenIdentity{}
}
