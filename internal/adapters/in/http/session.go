package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	sessionIssuer     = "carwash-pos"
	sessionContextKey = "staff_session"
)

// ErrUnauthenticated is returned for a missing, malformed or expired session token.
var ErrUnauthenticated = errors.New("a valid staff session is required")

type sessionClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SessionIssuer signs and parses HS256 session tokens for logged-in staff.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionIssuer(secret string, ttl time.Duration) (*SessionIssuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &SessionIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns the signed token and its expiry.
func (i *SessionIssuer) Issue(session staff.Session) (string, time.Time, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := sessionClaims{
		Name: session.Name,
		Role: session.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.StaffID.String(),
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, expiresAt, nil
}

func (i *SessionIssuer) Parse(raw string) (staff.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return staff.Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	staffID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return staff.Session{}, fmt.Errorf("%w: subject: %w", ErrUnauthenticated, err)
	}
	role, err := staff.ParseRole(claims.Role)
	if err != nil {
		return staff.Session{}, fmt.Errorf("%w: role: %w", ErrUnauthenticated, err)
	}
	if strings.TrimSpace(claims.Name) == "" {
		return staff.Session{}, fmt.Errorf("%w: name is empty", ErrUnauthenticated)
	}

	return staff.Session{StaffID: staffID, Name: claims.Name, Role: role}, nil
}

// SessionMiddleware attaches the session of a bearer token to the request.
// Requests without a token pass through; handlers that need a session
// reject them. A token that does not parse is rejected here.
func SessionMiddleware(issuer *SessionIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return writeError(c, http.StatusUnauthorized, ErrUnauthenticated.Error())
			}

			session, err := issuer.Parse(strings.TrimSpace(raw))
			if err != nil {
				return writeError(c, http.StatusUnauthorized, ErrUnauthenticated.Error())
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func sessionFrom(c echo.Context) (staff.Session, error) {
	session, ok := c.Get(sessionContextKey).(staff.Session)
	if !ok {
		return staff.Session{}, ErrUnauthenticated
	}
	return session, nil
}
