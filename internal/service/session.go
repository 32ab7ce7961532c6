package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pageza/fittrack/backend/internal/fitness"
	"github.com/pageza/fittrack/backend/internal/types"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

const (
	sessionIssuer      = "fittrack"
	sessionTTL         = 24 * time.Hour
	defaultDisplayName = "Guest"
	maxDisplayName     = 100
)

// SessionService issues guest session tokens. A session is an identity only;
// there are no credentials behind it.
type SessionService struct {
	jwtSecret []byte
	now       func() time.Time
}

var _ ISessionService = (*SessionService)(nil)

func NewSessionService(jwtSecret string) *SessionService {
	return &SessionService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// CreateSession mints a new user id and a signed token for it.
func (s *SessionService) CreateSession(displayName string) (*types.SessionResponse, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = defaultDisplayName
	}
	if len(name) > maxDisplayName {
		return nil, &fitness.InputError{Field: "display_name", Msg: fmt.Sprintf("must be at most %d characters", maxDisplayName)}
	}

	now := s.now()
	claims := &types.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		DisplayName: name,
	}
	claims.UserID = claims.Subject

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &types.SessionResponse{
		Token:       token,
		UserID:      claims.UserID,
		DisplayName: name,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// ValidateToken verifies the signature and expiry of a session token.
func (s *SessionService) ValidateToken(tokenString string) (*types.SessionClaims, error) {
	claims := &types.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
