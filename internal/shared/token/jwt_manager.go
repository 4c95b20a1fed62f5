package token

import (
	"errors"
	"time"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
	ErrWrongType     = errors.New("token: unexpected token type")
)

const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// Claims: exp/iat/sub/iss come from jwt.RegisteredClaims
type Claims struct {
	MemberID  string `json:"member_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager interface {
	GenerateAccessToken(memberID string, email string) (string, error)
	GenerateRefreshToken(memberID string, email string) (string, error)
	// ValidateToken verifies signature and expiry and that token_type equals tokenType
	ValidateToken(tokenString string, tokenType string) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
	}
}

func (m *JWTManager) GenerateAccessToken(memberID, email string) (string, error) {
	return m.generate(memberID, email, ACCESS, m.accessExpiry)
}

func (m *JWTManager) GenerateRefreshToken(memberID string, email string) (string, error) {
	return m.generate(memberID, email, REFRESH, m.refreshExpiry)
}

func (m *JWTManager) generate(memberID, email, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		MemberID:  memberID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string, tokenType string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.MemberID == "" {
		return nil, ErrInvalidClaims
	}

	if claims.TokenType != tokenType {
		return nil, ErrWrongType
	}

	return claims, nil
}
