package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Tokens are minted by the external OTP/auth service; this package only
// validates them and exposes the identity the commerce engine needs.
type JWTServiceInterface interface {
	GenerateJWT(identity Identity, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

const issuer = "stagepass-auth"

// Identity is the authenticated user profile carried in the token. Name
// and Phone are denormalized onto orders for the QR registration block.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

type Claims struct {
	Identity
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(identity Identity, expirationTime time.Time) (string, error) {
	claims := Claims{
		Identity: identity,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
