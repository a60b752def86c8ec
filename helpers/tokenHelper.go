package helpers

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// SignedDetails are the claims carried by every access token. Email is the
// identity the middleware and the self-only routes check against.
type SignedDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token is expired")
)

// TokenHelper signs and validates access tokens with a single HS256 secret.
// The secret is injected at construction so nothing in the package reads
// process state.
type TokenHelper struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenHelper(secret string) *TokenHelper {
	return &TokenHelper{secret: []byte(secret), ttl: time.Hour}
}

// GenerateToken issues a token for the given identity, valid for one hour.
func (t *TokenHelper) GenerateToken(email, name string) (string, error) {
	claims := &SignedDetails{
		Email: email,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// ValidateToken parses and checks a signed token, returning its claims.
func (t *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return t.secret, nil
		},
	)
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
