package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pradiptars/stockpoint-be/internal/models"
)

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed, tampered, or wrongly signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the JWT payload: a snapshot of the user plus the standard expiry.
// The password hash never makes it into the token: the User field carries a
// blanked copy and the struct tag on models.User excludes the hash from JSON.
type Claims struct {
	User models.User `json:"user_data"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens. The secret and validity
// window are fixed at startup; tokens are stateless and cannot be revoked
// before their expiry.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
}

// NewTokenCodec creates a TokenCodec with the given signing secret and
// validity window.
func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, validity: validity}
}

// Encode issues a signed token for the given user, expiring after the
// codec's validity window.
func (c *TokenCodec) Encode(user models.User) (string, error) {
	user.PasswordHash = ""
	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.validity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies a token string and returns its claims. It returns
// ErrTokenExpired when the expiry has passed and ErrTokenInvalid for every
// other failure (bad signature, malformed encoding, unexpected algorithm).
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
