package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shop-backend/internal/models"
)

// ErrInvalidToken is the single outcome for every verification failure.
// Callers never learn whether the token was malformed, expired or forged.
var ErrInvalidToken = errors.New("invalid or expired token")

const TTL = time.Hour

type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs {id, email, role} with a fixed one hour expiry. The role is a
// snapshot of the credential at issuance time.
func Issue(user *models.User, role string, secret []byte) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func Parse(tokenStr string, secret []byte) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
