package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config defines the signing parameters for access tokens.
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims carries the account identity inside an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Issuer signs and verifies HS256 access tokens for authenticated accounts.
type Issuer struct {
	cfg Config
}

func NewIssuer(cfg Config) *Issuer {
	return &Issuer{cfg: cfg}
}

// Issue creates a signed token whose subject is the account id.
func (i *Issuer) Issue(accountID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    i.cfg.Issuer,
			Audience:  jwt.ClaimStrings{i.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.cfg.Secret)
}

// Parse validates the signature, issuer, audience and time bounds of a token
// and returns its claims. Subject-less tokens are rejected.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return i.cfg.Secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("access token is invalid")
	}

	if i.cfg.Issuer != "" && claims.Issuer != i.cfg.Issuer {
		return nil, fmt.Errorf("access token issuer mismatch")
	}
	if i.cfg.Audience != "" && !contains(claims.Audience, i.cfg.Audience) {
		return nil, fmt.Errorf("access token audience mismatch")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("access token has no subject")
	}

	return claims, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
