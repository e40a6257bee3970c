package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signature, expiry, wrong algorithm and
// malformed payloads. Callers decide per route whether that means 400 or a
// silent anonymous identity.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the decoded login principal.
type Identity struct {
	GuideID int64
	Name    string
	IsAdmin bool
}

type claims struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Verifier signs and verifies HS256 bearer tokens. Pure: a function of the
// credential, the secret and the clock.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret string, ttl time.Duration) *Verifier {
	return &Verifier{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token carrying the guide id, display name and admin flag.
func (v *Verifier) Sign(id int64, name string, isAdmin bool) (string, error) {
	now := time.Now()
	c := claims{
		ID:      &id,
		Name:    name,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}

// Verify decodes a bearer credential. A payload without the integer id claim
// is a decode failure even when the signature checks out.
func (v *Verifier) Verify(raw string) (Identity, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	if c.ID == nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{GuideID: *c.ID, Name: c.Name, IsAdmin: c.IsAdmin}, nil
}
