package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// opaque verification and reset tokens are 32 random bytes, hex encoded
const opaqueTokenSize = 32

type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the signed token claims. Kind keeps access and refresh
// tokens from being swapped for one another.
type Claims struct {
	jwt.RegisteredClaims
	Email string    `json:"email,omitempty"`
	Kind  TokenKind `json:"kind"`
}

// TokenService issues and verifies the signed access/refresh token
// pair and generates the opaque single-use tokens used for email
// verification and password resets.
type TokenService struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

// IssueAccessToken returns a short-lived signed token carrying the
// user's identity claims
func (s *TokenService) IssueAccessToken(userID, email string) (string, error) {
	return s.sign(&Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.AccessTTL)),
		},
		Email: email,
		Kind:  TokenAccess,
	})
}

// IssueRefreshToken returns a long-lived signed token used solely to
// mint new token pairs. The random jti keeps tokens minted within the
// same second from colliding, otherwise rotation could reissue an
// identical token.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	jti, err := GenerateOpaqueToken()
	if err != nil {
		return "", err
	}

	return s.sign(&Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.RefreshTTL)),
		},
		Kind: TokenRefresh,
	})
}

// Verify parses and validates a signed token and checks that it's of
// the expected kind. Any failure comes back as ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Kind != kind || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateOpaqueToken returns a cryptographically random hex string.
// These tokens carry no claims and are validated by direct store lookup.
func GenerateOpaqueToken() (string, error) {
	b := make([]byte, opaqueTokenSize)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// HashToken returns the hex sha256 digest of a token. Only digests of
// refresh tokens are persisted, never the tokens themselves.
func HashToken(t string) string {
	sum := sha256.Sum256([]byte(t))
	return hex.EncodeToString(sum[:])
}

// TokenHashMatches compares a presented token against a stored digest
// in constant time
func TokenHashMatches(token, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashToken(token)), []byte(storedHash)) == 1
}

func (s *TokenService) sign(c *Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.Secret)
}
