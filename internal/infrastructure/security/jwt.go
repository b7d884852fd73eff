package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/studysphere/server/internal/domain"
)

// Claims is the decoded claims mapping carried by an identity token.
// The platform only relies on "email"; everything else is passed through
// untouched.
type Claims map[string]any

// Email returns the caller's email claim, or "" if absent.
func (c Claims) Email() string {
	if v, ok := c["email"].(string); ok {
		return v
	}
	return ""
}

type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSigner(secret string, ttl time.Duration) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs the given claims with an absolute expiry of now+ttl.
// There is no uniqueness or replay protection beyond the expiry.
func (s *JWTSigner) Issue(claims Claims) (string, error) {
	now := time.Now()
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(s.ttl))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
// It is side-effect-free.
func (s *JWTSigner) Verify(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired()
		}
		return nil, domain.ErrTokenInvalid()
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid()
	}

	claims := Claims{}
	for k, v := range mc {
		claims[k] = v
	}
	return claims, nil
}
