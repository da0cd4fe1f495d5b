package middleware

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OriginCookieName = "clynicx_origin"
	originIssuer     = "clynicx-portal"
	originTokenTTL   = 365 * 24 * time.Hour
)

// OriginTokens signs and verifies the origin cookie. The token's subject
// is the origin id that scopes the session slot.
type OriginTokens struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	now        func() time.Time
}

func NewOriginTokens(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey) *OriginTokens {
	return &OriginTokens{
		privateKey: privateKey,
		publicKey:  publicKey,
		now:        time.Now,
	}
}

func (t *OriginTokens) Issue(originID string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(originTokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   originID,
		Issuer:    originIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign origin token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse returns the origin id carried by a valid token.
func (t *OriginTokens) Parse(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.publicKey, nil
	},
		jwt.WithIssuer(originIssuer),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.New("origin token subject is not a uuid")
	}
	return claims.Subject, nil
}

// Origin identifies the browser behind each request, issuing a fresh
// origin cookie when the request carries none or an invalid one.
func Origin(tokens *OriginTokens, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(OriginCookieName); err == nil {
				originID, err := tokens.Parse(cookie.Value)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithOriginID(r.Context(), originID)))
					return
				}
				logger.Debug("replacing invalid origin cookie", zap.Error(err))
			}

			originID := uuid.NewString()
			token, expiresAt, err := tokens.Issue(originID)
			if err != nil {
				logger.Error("failed to issue origin token", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     OriginCookieName,
				Value:    token,
				Path:     "/",
				Expires:  expiresAt,
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			next.ServeHTTP(w, r.WithContext(WithOriginID(r.Context(), originID)))
		})
	}
}
