package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func generateTestKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PublicKey) {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return privateKey, &privateKey.PublicKey
}

func newTestTokens(t *testing.T) *OriginTokens {
	t.Helper()
	priv, pub := generateTestKeys(t)
	return NewOriginTokens(priv, pub)
}

func TestOriginTokens_RoundTrip(t *testing.T) {
	tokens := newTestTokens(t)
	originID := uuid.NewString()

	token, expiresAt, err := tokens.Issue(originID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(originTokenTTL), expiresAt, time.Minute)

	got, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, originID, got)
}

func TestOriginTokens_RejectsInvalidTokens(t *testing.T) {
	tokens := newTestTokens(t)
	otherPriv, _ := generateTestKeys(t)
	originID := uuid.NewString()

	sign := func(key any, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Subject:   originID,
		Issuer:    originIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"

	notUUID := valid
	notUUID.Subject = "user-123"

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"expired":      sign(tokens.privateKey, jwt.SigningMethodRS256, expired),
		"no expiry":    sign(tokens.privateKey, jwt.SigningMethodRS256, noExpiry),
		"wrong issuer": sign(tokens.privateKey, jwt.SigningMethodRS256, wrongIssuer),
		"wrong key":    sign(otherPriv, jwt.SigningMethodRS256, valid),
		"hmac":         sign([]byte("secret"), jwt.SigningMethodHS256, valid),
		"non-uuid sub": sign(tokens.privateKey, jwt.SigningMethodRS256, notUUID),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Parse(token)
			assert.Error(t, err)
		})
	}
}

func TestOrigin_IssuesCookieOnFirstContact(t *testing.T) {
	tokens := newTestTokens(t)
	var seen string
	handler := Origin(tokens, true, zaptest.NewLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = OriginIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, OriginCookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	parsed, err := tokens.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, seen, parsed)
}

func TestOrigin_KeepsValidCookie(t *testing.T) {
	tokens := newTestTokens(t)
	originID := uuid.NewString()
	token, _, err := tokens.Issue(originID)
	require.NoError(t, err)

	var seen string
	handler := Origin(tokens, false, zaptest.NewLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = OriginIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient", nil)
	req.AddCookie(&http.Cookie{Name: OriginCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, originID, seen)
	assert.Empty(t, rec.Result().Cookies(), "a valid cookie is not re-issued")
}

func TestOrigin_ReplacesInvalidCookie(t *testing.T) {
	tokens := newTestTokens(t)
	var seen string
	handler := Origin(tokens, false, zaptest.NewLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = OriginIDFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient", nil)
	req.AddCookie(&http.Cookie{Name: OriginCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	require.Len(t, rec.Result().Cookies(), 1)
}
