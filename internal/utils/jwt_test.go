package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0192d5e4-5f6a-7b8c-9d0e-1f2a3b4c5d6e"

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUserID, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, testUserID, token.UserID)
	assert.Equal(t, testUserID, token.Subject)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, testUserID, claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUserID, time.Hour, "key"},
		{"empty user id", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", testUserID, 0, "key"},
		{"empty key", "iss", testUserID, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", testUserID, 5*time.Minute, "secret-key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("test-issuer", testUserID, -time.Second, "secret-key")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   testUserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr bool
	}{
		{name: "valid token", token: valid.SignedString, key: "secret-key", issuer: "test-issuer"},
		{name: "wrong key", token: valid.SignedString, key: "wrong-key", issuer: "test-issuer", wantErr: true},
		{name: "wrong issuer", token: valid.SignedString, key: "secret-key", issuer: "fake-issuer", wantErr: true},
		{name: "expired", token: expired.SignedString, key: "secret-key", issuer: "test-issuer", wantErr: true},
		{name: "unsigned", token: noneToken, key: "secret-key", issuer: "test-issuer", wantErr: true},
		{name: "garbage", token: "not.a.token", key: "secret-key", issuer: "test-issuer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUserID, parsed.UserID)
		})
	}
}

func TestValidateAndParseJWTToken_KeepsRegisteredClaims(t *testing.T) {
	issued, err := GenerateJWTToken("test-issuer", testUserID, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, "test-issuer", parsed.Issuer)
	assert.Equal(t, testUserID, parsed.Subject)
	require.NotNil(t, parsed.ExpiresAt)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "scheme and spaces", header: "Bearer   ", wantErr: ErrEmptyToken},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
