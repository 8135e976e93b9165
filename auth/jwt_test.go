package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(User{ID: "user-123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userId, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userId)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
