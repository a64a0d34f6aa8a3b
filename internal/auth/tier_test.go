package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTier(t *testing.T) {
	assert.Equal(t, TierAuthenticated, ResolveTier(true))
	assert.Equal(t, TierGuest, ResolveTier(false))
}

func TestCanViewPremium(t *testing.T) {
	assert.True(t, TierAuthenticated.CanViewPremium())
	assert.False(t, TierGuest.CanViewPremium())
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secreto123")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secreto123", hash))
	assert.False(t, CheckPasswordHash("otra-clave", hash))
}
