package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.True(t, IsValidEmail("ada.lovelace+tag@sub.example.co"))
	assert.False(t, IsValidEmail("ada"))
	assert.False(t, IsValidEmail("ada@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("ada@example"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Password1"))
	assert.True(t, IsValidPassword("passw0rd!"))
	assert.False(t, IsValidPassword("Pw1"))
	assert.False(t, IsValidPassword("alllowercase"))
	assert.False(t, IsValidPassword("123456"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("BEGINNER"))
	assert.True(t, IsValidRole("PROFESSIONAL"))
	assert.True(t, IsValidRole("MENTOR"))
	assert.False(t, IsValidRole("ADMIN"))
	assert.False(t, IsValidRole("beginner"))
}
