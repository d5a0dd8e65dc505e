package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("0000000000"))

	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("987654321"))
	assert.False(t, IsValidPhone("98765432101"))
	assert.False(t, IsValidPhone("98765 4321"))
	assert.False(t, IsValidPhone("+919876543210"))
	assert.False(t, IsValidPhone("98765abcde"))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("Goa"))
	assert.False(t, IsBlank(" x "))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("admin123")
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, VerifyPassword("admin123", hash))
	assert.False(t, VerifyPassword("admin124", hash))
}
