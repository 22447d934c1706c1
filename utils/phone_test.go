package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "94771425684", Digits("+94 77 142 5684"))
	assert.Equal(t, "0771234567", Digits("077-123 4567"))
	assert.Equal(t, "", Digits("no digits here"))
}

func TestUsablePhone(t *testing.T) {
	assert.True(t, UsablePhone("+94771425684"))
	assert.True(t, UsablePhone("077 123 4567"))

	// Too short once stripped
	assert.False(t, UsablePhone("12345"))
	assert.False(t, UsablePhone(""))
	assert.False(t, UsablePhone("call me maybe"))
}
