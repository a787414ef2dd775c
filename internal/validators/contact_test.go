package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+381641234567", NormalizePhone("+381 64 123-45-67"))
	assert.Equal(t, "0641234567", NormalizePhone("064/123.45.67"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+381641234567"))
	assert.True(t, IsValidPhone("064 123 4567"))
	assert.False(t, IsValidPhone("abc"))
	assert.False(t, IsValidPhone("12345"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("Ana.Petrovic@example.com"))
	assert.False(t, IsValidEmail("ana@"))
	assert.False(t, IsValidEmail("not-an-email"))
}
