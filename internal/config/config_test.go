package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedUsers(t *testing.T) {
	users := parseSeedUsers("mira:s3cret:Mira;lena:pass:Lena Horvat")
	require.Len(t, users, 2)
	assert.Equal(t, SeedUser{Username: "mira", Password: "s3cret", Name: "Mira"}, users[0])
	assert.Equal(t, "Lena Horvat", users[1].Name)

	assert.Empty(t, parseSeedUsers(""))
	assert.Empty(t, parseSeedUsers("broken-entry"))
}

func TestDevMode(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).DevMode())
	assert.False(t, (&Config{Environment: "production"}).DevMode())
	assert.Equal(t, ":3000", (&Config{ServerPort: "3000"}).Addr())
}
