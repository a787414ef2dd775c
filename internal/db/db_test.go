package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalonHelios/salon-scheduler/internal/config"
	"github.com/SalonHelios/salon-scheduler/internal/models"
)

func TestNewDBMigratesAndSeeds(t *testing.T) {
	cfg := &config.Config{
		DBUrl: "", // in-memory sqlite
		SeedUsers: []config.SeedUser{
			{Username: "mira", Password: "s3cret", Name: "Mira"},
			{Username: "lena", Password: "s3cret", Name: "Lena"},
		},
	}

	db, err := NewDB(cfg)
	require.NoError(t, err)

	for _, table := range []string{"users", "services", "clients", "appointments", "appointment_clients", "sms_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var users []models.User
	require.NoError(t, db.Order("id ASC").Find(&users).Error)
	require.Len(t, users, 2)
	assert.Equal(t, "mira", users[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("s3cret")))
}

func TestSeedUsersOnlyOnEmptyTable(t *testing.T) {
	cfg := &config.Config{
		SeedUsers: []config.SeedUser{{Username: "mira", Password: "x", Name: "Mira"}},
	}

	db, err := NewDB(cfg)
	require.NoError(t, err)

	require.NoError(t, SeedUsers(db, []config.SeedUser{
		{Username: "intruder", Password: "x", Name: "Nope"},
	}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
