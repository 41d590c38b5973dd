package accountControllers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestRegisterHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := Register(db, "gearhead", "gearhead@example.com", "wrenches4life")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "wrenches4life")
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)

	_, err := Register(db, "gearhead", "first@example.com", "pw-one")
	require.NoError(t, err)

	_, err = Register(db, "gearhead", "second@example.com", "pw-two")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	_, err := Register(db, "gearhead", "gearhead@example.com", "wrenches4life")
	require.NoError(t, err)

	assert.True(t, Authenticate(db, "gearhead", "wrenches4life"))

	// Wrong password and unknown user fail identically: a bare false.
	assert.False(t, Authenticate(db, "gearhead", "wrong-password"))
	assert.False(t, Authenticate(db, "nobody", "wrenches4life"))
}

func TestIssueResetTokenIsURLSafe(t *testing.T) {
	db := newTestDB(t)
	_, err := Register(db, "gearhead", "gearhead@example.com", "pw")
	require.NoError(t, err)

	token, err := IssueResetToken(db, "gearhead")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	// Lookup by email works too.
	token2, err := IssueResetToken(db, "gearhead@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestResetTokenExpiry(t *testing.T) {
	db := newTestDB(t)
	_, err := Register(db, "gearhead", "gearhead@example.com", "pw")
	require.NoError(t, err)

	token, err := IssueResetToken(db, "gearhead")
	require.NoError(t, err)

	_, err = UserByResetToken(db, token)
	require.NoError(t, err)

	// A well-formed token past its expiry is rejected.
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", "gearhead").
		Update("reset_expiry", expired).Error)

	_, err = UserByResetToken(db, token)
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetTokenUnknownOrMalformed(t *testing.T) {
	db := newTestDB(t)

	_, err := UserByResetToken(db, "")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	_, err = UserByResetToken(db, "not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPasswordInvalidatesToken(t *testing.T) {
	db := newTestDB(t)
	_, err := Register(db, "gearhead", "gearhead@example.com", "old-password")
	require.NoError(t, err)

	token, err := IssueResetToken(db, "gearhead")
	require.NoError(t, err)

	require.NoError(t, ResetPassword(db, token, "new-password"))
	assert.True(t, Authenticate(db, "gearhead", "new-password"))
	assert.False(t, Authenticate(db, "gearhead", "old-password"))

	// The token is single use.
	err = ResetPassword(db, token, "another-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
