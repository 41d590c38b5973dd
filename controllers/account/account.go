package accountControllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/valleyautoparts/shop-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

const resetTokenTTL = time.Hour

// Compared against on the unknown-user path so authentication failures keep
// the same shape and cost whether or not the username exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Register stores a new user with a salted bcrypt hash. A duplicate
// username fails with ErrUsernameTaken and creates no row. The insert
// itself is the uniqueness check, so two concurrent registrations for the
// same name both get the same answer.
func Register(db *gorm.DB, username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials. It returns plain false for both an
// unknown username and a wrong password — callers must not be able to tell
// the two apart.
func Authenticate(db *gorm.DB, username, password string) bool {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// IssueResetToken generates a single-use password-reset token for the
// account matching the given username or email. The token is URL-safe,
// cryptographically random, and expires after one hour.
func IssueResetToken(db *gorm.DB, account string) (string, error) {
	var user models.User
	err := db.First(&user, "username = ? OR email = ?", account, account).Error
	if err != nil {
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenTTL)

	err = db.Model(&user).Updates(map[string]interface{}{
		"reset_token":  token,
		"reset_expiry": expiry,
	}).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

// UserByResetToken resolves a reset token to its user. Unknown, malformed,
// and expired tokens all come back as ErrInvalidResetToken.
func UserByResetToken(db *gorm.DB, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidResetToken
	}
	var user models.User
	if err := db.First(&user, "reset_token = ?", token).Error; err != nil {
		return nil, ErrInvalidResetToken
	}
	if user.ResetExpiry == nil || time.Now().After(*user.ResetExpiry) {
		return nil, ErrInvalidResetToken
	}
	return &user, nil
}

// ResetPassword sets a new password for the token's user and invalidates
// the token so it cannot be replayed.
func ResetPassword(db *gorm.DB, token, newPassword string) error {
	user, err := UserByResetToken(db, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return db.Model(user).Updates(map[string]interface{}{
		"password_hash": string(hash),
		"reset_token":   "",
		"reset_expiry":  nil,
	}).Error
}
