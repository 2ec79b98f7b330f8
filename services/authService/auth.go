package authService

import (
	"errors"
	"time"

	"educa/config"
	"educa/middleware"
	"educa/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// RegisterInput is a validated registration form
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Session is the result of logging a user in
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates an account and logs it in straight away
func Register(db *gorm.DB, in RegisterInput) (*Session, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return login(db, &user)
}

// Authenticate checks a username/password pair and logs the user in
func Authenticate(db *gorm.DB, username, password string) (*Session, error) {
	var user models.User
	if err := db.Where("username = ? AND is_active = ?", username, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return login(db, &user)
}

func login(db *gorm.DB, user *models.User) (*Session, error) {
	now := time.Now()
	if err := db.Model(user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}
