package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"todoapi/internal/apperr"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidCredentials is returned for every login failure so callers
// cannot tell an unknown email from a wrong password.
var ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "Invalid email or password.")

type Service struct {
	DB     *gorm.DB
	Hasher *Hasher
	Tokens *Tokens
	TTL    time.Duration
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  UserPublic `json:"user"`
	Token string     `json:"token"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (UserPublic, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Email == "" || in.Password == "" {
		return UserPublic{}, apperr.Validation("Please provide name, email, and password.")
	}
	if !emailRe.MatchString(in.Email) {
		return UserPublic{}, apperr.Validation("Please provide a valid email address.")
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		return UserPublic{}, apperr.Validation("Password must be at least 6 characters long.")
	}
	if len(in.Password) > MaxPasswordBytes {
		return UserPublic{}, apperr.Validation("Password must be at most 72 bytes long.")
	}

	db := s.DB.WithContext(ctx)

	var existing User
	err := db.Select("id").Where("email = ?", in.Email).Take(&existing).Error
	switch {
	case err == nil:
		return UserPublic{}, apperr.Conflict("User with this email already exists.")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return UserPublic{}, apperr.Store("Error creating user account.", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return UserPublic{}, err
	}

	u := User{Name: name, Email: in.Email, PasswordHash: hash}
	if err := db.Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return UserPublic{}, apperr.Conflict("User with this email already exists.")
		}
		return UserPublic{}, apperr.Store("Error creating user account.", err)
	}

	return u.Public(), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return LoginResult{}, apperr.Validation("Please provide email and password.")
	}

	var u User
	if err := s.DB.WithContext(ctx).Where("email = ?", in.Email).Take(&u).Error; err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !s.Hasher.Verify(in.Password, u.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u.ID, u.Email, s.TTL)
	if err != nil {
		return LoginResult{}, apperr.Wrap(apperr.KindToken, "Error during login.", err)
	}

	return LoginResult{User: u.Public(), Token: token}, nil
}
