package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AuthUserRepository interface {
	CountUsers() (int64, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateLastLogin(userID uint, at time.Time) error
}

// RegistrationGate reports whether signup currently requires an invite code.
type RegistrationGate interface {
	RequireInviteCode() (bool, error)
}

// InviteRedeemer validates a code before the user row exists and consumes it
// after.
type InviteRedeemer interface {
	ValidateCode(code string) (models.InviteCode, error)
	RedeemCode(code string, userID uint) error
}

type AuthService struct {
	users   AuthUserRepository
	gate    RegistrationGate
	invites InviteRedeemer
	now     func() time.Time
}

func NewAuthService(users AuthUserRepository, gate RegistrationGate, invites InviteRedeemer) *AuthService {
	return &AuthService{
		users:   users,
		gate:    gate,
		invites: invites,
		now:     time.Now,
	}
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	InviteCode string
}

// Register creates a new account. When the app settings demand an invite
// code the code is validated up front and consumed once the account exists.
// The very first account becomes the admin.
func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	code := strings.ToUpper(strings.TrimSpace(input.InviteCode))

	if name == "" || len(name) > models.MaxNameLength {
		return models.User{}, NewValidationError("name is required and cannot exceed 100 characters")
	}
	if !emailPattern.MatchString(email) {
		return models.User{}, NewValidationError("please provide a valid email address")
	}
	if len(input.Password) < MinPasswordLength {
		return models.User{}, NewValidationError("password must be at least 8 characters")
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, NewValidationError("email is already registered")
	}

	required, err := service.gate.RequireInviteCode()
	if err != nil {
		return models.User{}, err
	}
	if required {
		if code == "" {
			return models.User{}, NewValidationError("an invite code is required to sign up")
		}
		if _, err := service.invites.ValidateCode(code); err != nil {
			return models.User{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	role := models.RoleUser
	count, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, err
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := models.User{
		Email:             email,
		Name:              name,
		PasswordHash:      string(hash),
		Role:              role,
		Language:          models.LanguageArabic,
		Theme:             models.ThemeDefault,
		ShowOnLeaderboard: true,
		LastLoginAt:       service.now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}

	if required && code != "" {
		if err := service.invites.RedeemCode(code, user.ID); err != nil {
			return models.User{}, err
		}
	}

	return user, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user.LastLoginAt = service.now()
	if err := service.users.UpdateLastLogin(user.ID, user.LastLoginAt); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
