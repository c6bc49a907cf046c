package services

import (
	"errors"
	"testing"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthUserRepository struct {
	users      map[uint]models.User
	nextID     uint
	lastLogins map[uint]time.Time
}

func newStubAuthUserRepository(users ...models.User) *stubAuthUserRepository {
	stub := &stubAuthUserRepository{
		users:      make(map[uint]models.User),
		lastLogins: make(map[uint]time.Time),
	}
	for _, user := range users {
		stub.users[user.ID] = user
		if user.ID > stub.nextID {
			stub.nextID = user.ID
		}
	}
	return stub
}

func (stub *stubAuthUserRepository) CountUsers() (int64, error) {
	return int64(len(stub.users)), nil
}

func (stub *stubAuthUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubAuthUserRepository) FindByID(userID uint) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	stub.nextID++
	user.ID = stub.nextID
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubAuthUserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	stub.lastLogins[userID] = at
	return nil
}

type stubRegistrationGate struct {
	required bool
}

func (stub *stubRegistrationGate) RequireInviteCode() (bool, error) {
	return stub.required, nil
}

type stubInviteRedeemer struct {
	validCodes map[string]bool
	redeemed   []string
}

func (stub *stubInviteRedeemer) ValidateCode(code string) (models.InviteCode, error) {
	if !stub.validCodes[code] {
		return models.InviteCode{}, NewValidationError("invalid invite code")
	}
	return models.InviteCode{Code: code, IsActive: true, MaxUses: 1}, nil
}

func (stub *stubInviteRedeemer) RedeemCode(code string, userID uint) error {
	stub.redeemed = append(stub.redeemed, code)
	return nil
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	repo := newStubAuthUserRepository()
	service := NewAuthService(repo, &stubRegistrationGate{}, &stubInviteRedeemer{})

	first, err := service.Register(RegisterInput{Name: "Aisha", Email: "aisha@example.com", Password: "long-enough"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if first.Role != models.RoleAdmin {
		t.Fatalf("expected first account to be admin, got %q", first.Role)
	}

	second, err := service.Register(RegisterInput{Name: "Bilal", Email: "bilal@example.com", Password: "long-enough"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if second.Role != models.RoleUser {
		t.Fatalf("expected second account to be a regular user, got %q", second.Role)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newStubAuthUserRepository()
	service := NewAuthService(repo, &stubRegistrationGate{}, &stubInviteRedeemer{})

	user, err := service.Register(RegisterInput{Name: "Aisha", Email: "  Aisha@Example.COM ", Password: "long-enough"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.Email != "aisha@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}

	if _, err := service.Register(RegisterInput{Name: "Imposter", Email: "AISHA@example.com", Password: "long-enough"}); !IsValidationError(err) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := NewAuthService(newStubAuthUserRepository(), &stubRegistrationGate{}, &stubInviteRedeemer{})

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "empty name", input: RegisterInput{Email: "a@b.co", Password: "long-enough"}},
		{name: "bad email", input: RegisterInput{Name: "A", Email: "not-an-email", Password: "long-enough"}},
		{name: "short password", input: RegisterInput{Name: "A", Email: "a@b.co", Password: "short"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Register(testCase.input); !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestRegisterInviteGate(t *testing.T) {
	redeemer := &stubInviteRedeemer{validCodes: map[string]bool{"GOODCODE": true}}
	service := NewAuthService(newStubAuthUserRepository(), &stubRegistrationGate{required: true}, redeemer)

	if _, err := service.Register(RegisterInput{Name: "A", Email: "a@b.co", Password: "long-enough"}); !IsValidationError(err) {
		t.Fatalf("expected missing invite code rejection, got %v", err)
	}
	if _, err := service.Register(RegisterInput{Name: "A", Email: "a@b.co", Password: "long-enough", InviteCode: "BADCODE1"}); !IsValidationError(err) {
		t.Fatalf("expected invalid invite code rejection, got %v", err)
	}

	user, err := service.Register(RegisterInput{Name: "A", Email: "a@b.co", Password: "long-enough", InviteCode: "goodcode"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected created user, got %#v", user)
	}
	if len(redeemer.redeemed) != 1 || redeemer.redeemed[0] != "GOODCODE" {
		t.Fatalf("expected the uppercased code redeemed once, got %#v", redeemer.redeemed)
	}
}

func TestLogin(t *testing.T) {
	repo := newStubAuthUserRepository(models.User{
		ID:           1,
		Email:        "aisha@example.com",
		PasswordHash: mustHashPassword(t, "correct-horse"),
	})
	service := NewAuthService(repo, &stubRegistrationGate{}, &stubInviteRedeemer{})

	user, err := service.Login("Aisha@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected user 1, got %#v", user)
	}
	if _, recorded := repo.lastLogins[1]; !recorded {
		t.Fatalf("expected last login recorded")
	}

	if _, err := service.Login("aisha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
