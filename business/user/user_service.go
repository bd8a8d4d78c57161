package user

import (
	"context"
	"errors"

	"pterostore/domain"
	"pterostore/pkg/logger"
	"pterostore/pkg/metrics"
	"pterostore/pkg/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Client-facing messages. The login and password errors are deliberately
// generic: the caller never learns which check failed.
var (
	ErrMissingRegisterFields = errors.New("Email, username, dan password harus diisi")
	ErrMissingLoginFields    = errors.New("Email dan password harus diisi")
	ErrPasswordTooShort      = errors.New("Password minimal 6 karakter")
	ErrEmailTaken            = errors.New("Email sudah terdaftar")
	ErrUsernameTaken         = errors.New("Username sudah digunakan")
	ErrInvalidCredentials    = errors.New("Email/username atau password salah")
	ErrInvalidPassword       = errors.New("Password tidak valid")
	ErrUserNotFound          = errors.New("User tidak ditemukan")
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindActiveByIdentifier(ctx context.Context, identifier string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error
	UpdatePassword(ctx context.Context, id string, hashedPassword string) error
}

type RegisterInput struct {
	Email       string
	Username    string
	Password    string
	FullName    *string
	PhoneNumber *string
	Whatsapp    *string
}

type ProfileUpdate struct {
	FullName    *string
	PhoneNumber *string
	Whatsapp    *string
}

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates an account. Duplicate checks run before any write, so a
// rejected registration leaves no row behind.
func (s *userService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return domain.User{}, ErrMissingRegisterFields
	}

	if err := s.validate.Var(input.Password, "min=6"); err != nil {
		return domain.User{}, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return domain.User{}, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, err
	}

	newUser := domain.User{
		Email:       input.Email,
		Username:    input.Username,
		Password:    passwordHash,
		Role:        domain.RoleUser,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Whatsapp:    input.Whatsapp,
		IsActive:    true,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	metrics.UserRegistrations.Inc()

	return newUser, nil
}

// Login accepts the email or the username as identifier. Unknown account,
// inactive account, and wrong password all collapse into the same error.
func (s *userService) Login(ctx context.Context, identifier, password string) (string, domain.User, error) {
	if identifier == "" || password == "" {
		return "", domain.User{}, ErrMissingLoginFields
	}

	user, err := s.userRepo.FindActiveByIdentifier(ctx, identifier)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return "", domain.User{}, ErrInvalidCredentials
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()

	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile applies a partial update. Nil fields stay untouched; email
// and username are immutable and never updatable here.
func (s *userService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (domain.User, error) {
	fields := map[string]interface{}{}
	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.PhoneNumber != nil {
		fields["phone_number"] = *update.PhoneNumber
	}
	if update.Whatsapp != nil {
		fields["whatsapp"] = *update.Whatsapp
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateProfile(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.User{}, ErrUserNotFound
			}
			logger.Error("Failed to update profile", err)
			return domain.User{}, err
		}
	}

	return s.GetByID(ctx, id)
}

// ChangePassword verifies the current password before storing the new hash.
// A wrong current password and a too-short new password produce the same
// generic error, mirroring the login endpoint's non-disclosure policy.
func (s *userService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if ok := utils.CheckPassword(currentPassword, user.Password); !ok {
		return ErrInvalidPassword
	}

	if err := s.validate.Var(newPassword, "min=6"); err != nil {
		return ErrInvalidPassword
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
		logger.Error("Failed to update password", err)
		return err
	}

	return nil
}
