package user

import (
	"context"
	"testing"

	"pterostore/domain"
	"pterostore/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	if u, ok := r.users[id]; ok {
		return *u, nil
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindActiveByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	for _, u := range r.users {
		if (u.Email == identifier || u.Username == identifier) && u.IsActive {
			return *u, nil
		}
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["full_name"]; ok {
		s := v.(string)
		u.FullName = &s
	}
	if v, ok := fields["phone_number"]; ok {
		s := v.(string)
		u.PhoneNumber = &s
	}
	if v, ok := fields["whatsapp"]; ok {
		s := v.(string)
		u.Whatsapp = &s
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id string, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

func newTestService(repo UserRepository) *userService {
	return NewUserService(repo, validator.New())
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, username, password string, active bool) domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := domain.User{Email: email, Username: username, Password: hash, Role: domain.RoleUser, IsActive: active}
	require.NoError(t, repo.Create(context.Background(), &u))
	return u
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		Email:    "budi@example.com",
		Username: "budi",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "rahasia123", created.Password, "password must be stored hashed")

	t.Run("duplicate email performs no write", func(t *testing.T) {
		before := len(repo.users)
		_, err := svc.Register(ctx, RegisterInput{Email: "budi@example.com", Username: "other", Password: "rahasia123"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Len(t, repo.users, before)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "lain@example.com", Username: "budi", Password: "rahasia123"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("short password performs no write", func(t *testing.T) {
		before := len(repo.users)
		_, err := svc.Register(ctx, RegisterInput{Email: "baru@example.com", Username: "baru", Password: "abc"})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Len(t, repo.users, before)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterInput{Email: "x@example.com"})
		assert.ErrorIs(t, err, ErrMissingRegisterFields)
	})
}

func TestLogin(t *testing.T) {
	utils.InitJWT("test-secret")

	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	admin := seedUser(t, repo, "admin@antidonasi.store", "admin", "admin123", true)
	seedUser(t, repo, "nonaktif@example.com", "nonaktif", "admin123", false)

	t.Run("by email", func(t *testing.T) {
		token, u, err := svc.Login(ctx, "admin@antidonasi.store", "admin123")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, u.ID)

		claims, err := utils.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.UserID)
		assert.Equal(t, admin.Email, claims.Email)
	})

	t.Run("by username", func(t *testing.T) {
		_, u, err := svc.Login(ctx, "admin", "admin123")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, u.ID)
	})

	t.Run("wrong password is generic", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "admin@antidonasi.store", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown identifier matches wrong-password error", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "tidakada@example.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account cannot login", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nonaktif@example.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingLoginFields)
	})
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "budi@example.com", "budi", "rahasia123", true)
	phone := "0812345678"
	_, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{PhoneNumber: &phone})
	require.NoError(t, err)

	name := "Budi Santoso"
	updated, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{FullName: &name})
	require.NoError(t, err)

	// nil fields stay untouched
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "0812345678", *updated.PhoneNumber)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, "Budi Santoso", *updated.FullName)
	assert.Equal(t, "budi@example.com", updated.Email)
	assert.Equal(t, "budi", updated.Username)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "budi@example.com", "budi", "rahasia123", true)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, u.ID, "salah", "passwordbaru")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("short new password gets the same generic error", func(t *testing.T) {
		err := svc.ChangePassword(ctx, u.ID, "rahasia123", "abc")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("success replaces the hash", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, u.ID, "rahasia123", "passwordbaru"))

		stored := repo.users[u.ID]
		assert.True(t, utils.CheckPassword("passwordbaru", stored.Password))
		assert.False(t, utils.CheckPassword("rahasia123", stored.Password))
	})
}
