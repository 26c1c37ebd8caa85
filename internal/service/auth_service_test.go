package service

import (
	"testing"
	"time"

	"campus_link_backend/internal/config"
	"campus_link_backend/internal/mocks"
	"campus_link_backend/internal/model"
	"campus_link_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService() (*AuthService, *mocks.MockUserStore) {
	userRepo := new(mocks.MockUserStore)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(userRepo, cfg), userRepo
}

func TestRegisterHashesPasswordAndActivates(t *testing.T) {
	svc, userRepo := newAuthService()
	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.MatchedBy(func(u *model.User) bool {
		return u.Status == model.StatusActive && u.Password != "secret123"
	})).Return(nil)

	user := &model.User{
		Name:     "Alice",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     model.Student,
	}
	require.NoError(t, svc.Register(user))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, userRepo := newAuthService()
	userRepo.On("FindByEmail", "alice@example.com").Return(&model.User{}, nil)

	err := svc.Register(&model.User{Username: "alice", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, userRepo := newAuthService()
	userRepo.On("FindByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByUsername", "alice").Return(&model.User{}, nil)

	err := svc.Register(&model.User{Username: "alice", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo := newAuthService()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	user := &model.User{Email: "alice@example.com", Password: string(hashed), Status: model.StatusActive}
	userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)

	_, _, err := svc.Login("alice@example.com", "wrong")
	require.Error(t, err)

	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, util.KindUnauthorized, appErr.Kind)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, userRepo := newAuthService()
	userRepo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@example.com", "whatever")
	require.Error(t, err)

	// the caller cannot tell a missing account from a bad password
	appErr, ok := util.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginSuspendedAccount(t *testing.T) {
	svc, userRepo := newAuthService()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	user := &model.User{Email: "alice@example.com", Password: string(hashed), Status: model.StatusSuspended}
	userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)

	_, _, err := svc.Login("alice@example.com", "right")
	assert.ErrorIs(t, err, util.ErrAccountSuspended)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, userRepo := newAuthService()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	user := &model.User{Email: "alice@example.com", Password: string(hashed), Role: model.Student, Status: model.StatusActive}
	user.ID = 5
	userRepo.On("FindByEmail", "alice@example.com").Return(user, nil)

	token, got, err := svc.Login("alice@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
}
