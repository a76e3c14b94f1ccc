package auth

import (
	"context"
	"testing"

	"jovemservicos/internal/domain"
	"jovemservicos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 77
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@mail.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubJWT{})
	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Ana@Mail.com",
		Password: "segredo123",
		Name:     "Ana Souza",
		Role:     "client",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", u.Email)
	assert.Equal(t, domain.RoleClient, u.Role)
	assert.NotEqual(t, "segredo123", u.PasswordHash)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	svc := NewService(new(MockUserRepository), stubJWT{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "x@mail.com",
		Password: "segredo123",
		Name:     "X",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@mail.com").Return(&domain.User{ID: 1}, nil)

	svc := NewService(users, stubJWT{})
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ana@mail.com",
		Password: "segredo123",
		Name:     "Ana",
		Role:     "client",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ana@mail.com").
		Return(&domain.User{ID: 1, Email: "ana@mail.com", PasswordHash: string(hash), Role: domain.RoleClient}, nil)

	svc := NewService(users, stubJWT{})

	result, err := svc.Login(context.Background(), LoginRequest{Email: "ana@mail.com", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "ana@mail.com", Password: "errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@mail.com").Return(nil, repository.ErrNotFound)

	svc := NewService(users, stubJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@mail.com", Password: "qualquer"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
