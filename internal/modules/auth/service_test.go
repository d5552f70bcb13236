package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbook/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID, email, name, role string) (string, error) {
	return "token-for-" + userID, nil
}

func TestRegister_Tourist(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  Tourist@Mail.com ",
		Password: "secret123",
		Name:     "Test Tourist",
		Role:     "tourist",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTourist, u.Role)
	assert.Equal(t, "tourist@mail.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestRegister_InvalidRole(t *testing.T) {
	service := NewService(new(MockUserRepository), fakeJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "x@mail.com",
		Password: "secret123",
		Name:     "X",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "taken@mail.com",
		Password: "secret123",
		Name:     "X",
		Role:     "agency",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "tourist@mail.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "tourist@mail.com",
		PasswordHash: string(hash),
		Role:         domain.RoleTourist,
	}, nil)

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "Tourist@Mail.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-for-user-1", res.Token)
	assert.Equal(t, "user-1", res.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "tourist@mail.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "tourist@mail.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("GetByEmail", mock.Anything, "nobody@mail.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@mail.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
