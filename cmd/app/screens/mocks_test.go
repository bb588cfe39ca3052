package screens

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/domain"
)

type mockTokenUseCase struct {
	mock.Mock
}

func (m *mockTokenUseCase) Login(ctx context.Context, email, password string) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *mockTokenUseCase) Refresh(ctx context.Context, refreshToken string) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *mockTokenUseCase) Introspect(ctx context.Context, tokenString string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTokenUseCase) IntrospectAccess(ctx context.Context, tokenString string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTokenUseCase) PrincipalFor(ctx context.Context, userID uuid.UUID) (*authDomain.Principal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

type mockClientUseCase struct {
	mock.Mock
}

func (m *mockClientUseCase) Create(ctx context.Context, accessToken string, input *domain.CreateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, accessToken, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientUseCase) Update(ctx context.Context, accessToken string, clientID uuid.UUID, input *domain.UpdateClientInput) (*domain.Client, error) {
	args := m.Called(ctx, accessToken, clientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientUseCase) Get(ctx context.Context, accessToken string, clientID uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, accessToken, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientUseCase) List(ctx context.Context, accessToken string) ([]*domain.Client, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Create(ctx context.Context, accessToken string, input *domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, accessToken, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) Update(ctx context.Context, accessToken string, userID uuid.UUID, input *domain.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, accessToken, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) Deactivate(ctx context.Context, accessToken string, userID uuid.UUID) error {
	args := m.Called(ctx, accessToken, userID)
	return args.Error(0)
}

func (m *mockUserUseCase) Get(ctx context.Context, accessToken string, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, accessToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, accessToken string) ([]*domain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserUseCase) CreateAdmin(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
