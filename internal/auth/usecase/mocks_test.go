package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	crmDomain "github.com/epicevents/crm/internal/crm/domain"
)

// mockUserRepository is a mock implementation of UserRepository for testing.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Get(ctx context.Context, userID uuid.UUID) (*crmDomain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crmDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*crmDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crmDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetRole(ctx context.Context, userID uuid.UUID) (authDomain.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(authDomain.Role), args.Error(1)
}

// mockCredentialService is a mock implementation of the credential service.
type mockCredentialService struct {
	mock.Mock
}

func (m *mockCredentialService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockCredentialService) Verify(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

// mockClientReader is a mock implementation of ClientReader for testing.
type mockClientReader struct {
	mock.Mock
}

func (m *mockClientReader) Get(ctx context.Context, clientID uuid.UUID) (*crmDomain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crmDomain.Client), args.Error(1)
}

// mockContractReader is a mock implementation of ContractReader for testing.
type mockContractReader struct {
	mock.Mock
}

func (m *mockContractReader) Get(ctx context.Context, contractID uuid.UUID) (*crmDomain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crmDomain.Contract), args.Error(1)
}

// mockEventReader is a mock implementation of EventReader for testing.
type mockEventReader struct {
	mock.Mock
}

func (m *mockEventReader) Get(ctx context.Context, eventID uuid.UUID) (*crmDomain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crmDomain.Event), args.Error(1)
}
