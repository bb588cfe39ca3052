package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

func TestContractUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		contractRepo := &mockContractRepository{}
		clientRepo := &mockClientRepository{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		clientID := uuid.Must(uuid.NewV7())
		clientRepo.On("Get", mock.Anything, clientID).Return(&domain.Client{ID: clientID}, nil)
		contractRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Contract) bool {
			return c.ClientID == clientID && c.Status == domain.ContractUnsigned && c.Active
		})).Return(nil)

		input := &domain.CreateContractInput{
			ClientID:     clientID,
			TotalAmount:  10000,
			AmountUnpaid: 10000,
			Status:       domain.ContractUnsigned,
		}

		uc := NewContractUseCase(&fakeTxManager{}, contractRepo, clientRepo, tokens, authz)
		contract, err := uc.Create(ctx, testAccessToken, input)
		require.NoError(t, err)

		assert.Equal(t, clientID, contract.ClientID)
		contractRepo.AssertExpectations(t)
	})

	t.Run("unknown client", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		clientRepo := &mockClientRepository{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		clientID := uuid.Must(uuid.NewV7())
		clientRepo.On("Get", mock.Anything, clientID).Return(nil, domain.ErrClientNotFound)

		input := &domain.CreateContractInput{
			ClientID: clientID,
			Status:   domain.ContractUnsigned,
		}

		uc := NewContractUseCase(&fakeTxManager{}, &mockContractRepository{}, clientRepo, tokens, authz)
		contract, err := uc.Create(ctx, testAccessToken, input)

		assert.Nil(t, contract)
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("unpaid amount above total is rejected", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		grantAccess(tokens, authz, managementPrincipal(), true)

		input := &domain.CreateContractInput{
			ClientID:     uuid.Must(uuid.NewV7()),
			TotalAmount:  1000,
			AmountUnpaid: 2000,
			Status:       domain.ContractUnsigned,
		}

		uc := NewContractUseCase(&fakeTxManager{}, &mockContractRepository{}, &mockClientRepository{}, tokens, authz)
		contract, err := uc.Create(ctx, testAccessToken, input)

		assert.Nil(t, contract)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestContractUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("signing a contract", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		authz := &mockAuthorizationUseCase{}
		contractRepo := &mockContractRepository{}
		grantAccess(tokens, authz, commercialPrincipal(), true)

		contractID := uuid.Must(uuid.NewV7())
		contractRepo.On("Get", mock.Anything, contractID).Return(&domain.Contract{
			ID:           contractID,
			TotalAmount:  10000,
			AmountUnpaid: 10000,
			Status:       domain.ContractUnsigned,
			Active:       true,
		}, nil)
		contractRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Contract) bool {
			return c.ID == contractID && c.Status == domain.ContractSigned
		})).Return(nil)

		input := &domain.UpdateContractInput{
			TotalAmount:  10000,
			AmountUnpaid: 5000,
			Status:       domain.ContractSigned,
			Active:       true,
		}

		uc := NewContractUseCase(&fakeTxManager{}, contractRepo, &mockClientRepository{}, tokens, authz)
		contract, err := uc.Update(ctx, testAccessToken, contractID, input)
		require.NoError(t, err)

		assert.Equal(t, domain.ContractSigned, contract.Status)
		assert.InDelta(t, 5000.0, contract.AmountUnpaid, 0.001)
	})

	t.Run("expired token before the write", func(t *testing.T) {
		tokens := &mockTokenUseCase{}
		tokens.On("IntrospectAccess", mock.Anything, testAccessToken).
			Return(uuid.Nil, authDomain.ErrInvalidToken)

		uc := NewContractUseCase(&fakeTxManager{}, &mockContractRepository{}, &mockClientRepository{}, tokens, &mockAuthorizationUseCase{})
		contract, err := uc.Update(ctx, testAccessToken, uuid.Must(uuid.NewV7()), &domain.UpdateContractInput{})

		assert.Nil(t, contract)
		assert.ErrorIs(t, err, authDomain.ErrSessionExpired)
	})
}

func TestContractUseCase_Filters(t *testing.T) {
	ctx := context.Background()

	tokens := &mockTokenUseCase{}
	contractRepo := &mockContractRepository{}
	principal := commercialPrincipal()
	tokens.On("IntrospectAccess", mock.Anything, testAccessToken).Return(principal.UserID, nil)
	tokens.On("PrincipalFor", mock.Anything, principal.UserID).Return(principal, nil)

	contractRepo.On("ListUnsigned", mock.Anything).
		Return([]*domain.Contract{{Status: domain.ContractUnsigned}}, nil)
	contractRepo.On("ListUnpaid", mock.Anything).
		Return([]*domain.Contract{{AmountUnpaid: 1500}}, nil)

	uc := NewContractUseCase(&fakeTxManager{}, contractRepo, &mockClientRepository{}, tokens, &mockAuthorizationUseCase{})

	unsigned, err := uc.ListUnsigned(ctx, testAccessToken)
	require.NoError(t, err)
	assert.Len(t, unsigned, 1)

	unpaid, err := uc.ListUnpaid(ctx, testAccessToken)
	require.NoError(t, err)
	assert.Len(t, unpaid, 1)
}
