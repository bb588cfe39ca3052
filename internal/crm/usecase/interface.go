// Package usecase implements business logic orchestration for the CRM
// entities. Every mutating operation revalidates the caller's access token
// and consults the authorization engine before touching the database.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	"github.com/epicevents/crm/internal/crm/domain"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRole(ctx context.Context, userID uuid.UUID) (authDomain.Role, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

// TeamRepository defines team lookups.
type TeamRepository interface {
	Get(ctx context.Context, teamID uuid.UUID) (*domain.Team, error)
	GetByRole(ctx context.Context, role authDomain.Role) (*domain.Team, error)
}

// ClientRepository defines client persistence operations.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Get(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context) ([]*domain.Client, error)
}

// ContractRepository defines contract persistence operations.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	Get(ctx context.Context, contractID uuid.UUID) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	List(ctx context.Context) ([]*domain.Contract, error)
	ListUnsigned(ctx context.Context) ([]*domain.Contract, error)
	ListUnpaid(ctx context.Context) ([]*domain.Contract, error)
}

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Get(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	List(ctx context.Context) ([]*domain.Event, error)
	ListUnassigned(ctx context.Context) ([]*domain.Event, error)
	ListBySupportContact(ctx context.Context, userID uuid.UUID) ([]*domain.Event, error)
}

// UserUseCase defines user administration business logic. All operations are
// management-only except the bootstrap admin creation used by the CLI.
type UserUseCase interface {
	Create(ctx context.Context, accessToken string, input *domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, accessToken string, userID uuid.UUID, input *domain.UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, accessToken string, userID uuid.UUID) error
	Get(ctx context.Context, accessToken string, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, accessToken string) ([]*domain.User, error)

	// CreateAdmin creates a management user without a token. It exists for
	// the bootstrap command that seeds the very first account.
	CreateAdmin(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error)
}

// ClientUseCase defines client business logic.
type ClientUseCase interface {
	Create(ctx context.Context, accessToken string, input *domain.CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, accessToken string, clientID uuid.UUID, input *domain.UpdateClientInput) (*domain.Client, error)
	Get(ctx context.Context, accessToken string, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, accessToken string) ([]*domain.Client, error)
}

// ContractUseCase defines contract business logic.
type ContractUseCase interface {
	Create(ctx context.Context, accessToken string, input *domain.CreateContractInput) (*domain.Contract, error)
	Update(ctx context.Context, accessToken string, contractID uuid.UUID, input *domain.UpdateContractInput) (*domain.Contract, error)
	Get(ctx context.Context, accessToken string, contractID uuid.UUID) (*domain.Contract, error)
	List(ctx context.Context, accessToken string) ([]*domain.Contract, error)
	ListUnsigned(ctx context.Context, accessToken string) ([]*domain.Contract, error)
	ListUnpaid(ctx context.Context, accessToken string) ([]*domain.Contract, error)
}

// EventUseCase defines event business logic.
type EventUseCase interface {
	Create(ctx context.Context, accessToken string, input *domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, accessToken string, eventID uuid.UUID, input *domain.UpdateEventInput) (*domain.Event, error)
	Get(ctx context.Context, accessToken string, eventID uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, accessToken string) ([]*domain.Event, error)
	ListUnassigned(ctx context.Context, accessToken string) ([]*domain.Event, error)
	ListMine(ctx context.Context, accessToken string) ([]*domain.Event, error)
}
