package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
)

// authorizationUseCase implements AuthorizationUseCase over the entity
// readers. It holds no state and performs no writes.
type authorizationUseCase struct {
	clientReader   ClientReader
	contractReader ContractReader
	eventReader    EventReader
}

// IsActionAllowed evaluates the static role table first, then the dynamic
// ownership chain when the role's grant is ownership-qualified. Ownership is
// additive: it never substitutes for the static prerequisite. Every lookup
// failure denies.
func (a *authorizationUseCase) IsActionAllowed(
	ctx context.Context,
	action authDomain.Action,
	userID uuid.UUID,
	role authDomain.Role,
	targetID uuid.UUID,
) bool {
	if !role.Allows(action) {
		return false
	}
	if !role.NeedsOwnership(action) {
		return true
	}

	// Ownership-qualified grant: resolve the chain for the target entity.
	switch action {
	case authDomain.ActionClientUpdate:
		return a.OwnsClient(ctx, userID, targetID)
	case authDomain.ActionContractUpdate:
		return a.ownsContractClient(ctx, userID, targetID)
	case authDomain.ActionEventUpdate:
		if role == authDomain.SupportRole {
			// For support, being the event's contact is the qualifying
			// condition; the client chain does not apply.
			return a.isEventSupport(ctx, userID, targetID)
		}
		return a.ownsEventClient(ctx, userID, targetID)
	}

	// Unreachable with the current table; deny if the table grows a new
	// ownership-qualified action without a resolver.
	return false
}

// OwnsClient reports whether the user is the client's commercial contact.
// A missing client denies rather than erroring.
func (a *authorizationUseCase) OwnsClient(ctx context.Context, userID, clientID uuid.UUID) bool {
	client, err := a.clientReader.Get(ctx, clientID)
	if err != nil {
		return false
	}
	return client.CommercialContactID == userID
}

// OwnsEvent reports whether the user is the event's support contact, or owns
// the client reached via Event -> Contract -> Client. Short-circuits on the
// first true branch; a broken chain denies.
func (a *authorizationUseCase) OwnsEvent(ctx context.Context, userID, eventID uuid.UUID) bool {
	if a.isEventSupport(ctx, userID, eventID) {
		return true
	}
	return a.ownsEventClient(ctx, userID, eventID)
}

// isEventSupport checks the direct support assignment on the event.
func (a *authorizationUseCase) isEventSupport(ctx context.Context, userID, eventID uuid.UUID) bool {
	event, err := a.eventReader.Get(ctx, eventID)
	if err != nil {
		return false
	}
	return event.SupportContactID != nil && *event.SupportContactID == userID
}

// ownsEventClient walks Event -> Contract -> Client and checks the
// commercial assignment on the far end.
func (a *authorizationUseCase) ownsEventClient(ctx context.Context, userID, eventID uuid.UUID) bool {
	event, err := a.eventReader.Get(ctx, eventID)
	if err != nil {
		return false
	}
	return a.ownsContractClient(ctx, userID, event.ContractID)
}

// ownsContractClient walks Contract -> Client and checks the commercial
// assignment.
func (a *authorizationUseCase) ownsContractClient(ctx context.Context, userID, contractID uuid.UUID) bool {
	contract, err := a.contractReader.Get(ctx, contractID)
	if err != nil {
		return false
	}
	return a.OwnsClient(ctx, userID, contract.ClientID)
}

// NewAuthorizationUseCase creates an AuthorizationUseCase with the provided
// entity readers.
func NewAuthorizationUseCase(
	clientReader ClientReader,
	contractReader ContractReader,
	eventReader EventReader,
) AuthorizationUseCase {
	return &authorizationUseCase{
		clientReader:   clientReader,
		contractReader: contractReader,
		eventReader:    eventReader,
	}
}
