// Package domain defines authentication and authorization domain models.
//
// It provides password-based authentication with signed bearer tokens and a
// role-plus-ownership permission model evaluated over the Client, Contract and
// Event hierarchy.
package domain

// TokenKind discriminates the two bearer token flavors. A refresh token is
// never accepted where an access token is required, and vice versa.
type TokenKind string

const (
	// AccessToken is the short-lived kind authorizing immediate actions.
	AccessToken TokenKind = "access"

	// RefreshToken is the longer-lived kind usable only to mint a new pair.
	RefreshToken TokenKind = "refresh"
)

// IsValid reports whether the kind is one of the two known values.
func (k TokenKind) IsValid() bool {
	return k == AccessToken || k == RefreshToken
}

// Role is the closed set of team roles. The role is resolved once per login
// from the User -> Team -> Role chain and passed explicitly through every
// controller call.
type Role string

const (
	// ManagementRole administers users and contracts.
	ManagementRole Role = "management"

	// CommercialRole owns clients and creates events for them.
	CommercialRole Role = "commercial"

	// SupportRole runs the events it is assigned to.
	SupportRole Role = "support"
)

// IsValid reports whether the role is one of the three known values.
func (r Role) IsValid() bool {
	switch r {
	case ManagementRole, CommercialRole, SupportRole:
		return true
	}
	return false
}

// Action identifies a protected operation. One value exists per row of the
// permission table; list/details screens are unprotected reads except for
// user administration.
type Action string

const (
	ActionClientCreate   Action = "client_create"
	ActionClientUpdate   Action = "client_update"
	ActionContractCreate Action = "contract_create"
	ActionContractUpdate Action = "contract_update"
	ActionEventCreate    Action = "event_create"
	ActionEventUpdate    Action = "event_update"
	ActionUserRead       Action = "user_read"
	ActionUserCreate     Action = "user_create"
	ActionUserUpdate     Action = "user_update"
)
