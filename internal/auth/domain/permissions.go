package domain

// permission describes one cell of the static role table. When ownership is
// true, the role prerequisite alone is not enough: the dynamic ownership check
// on the target entity must also hold.
type permission struct {
	allowed   bool
	ownership bool
}

// permissionTable is the static role table. Missing cells deny.
//
//	action           management  commercial        support
//	client create    -           yes               -
//	client update    -           if owns client    -
//	contract create  yes         -                 -
//	contract update  yes         if owns client    -
//	event create     -           yes               -
//	event update     yes         if owns client    if owns event
//	user read/cud    yes         -                 -
var permissionTable = map[Action]map[Role]permission{
	ActionClientCreate: {
		CommercialRole: {allowed: true},
	},
	ActionClientUpdate: {
		CommercialRole: {allowed: true, ownership: true},
	},
	ActionContractCreate: {
		ManagementRole: {allowed: true},
	},
	ActionContractUpdate: {
		ManagementRole: {allowed: true},
		CommercialRole: {allowed: true, ownership: true},
	},
	ActionEventCreate: {
		CommercialRole: {allowed: true},
	},
	ActionEventUpdate: {
		ManagementRole: {allowed: true},
		CommercialRole: {allowed: true, ownership: true},
		SupportRole:    {allowed: true, ownership: true},
	},
	ActionUserRead: {
		ManagementRole: {allowed: true},
	},
	ActionUserCreate: {
		ManagementRole: {allowed: true},
	},
	ActionUserUpdate: {
		ManagementRole: {allowed: true},
	},
}

// Allows reports whether the static role prerequisite holds for the action.
// Ownership-qualified cells still count as allowed here; use NeedsOwnership to
// learn whether the dynamic check must also pass. Unknown actions and roles
// deny.
func (r Role) Allows(action Action) bool {
	return permissionTable[action][r].allowed
}

// NeedsOwnership reports whether the role's grant for the action is
// conditioned on owning the target entity.
func (r Role) NeedsOwnership(action Action) bool {
	return permissionTable[action][r].ownership
}
