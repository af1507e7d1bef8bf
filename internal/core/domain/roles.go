package domain

// Role names the single-address authorities of the ledger.
type Role string

const (
	// RoleCustodian is the highest authority: sole confirmer of print,
	// ceiling-raise, wipe, forced-transfer and hand-off requests.
	RoleCustodian Role = "custodian"
	// RoleController is the bounded-minting authority.
	RoleController Role = "controller"
	// RoleSweeper is the sole executor of delegated sweeps.
	RoleSweeper Role = "sweeper"
	// RoleImplementation is the active routing-layer reference, replaced
	// only through a confirmed hand-off request.
	RoleImplementation Role = "implementation"
)

// RoleSet is a snapshot of all single-address role assignments.
type RoleSet struct {
	Custodian      Address `json:"custodian"`
	Controller     Address `json:"controller"`
	Sweeper        Address `json:"sweeper"`
	Implementation Address `json:"implementation"`
}

// Holder returns the address assigned to r, or the zero address if unset.
func (s RoleSet) Holder(r Role) Address {
	switch r {
	case RoleCustodian:
		return s.Custodian
	case RoleController:
		return s.Controller
	case RoleSweeper:
		return s.Sweeper
	case RoleImplementation:
		return s.Implementation
	}
	return ZeroAddress
}
