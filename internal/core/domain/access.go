package domain

// Resource is a kind of record guarded by the access table.
type Resource string

const (
	ResourceVehicle Resource = "vehicle"
	ResourceService Resource = "service"
	ResourceQuote   Resource = "quote"
	ResourceUser    Resource = "user"
)

// Action is an operation on a resource.
type Action string

const (
	ActionList    Action = "list"
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

// Scope is how much of a resource a role reaches for one action.
type Scope int

const (
	ScopeNone Scope = iota
	// ScopeOwn: records owned by the caller (vehicle owner, or the user itself).
	ScopeOwn
	// ScopeAssigned: services assigned to the calling mechanic.
	ScopeAssigned
	// ScopeQueue: ScopeAssigned plus unassigned services awaiting a quote.
	ScopeQueue
	ScopeAll
)

type rules map[Action]Scope

// accessTable is the only place role permissions are defined.
var accessTable = map[Resource]map[Role]rules{
	ResourceVehicle: {
		RoleClient:   {ActionList: ScopeOwn, ActionRead: ScopeOwn, ActionCreate: ScopeOwn, ActionUpdate: ScopeOwn, ActionDelete: ScopeOwn},
		RoleMechanic: {ActionList: ScopeAll, ActionRead: ScopeAll},
		RoleManager:  {ActionList: ScopeAll, ActionRead: ScopeAll, ActionCreate: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
	},
	ResourceService: {
		RoleClient:   {ActionList: ScopeOwn, ActionRead: ScopeOwn, ActionCreate: ScopeOwn},
		RoleMechanic: {ActionList: ScopeQueue, ActionRead: ScopeQueue, ActionCreate: ScopeAll, ActionUpdate: ScopeAssigned},
		RoleManager:  {ActionList: ScopeAll, ActionRead: ScopeAll, ActionCreate: ScopeAll, ActionUpdate: ScopeAll},
	},
	ResourceQuote: {
		RoleClient:   {ActionList: ScopeOwn, ActionRead: ScopeOwn, ActionApprove: ScopeOwn},
		RoleMechanic: {ActionList: ScopeQueue, ActionRead: ScopeQueue, ActionCreate: ScopeQueue},
		RoleManager:  {ActionList: ScopeAll, ActionRead: ScopeAll, ActionCreate: ScopeAll},
	},
	ResourceUser: {
		RoleClient:   {ActionList: ScopeOwn, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
		RoleMechanic: {ActionList: ScopeOwn, ActionRead: ScopeOwn, ActionUpdate: ScopeOwn},
		RoleManager:  {ActionList: ScopeAll, ActionRead: ScopeAll, ActionCreate: ScopeAll, ActionUpdate: ScopeAll, ActionDelete: ScopeAll},
	},
}

// Target is the access-control view of a single record. Quotes use the
// target of their service; users use their own id as OwnerID.
type Target struct {
	OwnerID    uint
	MechanicID *uint
	Status     ServiceStatus
}

// ScopeFor looks up the table. Unknown combinations are ScopeNone.
func ScopeFor(role Role, res Resource, act Action) Scope {
	return accessTable[res][role][act]
}

// Can reports whether role may perform act on at least some records of res.
func Can(role Role, res Resource, act Action) bool {
	return ScopeFor(role, res, act) != ScopeNone
}

// Authorize is the single permission check applied before any read or
// write of an individual record.
func Authorize(p Principal, res Resource, act Action, t Target) error {
	if !p.Valid() {
		return ErrNotAuthenticated
	}
	v := Visibility{Scope: ScopeFor(p.Role, res, act), UserID: p.UserID}
	if !v.Allows(t) {
		return ErrForbidden
	}
	return nil
}

// Visibility is what a list operation may return for a caller. Repositories
// translate it into query predicates.
type Visibility struct {
	Scope  Scope
	UserID uint
}

// VisibilityFor resolves the list scope of res for p. It never fails: an
// invalid principal simply sees nothing.
func VisibilityFor(p Principal, res Resource) Visibility {
	if !p.Valid() {
		return Visibility{Scope: ScopeNone}
	}
	return Visibility{Scope: ScopeFor(p.Role, res, ActionList), UserID: p.UserID}
}

// Allows reports whether a record with target t falls inside v.
func (v Visibility) Allows(t Target) bool {
	switch v.Scope {
	case ScopeAll:
		return true
	case ScopeOwn:
		return t.OwnerID == v.UserID
	case ScopeAssigned:
		return t.MechanicID != nil && *t.MechanicID == v.UserID
	case ScopeQueue:
		if t.MechanicID == nil {
			return t.Status == StatusAwaitingQuote
		}
		return *t.MechanicID == v.UserID
	}
	return false
}
