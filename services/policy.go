package services

// Roles carried in the session token.
const (
	RoleAdmin    = "admin"
	RoleDirector = "director"
	RoleUser     = "user"
)

// Actions gated by role or ownership.
type Action string

const (
	ActionInformantUpdate Action = "informant.update"
	ActionInformantDelete Action = "informant.delete"
	ActionMenuUpdate      Action = "menu.update"
	ActionMenuDelete      Action = "menu.delete"
	ActionMenuStatus      Action = "menu.status"
	ActionUserManage      Action = "user.manage"
)

// Allowed is the single capability check for the whole application.
// ownerCode is the sv_code recorded on the resource ("" when ownership is
// irrelevant to the action).
func Allowed(role string, action Action, callerCode, ownerCode string) bool {
	switch action {
	case ActionInformantUpdate, ActionInformantDelete, ActionMenuStatus:
		return role == RoleAdmin || role == RoleDirector
	case ActionMenuUpdate:
		return role == RoleAdmin || role == RoleDirector || callerCode == ownerCode
	case ActionMenuDelete:
		// directors review but do not delete; only admin or the submitting
		// enumerator may remove a menu
		return role == RoleAdmin || callerCode == ownerCode
	case ActionUserManage:
		return role == RoleAdmin
	}
	return false
}
