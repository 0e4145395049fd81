package models

// Identity is the authenticated requester, extracted from the bearer token
// and threaded explicitly into every service operation that mutates state.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  RoleType
}

// IsAdmin reports whether the requester holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanModify reports whether the requester may mutate a record owned by
// ownerID: admins always, members only their own records.
func (i Identity) CanModify(ownerID string) bool {
	return i.IsAdmin() || (i.ID != "" && i.ID == ownerID)
}
