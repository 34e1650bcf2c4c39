package domain

// Principal is the authenticated identity making a request. It is passed
// explicitly to every core operation.
type Principal struct {
	UserID uint
	Role   Role
}

// Valid reports whether the principal carries a resolved identity.
func (p Principal) Valid() bool {
	if p.UserID == 0 {
		return false
	}
	_, err := ParseRole(string(p.Role))
	return err == nil
}
