package auth

type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var AllRoles = []Role{
	RoleUser,
	RoleEditor,
	RoleAdmin,
}

// Level returns the position of the role in the permission order.
// Unknown roles rank below every valid role.
func (r Role) Level() int {
	switch r {
	case RoleUser:
		return 0
	case RoleEditor:
		return 1
	case RoleAdmin:
		return 2
	default:
		return -1
	}
}

func (r Role) IsValid() bool {
	return r.Level() >= 0
}

// AtLeast reports whether the role meets the given threshold.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.Level() >= min.Level()
}
