package domain

// Role is a permission level drawn from a closed, totally ordered set.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// roleLevels defines the total order USER < ADMIN < SUPER_ADMIN.
var roleLevels = map[Role]int{
	RoleUser:       0,
	RoleAdmin:      1,
	RoleSuperAdmin: 2,
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// Level returns the role's position in the order, or -1 for roles outside
// the closed set.
func (r Role) Level() int {
	level, ok := roleLevels[r]
	if !ok {
		return -1
	}
	return level
}

// AtLeast reports whether r sits at or above min in the role order. Roles
// outside the closed set are never authorized.
func (r Role) AtLeast(min Role) bool {
	if !r.Valid() || !min.Valid() {
		return false
	}
	return r.Level() >= min.Level()
}
