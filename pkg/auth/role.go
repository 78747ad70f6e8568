package auth

// Role is the per-request role decision. It is never persisted.
type Role int

const (
	RoleUnauthenticated Role = iota
	RoleMember
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	default:
		return "unauthenticated"
	}
}

// AdminRoleLabels are the organization role labels that grant admin access.
var AdminRoleLabels = []string{"org:admin", "admin"}

// IsAdminLabel reports whether an organization role label qualifies as admin
func IsAdminLabel(label string) bool {
	for _, l := range AdminRoleLabels {
		if label == l {
			return true
		}
	}
	return false
}
