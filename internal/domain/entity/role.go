package entity

// Role is an authorization role carried in the access token.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Roles is the set of roles held by an actor.
type Roles []Role

// Has reports whether role is among the roles.
func (r Roles) Has(role Role) bool {
	for _, candidate := range r {
		if candidate == role {
			return true
		}
	}

	return false
}

// RolesFromStrings converts token claim values into Roles, skipping unknown ones.
func RolesFromStrings(values []string) Roles {
	roles := make(Roles, 0, len(values))
	for _, v := range values {
		switch Role(v) {
		case RoleUser, RoleProvider, RoleAdmin:
			roles = append(roles, Role(v))
		}
	}

	return roles
}

// Strings returns the roles as plain strings.
func (r Roles) Strings() []string {
	out := make([]string, 0, len(r))
	for _, role := range r {
		out = append(out, string(role))
	}

	return out
}
