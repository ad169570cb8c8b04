package entity

// Roles válidos en el token.
const (
	RoleAdmin      = "admin"
	RoleCommercial = "commercial"
	RolePAO        = "pao"
	RoleProduction = "production"
)

// IsKnownRole indica si el rol pertenece a la aplicación.
func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCommercial, RolePAO, RoleProduction:
		return true
	}
	return false
}
