package entity

// Role is the persona a user acts as
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// IsValid reports whether r is one of the known personas
func (r Role) IsValid() bool {
	return r == RolePatient || r == RoleDoctor
}
