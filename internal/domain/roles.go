package domain

type Role string

const (
	// Student is the default role; students browse and book sessions.
	RoleStudent Role = "student"
	// Tutors create study sessions and upload materials.
	RoleTutor Role = "tutor"
	// Admins approve/reject sessions and manage user roles.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleStudent) || r == string(RoleTutor) || r == string(RoleAdmin)
}
