package role

// Role est un ensemble fermé : toute valeur hors de cette liste est rejetée
// à la frontière (parsing JWT, création de profil).
type Role string

const (
	SuperAdmin Role = "superadmin"
	Admin      Role = "admin"
	Reception  Role = "reception"
	Staff      Role = "staff"
)

func Parse(s string) (Role, bool) {
	switch Role(s) {
	case SuperAdmin, Admin, Reception, Staff:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	_, ok := Parse(string(r))
	return ok
}

// IsAdmin couvre les deux niveaux d'administration.
func (r Role) IsAdmin() bool {
	return r == SuperAdmin || r == Admin
}

// SeesOnlyOwnAgenda : un compte "staff" ne voit que ses propres rendez-vous,
// quel que soit le filtre demandé.
func (r Role) SeesOnlyOwnAgenda() bool {
	return r == Staff
}
