package models

type WorkerRole string

const (
	RoleMason       WorkerRole = "Mason"
	RoleLaborer     WorkerRole = "Laborer"
	RolePainter     WorkerRole = "Painter"
	RoleForeman     WorkerRole = "Foreman"
	RoleElectrician WorkerRole = "Electrician"
)

// WorkerRoles lists the selectable roles in display order.
var WorkerRoles = []WorkerRole{RoleMason, RoleLaborer, RolePainter, RoleForeman, RoleElectrician}

func (r WorkerRole) Valid() bool {
	for _, known := range WorkerRoles {
		if r == known {
			return true
		}
	}
	return false
}

type TeamMember struct {
	Name      string     `json:"name"`
	Role      WorkerRole `json:"role"`
	DailyRate float64    `json:"rate"`
	Active    bool       `json:"active"`
}
