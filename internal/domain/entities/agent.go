package entities

import "time"

// StaffRole is the closed tagged union distinguishing staff capabilities.
// Capability checks match the tag; there is no field probing.

type StaffRole string

const (
	RoleOperator   StaffRole = "operator"
	RoleSupervisor StaffRole = "supervisor"
)

func (r StaffRole) IsValid() bool {
	return r == RoleOperator || r == RoleSupervisor
}

// Actor identifies the staff member performing an admin-facing action.
// Authentication happens upstream; the engine only receives the already
// verified identity.
type Actor struct {
	ID   string
	Name string
	Role StaffRole
}

func (a Actor) IsSupervisor() bool {
	return a.Role == RoleSupervisor
}

// WildcardSpecialization is the literal tag an agent carries to match every
// request category.
const WildcardSpecialization = "ALL"

// Specialization declares which request categories an agent may handle:
// either a finite set of tags or the distinguished any-category wildcard.
type Specialization struct {
	Any  bool
	Tags []string
}

func SpecializationFromTags(tags []string) Specialization {
	s := Specialization{}
	for _, t := range tags {
		if t == WildcardSpecialization {
			s.Any = true
			continue
		}
		if t != "" {
			s.Tags = append(s.Tags, t)
		}
	}
	return s
}

// TagList is the persisted form: the wildcard stays a literal tag so that
// stored agents round-trip unchanged.
func (s Specialization) TagList() []string {
	out := make([]string, 0, len(s.Tags)+1)
	if s.Any {
		out = append(out, WildcardSpecialization)
	}
	return append(out, s.Tags...)
}

// Matches is the single predicate deciding specialization fit; call sites
// never compare tags directly.
func (s Specialization) Matches(category string) bool {
	if s.Any {
		return true
	}
	for _, t := range s.Tags {
		if t == category {
			return true
		}
	}
	return false
}

// Agent is a staff member who processes service requests.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Presence and load live on the same item and are always written together
// under a version check: they form one consistency domain.
type Agent struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Role            StaffRole      `json:"role"`
	Specializations Specialization `json:"specializations"`
	IsOnline        bool           `json:"is_online"`
	IsBlocked       bool           `json:"is_blocked"`
	CurrentLoad     int            `json:"current_load"`
	MaxCapacity     int            `json:"max_capacity"`
	Version         int64          `json:"version"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Assignable reports whether automatic assignment may hand this agent a
// request of the given category. Manual reassignment bypasses it.
func (a Agent) Assignable(category string) bool {
	return !a.IsBlocked && a.IsOnline && a.CurrentLoad < a.MaxCapacity && a.Specializations.Matches(category)
}
