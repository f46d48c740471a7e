package models

// SlotRole is the display grouping for a formation slot. Roles carry no
// gameplay semantics; they only group the on-field list for rendering.
type SlotRole string

const (
	// RoleGoalkeeper groups the goalkeeper slot
	RoleGoalkeeper SlotRole = "goalkeeper"

	// RoleDefense groups defensive slots
	RoleDefense SlotRole = "defense"

	// RoleMidfield groups midfield slots
	RoleMidfield SlotRole = "midfield"

	// RoleAttack groups attacking slots
	RoleAttack SlotRole = "attack"
)

// FormationSlot is one position in a formation
type FormationSlot struct {
	// SlotID is the stable identifier the lineup maps to a participant
	SlotID string `json:"slot_id"`

	// Role is the display grouping for the slot
	Role SlotRole `json:"role"`
}

// Formation is an ordered list of slots for a named formation
type Formation struct {
	// ID identifies the formation, e.g. "4-4-2"
	ID string `json:"id"`

	// Slots are the formation positions in display order
	Slots []FormationSlot `json:"slots"`
}

// RoleForSlot returns the display role for a slot id, defaulting to
// midfield for unknown slots
func (f *Formation) RoleForSlot(slotID string) SlotRole {
	if f != nil {
		for _, slot := range f.Slots {
			if slot.SlotID == slotID {
				return slot.Role
			}
		}
	}
	return RoleMidfield
}

// DefaultFormations is the static formation metadata table. Static
// presentation data; additional custom formations can be supplied by
// the caller at construction time.
var DefaultFormations = map[string]*Formation{
	"4-4-2": {
		ID: "4-4-2",
		Slots: []FormationSlot{
			{SlotID: "gk", Role: RoleGoalkeeper},
			{SlotID: "lb", Role: RoleDefense},
			{SlotID: "lcb", Role: RoleDefense},
			{SlotID: "rcb", Role: RoleDefense},
			{SlotID: "rb", Role: RoleDefense},
			{SlotID: "lm", Role: RoleMidfield},
			{SlotID: "lcm", Role: RoleMidfield},
			{SlotID: "rcm", Role: RoleMidfield},
			{SlotID: "rm", Role: RoleMidfield},
			{SlotID: "ls", Role: RoleAttack},
			{SlotID: "rs", Role: RoleAttack},
		},
	},
	"4-3-3": {
		ID: "4-3-3",
		Slots: []FormationSlot{
			{SlotID: "gk", Role: RoleGoalkeeper},
			{SlotID: "lb", Role: RoleDefense},
			{SlotID: "lcb", Role: RoleDefense},
			{SlotID: "rcb", Role: RoleDefense},
			{SlotID: "rb", Role: RoleDefense},
			{SlotID: "lcm", Role: RoleMidfield},
			{SlotID: "cm", Role: RoleMidfield},
			{SlotID: "rcm", Role: RoleMidfield},
			{SlotID: "lw", Role: RoleAttack},
			{SlotID: "st", Role: RoleAttack},
			{SlotID: "rw", Role: RoleAttack},
		},
	},
	"3-5-2": {
		ID: "3-5-2",
		Slots: []FormationSlot{
			{SlotID: "gk", Role: RoleGoalkeeper},
			{SlotID: "lcb", Role: RoleDefense},
			{SlotID: "cb", Role: RoleDefense},
			{SlotID: "rcb", Role: RoleDefense},
			{SlotID: "lwb", Role: RoleMidfield},
			{SlotID: "lcm", Role: RoleMidfield},
			{SlotID: "cm", Role: RoleMidfield},
			{SlotID: "rcm", Role: RoleMidfield},
			{SlotID: "rwb", Role: RoleMidfield},
			{SlotID: "ls", Role: RoleAttack},
			{SlotID: "rs", Role: RoleAttack},
		},
	},
}
