package condition

import "log/slog"

// DefaultMaxSkillValue is the skill cap used when the config does not set one.
const DefaultMaxSkillValue = 375

// Registry is a deduplicated, append-only store of loot conditions.
// Index 0 is always the empty condition. Indices are stable for the life
// of the registry, so loot definitions keep only the index.
//
// Registry is filled during the load phase and read afterwards; it is not
// safe for concurrent Register calls.
type Registry struct {
	data          GameData
	maxSkillValue int32
	conditions    []Condition
}

// NewRegistry creates a registry holding only the empty condition.
func NewRegistry(data GameData, maxSkillValue int32) *Registry {
	if maxSkillValue <= 0 {
		maxSkillValue = DefaultMaxSkillValue
	}
	r := &Registry{
		data:          data,
		maxSkillValue: maxSkillValue,
	}
	r.Reset()
	return r
}

// Reset drops every condition except the empty one at index 0.
func (r *Registry) Reset() {
	r.conditions = make([]Condition, 1, 64)
	r.conditions[0] = Condition{Kind: KindNone}
}

// Register returns the index of an identical stored condition, or validates
// and appends a new one. Invalid definitions are logged and mapped to 0.
func (r *Registry) Register(kind Kind, value1, value2 int32) uint16 {
	c := Condition{Kind: kind, Value1: value1, Value2: value2}
	for i := range r.conditions {
		if r.conditions[i] == c {
			return uint16(i)
		}
	}

	warnings, err := c.validate(r.data, r.maxSkillValue)
	for _, w := range warnings {
		slog.Warn("loot condition", "kind", kind, "value1", value1, "value2", value2, "warning", w)
	}
	if err != nil {
		slog.Warn("loot condition skipped", "err", err)
		return 0
	}

	r.conditions = append(r.conditions, c)
	return uint16(len(r.conditions) - 1)
}

// Get returns the condition stored at id.
func (r *Registry) Get(id uint16) (Condition, bool) {
	if int(id) >= len(r.conditions) {
		return Condition{}, false
	}
	return r.conditions[id], true
}

// Meets evaluates condition id against s. Unknown ids and nil subjects fail.
func (r *Registry) Meets(id uint16, s Subject) bool {
	c, ok := r.Get(id)
	if !ok {
		return false
	}
	return c.Meets(s)
}

// Len returns the number of stored conditions, including the empty one.
func (r *Registry) Len() int {
	return len(r.conditions)
}
