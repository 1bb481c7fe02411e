package model

// State is the serializable root of the store: every entity collection plus
// the identifier counter. It is the unit of persistence: the whole tree is
// written on every mutation.
type State struct {
	Users      []User     `json:"users"`
	Items      []Item     `json:"items"`
	Swaps      []Swap     `json:"swaps"`
	Categories []Category `json:"categories"`
	NextID     int64      `json:"next_id"`
}

// NewState returns an empty state tree with the counter at its start value.
func NewState() *State {
	return &State{NextID: 1}
}
