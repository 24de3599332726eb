package bot

// Conversation states. A user with no stored state is treated as idle.
const (
	StateIdle       = "IDLE"
	StateInCategory = "IN_CATEGORY"
)

// State is the per-user conversation position, kept in memory only.
// Losing it on restart just means the user sees the main menu again.
type State struct {
	Kind         string `json:"kind"`
	CategoryId   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`

	// LastIndex is the 0-based offset of the last answered question.
	// Only meaningful while in a category.
	LastIndex *int `json:"last_index,omitempty"`
}

func IdleState() *State {
	return &State{Kind: StateIdle}
}

func InCategoryState(categoryId uint, categoryName string) *State {
	return &State{
		Kind:         StateInCategory,
		CategoryId:   categoryId,
		CategoryName: categoryName,
	}
}

// WithIndex returns a copy of the state with the answered question offset
// recorded.
func (s *State) WithIndex(index int) *State {
	return &State{
		Kind:         s.Kind,
		CategoryId:   s.CategoryId,
		CategoryName: s.CategoryName,
		LastIndex:    &index,
	}
}
