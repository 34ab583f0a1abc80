package dto

// CreateParentRequest creates a parent and links the given students.
// StudentIDs is the full link list, not a delta.
type CreateParentRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Relation   string   `json:"relation"`
	StudentIDs []string `json:"studentIds"`
}

// UpdateParentRequest is a partial update. StudentIDs, when present,
// replaces the linked-student list wholesale.
type UpdateParentRequest struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Relation   *string   `json:"relation,omitempty"`
	Active     *bool     `json:"active,omitempty"`
	StudentIDs *[]string `json:"studentIds,omitempty"`
}
