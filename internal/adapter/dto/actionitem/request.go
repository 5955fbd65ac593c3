package actionitem

// CreateRequest is the body for POST /v1/meetings/:id/action-items
type CreateRequest struct {
	Description string  `json:"description" validate:"required"`
	Owner       string  `json:"owner" validate:"required"`
	Deadline    string  `json:"deadline" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,item_status"`
	Priority    string  `json:"priority" validate:"omitempty,item_priority"`
	Notes       *string `json:"notes"`
}

// UpdateRequest is the body for PUT /v1/action-items/:id. Absent fields are
// left untouched, which is why everything is a pointer.
type UpdateRequest struct {
	Description *string `json:"description"`
	Owner       *string `json:"owner"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status" validate:"omitempty,item_status"`
	Priority    *string `json:"priority" validate:"omitempty,item_priority"`
	Notes       *string `json:"notes"`
}
