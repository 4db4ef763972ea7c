package dto

type ResearchCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ResearchUpdateRequest is a patch: only non-nil fields are applied,
// absent fields keep their stored value.
type ResearchUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
