package dto

// ApplyRequest represents an application submission
type ApplyRequest struct {
	MasterID int64 `json:"masterId" binding:"required,min=1" example:"10"`
}

// UpdateApplicationStatusRequest carries a review decision
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"accepted" enums:"accepted,rejected"`
}
