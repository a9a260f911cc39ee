package dto

import "github.com/dapurkita/backoffice/internal/models"

type ApproveRequest struct {
	PendingUserID string `json:"pendingUserId"`
}

type RejectRequest struct {
	PendingUserID string `json:"pendingUserId"`
}

// ApprovalResponse is the approve-endpoint shape: success flag, a
// human-readable message naming the email, and the resolved user.
type ApprovalResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}
