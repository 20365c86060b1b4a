package relay

import "github.com/akeren/waitlist-relay/internal/models"

// SubmissionRequest is the relay's inbound body. Fields are forwarded as sent;
// absent ones arrive as empty strings and the upstream decides whether to accept them.
type SubmissionRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Profession     string `json:"profession,omitempty"`
	ReferralSource string `json:"referralSource"`
}

type SubmissionResponse struct {
	Success bool `json:"success"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistSubmission(req *SubmissionRequest) *models.WaitlistSubmission {
	if req == nil {
		return nil
	}
	return &models.WaitlistSubmission{
		Name:           req.Name,
		Email:          req.Email,
		Profession:     req.Profession,
		ReferralSource: req.ReferralSource,
	}
}
