package invitation

import (
	"errors"
	"fmt"
)

var (
	ErrMissingIDs         = errors.New("campaign ID and creator ID are required")
	ErrAlreadyInvited     = errors.New("creator already invited to campaign")
	ErrReferenceNotFound  = errors.New("campaign or creator not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrDatabaseOperation  = errors.New("database operation error")
	ErrGenerateID         = errors.New("error generating invitation ID")
)

// InvitationError carrega o par campanha/criador envolvido
type InvitationError struct {
	Err        error
	Code       string
	CampaignID string
	CreatorID  string
	Details    string
}

func (e *InvitationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InvitationError) Unwrap() error {
	return e.Err
}

func NewInvitationError(err error, code string, campaignID, creatorID string, details string) *InvitationError {
	return &InvitationError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Details:    details,
	}
}
