package domain

import "time"

// Invitation liga um criador a uma campanha
type Invitation struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	CreatorID  string    `json:"creatorId"`
	CreatedAt  time.Time `json:"createdAt"`
	Creator    *Creator  `json:"creator,omitempty"`
}

type InvitedCreatorResponse struct {
	ID         string           `json:"id"`
	CampaignID string           `json:"campaignId"`
	CreatorID  string           `json:"creatorId"`
	CreatedAt  time.Time        `json:"createdAt"`
	Creator    *CreatorResponse `json:"creator"`
}

type InvitationRequest struct {
	CampaignID string `json:"campaignId"`
	CreatorID  string `json:"creatorId"`
}
