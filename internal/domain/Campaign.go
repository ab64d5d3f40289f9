package domain

import "time"

type Campaign struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description"`
	Budget              float64       `json:"budget"`
	LaunchDate          *time.Time    `json:"launchDate"`
	AssignedBy          *string       `json:"assignedBy"`
	AssignedChannels    []string      `json:"assignedChannels"`
	ImageKey            *string       `json:"imageKey"`
	AssignedImageKey    *string       `json:"assignedImageKey"`
	CampaignCreatedDate *time.Time    `json:"campaignCreatedDate"`
	InvitedCreators     []*Invitation `json:"invitedCreators"`
}

// CampaignResponse é a projeção da campanha exposta pela API
type CampaignResponse struct {
	ID                  string                    `json:"id"`
	Name                string                    `json:"name"`
	Description         string                    `json:"description"`
	Budget              float64                   `json:"budget"`
	LaunchDate          *string                   `json:"launchDate"`
	AssignedBy          *string                   `json:"assignedBy"`
	AssignedChannels    []string                  `json:"assignedChannels"`
	CampaignCreatedDate *string                   `json:"campaignCreatedDate"`
	ImageURL            *string                   `json:"imageUrl"`
	AssignedImageURL    *string                   `json:"assignedImageUrl"`
	IsActive            bool                      `json:"isActive"`
	InvitedCreators     []*InvitedCreatorResponse `json:"invitedCreators"`
}

type CampaignDetailResponse struct {
	Campaign *CampaignResponse `json:"campaign"`
}

type CreateCampaignRequest struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Budget           *float64 `json:"budget"`
	LaunchDate       string   `json:"launchDate"`
	AssignedBy       *string  `json:"assignedBy"`
	AssignedChannels []string `json:"assignedChannels"`
	ImageKey         *string  `json:"imageKey"`
	AssignedImageKey *string  `json:"assignedImageKey"`
}

// UpdateCampaignRequest só altera os campos enviados no corpo
type UpdateCampaignRequest struct {
	ID               string    `json:"-"`
	Name             *string   `json:"name,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Budget           *float64  `json:"budget,omitempty"`
	LaunchDate       *string   `json:"launchDate,omitempty"`
	AssignedBy       *string   `json:"assignedBy,omitempty"`
	AssignedChannels *[]string `json:"assignedChannels,omitempty"`
	ImageKey         *string   `json:"imageKey,omitempty"`
	AssignedImageKey *string   `json:"assignedImageKey,omitempty"`
}

// CampaignUpdate é a versão validada do UpdateCampaignRequest, pronta para o repositório
type CampaignUpdate struct {
	ID               string
	Name             *string
	Description      *string
	Budget           *float64
	LaunchDate       *time.Time
	AssignedBy       *string
	AssignedChannels *[]string
	ImageKey         *string
	AssignedImageKey *string
}

func (u *CampaignUpdate) IsEmpty() bool {
	if u == nil {
		return true
	}

	return u.Name == nil && u.Description == nil && u.Budget == nil && u.LaunchDate == nil &&
		u.AssignedBy == nil && u.AssignedChannels == nil && u.ImageKey == nil && u.AssignedImageKey == nil
}

type MessageResponse struct {
	Message string `json:"message"`
}
