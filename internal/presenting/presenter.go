// Package presenting transforma registros persistidos nas projeções expostas pela API
package presenting

import (
	"time"

	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/pkg/utils"
)

// Presenter não guarda estado mutável e pode ser compartilhado entre requisições
type Presenter struct {
	baseURL string
	now     func() time.Time
}

func NewPresenter(baseURL string) *Presenter {
	return &Presenter{
		baseURL: baseURL,
		now:     time.Now,
	}
}

// WithClock troca o relógio usado para calcular isActive
func (p *Presenter) WithClock(now func() time.Time) *Presenter {
	return &Presenter{
		baseURL: p.baseURL,
		now:     now,
	}
}

func (p *Presenter) Campaigns(campaigns []*domain.Campaign) []*domain.CampaignResponse {
	response := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		response = append(response, p.Campaign(campaign))
	}

	return response
}

// Campaign monta a campanha campo a campo; chaves internas (imageKey) não vazam para a API
func (p *Presenter) Campaign(campaign *domain.Campaign) *domain.CampaignResponse {
	invited := make([]*domain.InvitedCreatorResponse, 0, len(campaign.InvitedCreators))
	for _, invitation := range campaign.InvitedCreators {
		invited = append(invited, p.InvitedCreator(invitation))
	}

	return &domain.CampaignResponse{
		ID:                  campaign.ID,
		Name:                campaign.Name,
		Description:         campaign.Description,
		Budget:              campaign.Budget,
		LaunchDate:          utils.FormatLongDate(campaign.LaunchDate),
		AssignedBy:          campaign.AssignedBy,
		AssignedChannels:    nonNilStrings(campaign.AssignedChannels),
		CampaignCreatedDate: utils.FormatLongDate(campaign.CampaignCreatedDate),
		ImageURL:            p.imageURL(campaign.ImageKey),
		AssignedImageURL:    p.imageURL(campaign.AssignedImageKey),
		IsActive:            p.isActive(campaign.LaunchDate),
		InvitedCreators:     invited,
	}
}

// InvitedCreator mantém os campos do convite e aninha o criador formatado.
// Um convite sem criador carregado é erro de quem chamou e não é mascarado.
func (p *Presenter) InvitedCreator(invitation *domain.Invitation) *domain.InvitedCreatorResponse {
	return &domain.InvitedCreatorResponse{
		ID:         invitation.ID,
		CampaignID: invitation.CampaignID,
		CreatorID:  invitation.CreatorID,
		CreatedAt:  invitation.CreatedAt,
		Creator:    p.Creator(invitation.Creator),
	}
}

func (p *Presenter) Creators(creators []*domain.Creator) []*domain.CreatorResponse {
	response := make([]*domain.CreatorResponse, 0, len(creators))
	for _, creator := range creators {
		response = append(response, p.Creator(creator))
	}

	return response
}

func (p *Presenter) Creator(creator *domain.Creator) *domain.CreatorResponse {
	return &domain.CreatorResponse{
		ID:        creator.ID,
		Name:      creator.Name,
		City:      creator.City,
		Country:   creator.Country,
		Followers: utils.FormatFollowers(creator.Followers),
		Platforms: nonNilStrings(creator.Platforms),
		ImageURL:  p.imageURL(creator.ImageKey),
	}
}

func (p *Presenter) imageURL(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}

	url := p.baseURL + *key
	return &url
}

// isActive é verdadeiro quando a data de lançamento já chegou
func (p *Presenter) isActive(launchDate *time.Time) bool {
	if launchDate == nil {
		return false
	}

	return !launchDate.After(p.now())
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
