package campaign

import (
	"context"
	"errors"

	"github.com/vfg2006/creator-campaign-api/infrastructure/repository"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/presenting"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
	"github.com/vfg2006/creator-campaign-api/pkg/utils"
)

type CampaignService interface {
	ListCampaigns(ctx context.Context) ([]*domain.CampaignResponse, error)
	GetCampaign(ctx context.Context, id string) (*domain.CampaignResponse, error)
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error)
	DeleteCampaign(ctx context.Context, id string) error
}

type Service struct {
	campaignRepository repository.CampaignRepository
	presenter          *presenting.Presenter
	generateID         func() (string, error)
}

func NewService(
	campaignRepository repository.CampaignRepository,
	presenter *presenting.Presenter,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		presenter:          presenter,
		generateID:         utils.GenerateCampaignID,
	}
}

func (s *Service) ListCampaigns(ctx context.Context) ([]*domain.CampaignResponse, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar campanhas no repositório")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	return s.presenter.Campaigns(campaigns), nil
}

func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.CampaignResponse, error) {
	if id == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", id).Error("Erro ao buscar campanha no repositório")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, id, "Campanha não encontrada")
	}

	return s.presenter.Campaign(campaign), nil
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	if request == nil || utils.IsBlank(request.Name) || utils.IsBlank(request.Description) ||
		request.Budget == nil || request.LaunchDate == "" {
		return nil, NewCampaignError(ErrMissingFields, apiErrors.ErrMissingRequiredData, "Nome, descrição, orçamento e data de lançamento são obrigatórios")
	}

	if *request.Budget <= 0 {
		return nil, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidFormat, "O orçamento deve ser positivo")
	}

	launchDate, err := utils.ParseTimestamp(request.LaunchDate)
	if err != nil {
		return nil, NewCampaignError(ErrInvalidLaunchDate, apiErrors.ErrInvalidFormat, err.Error())
	}

	id, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID da campanha")
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da campanha")
	}

	campaign := &domain.Campaign{
		ID:               id,
		Name:             request.Name,
		Description:      request.Description,
		Budget:           *request.Budget,
		LaunchDate:       &launchDate,
		AssignedBy:       request.AssignedBy,
		AssignedChannels: request.AssignedChannels,
		ImageKey:         utils.NilIfBlank(request.ImageKey),
		AssignedImageKey: utils.NilIfBlank(request.AssignedImageKey),
	}

	if err := s.campaignRepository.CreateCampaign(ctx, campaign); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar campanha no repositório")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha")
	}

	log.ForContext(ctx).WithField("campaign_id", campaign.ID).Info("Campanha criada")

	return s.presenter.Campaign(campaign), nil
}

// UpdateCampaign aplica apenas os campos enviados e devolve a campanha atualizada
func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error) {
	if request == nil || request.ID == "" {
		return nil, NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	update, err := toCampaignUpdate(request)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		return nil, NewCampaignErrorWithID(ErrNothingToUpdate, apiErrors.ErrInvalidRequest, request.ID, "Nenhum campo para atualizar")
	}

	if err := s.campaignRepository.UpdateCampaign(ctx, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, request.ID, "Campanha não encontrada")
		}

		log.ForContext(ctx).WithError(err).WithField("campaign_id", request.ID).Error("Erro ao atualizar campanha no repositório")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar campanha")
	}

	return s.GetCampaign(ctx, request.ID)
}

func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if id == "" {
		return NewCampaignError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	if err := s.campaignRepository.DeleteCampaign(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, id, "Campanha não encontrada")
		}

		log.ForContext(ctx).WithError(err).WithField("campaign_id", id).Error("Erro ao remover campanha no repositório")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao remover campanha")
	}

	log.ForContext(ctx).WithField("campaign_id", id).Info("Campanha removida")

	return nil
}

func toCampaignUpdate(request *domain.UpdateCampaignRequest) (*domain.CampaignUpdate, error) {
	update := &domain.CampaignUpdate{
		ID:               request.ID,
		Name:             request.Name,
		Description:      request.Description,
		Budget:           request.Budget,
		AssignedBy:       request.AssignedBy,
		AssignedChannels: request.AssignedChannels,
		ImageKey:         request.ImageKey,
		AssignedImageKey: request.AssignedImageKey,
	}

	if request.Name != nil && utils.IsBlank(*request.Name) {
		return nil, NewCampaignErrorWithID(ErrMissingFields, apiErrors.ErrMissingRequiredData, request.ID, "O nome não pode ser vazio")
	}

	if request.Description != nil && utils.IsBlank(*request.Description) {
		return nil, NewCampaignErrorWithID(ErrMissingFields, apiErrors.ErrMissingRequiredData, request.ID, "A descrição não pode ser vazia")
	}

	if request.Budget != nil && *request.Budget <= 0 {
		return nil, NewCampaignErrorWithID(ErrInvalidBudget, apiErrors.ErrInvalidFormat, request.ID, "O orçamento deve ser positivo")
	}

	if request.LaunchDate != nil {
		launchDate, err := utils.ParseTimestamp(*request.LaunchDate)
		if err != nil {
			return nil, NewCampaignErrorWithID(ErrInvalidLaunchDate, apiErrors.ErrInvalidFormat, request.ID, err.Error())
		}
		update.LaunchDate = &launchDate
	}

	return update, nil
}
