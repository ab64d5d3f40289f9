package invitation

import (
	"context"
	"errors"

	"github.com/vfg2006/creator-campaign-api/infrastructure/repository"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
	"github.com/vfg2006/creator-campaign-api/pkg/utils"
)

type InvitationService interface {
	InviteCreator(ctx context.Context, request *domain.InvitationRequest) (*domain.Invitation, error)
	RemoveCreator(ctx context.Context, request *domain.InvitationRequest) error
}

type Service struct {
	invitationRepository repository.InvitationRepository
	generateID           func() (string, error)
}

func NewService(invitationRepository repository.InvitationRepository) InvitationService {
	return &Service{
		invitationRepository: invitationRepository,
		generateID:           utils.GenerateID,
	}
}

func validate(request *domain.InvitationRequest) error {
	if request == nil || utils.IsBlank(request.CampaignID) || utils.IsBlank(request.CreatorID) {
		return NewInvitationError(ErrMissingIDs, apiErrors.ErrMissingRequiredData, "", "", "campaignId e creatorId são obrigatórios")
	}

	return nil
}

// InviteCreator registra o convite; o banco garante um único convite por campanha e criador
func (s *Service) InviteCreator(ctx context.Context, request *domain.InvitationRequest) (*domain.Invitation, error) {
	if err := validate(request); err != nil {
		return nil, err
	}
	campaignID, creatorID := request.CampaignID, request.CreatorID

	id, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID do convite")
		return nil, NewInvitationError(ErrGenerateID, apiErrors.ErrInternalServer, campaignID, creatorID, "Falha ao gerar identificador do convite")
	}

	invitation := &domain.Invitation{
		ID:         id,
		CampaignID: campaignID,
		CreatorID:  creatorID,
	}

	if err := s.invitationRepository.CreateInvitation(ctx, invitation); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, NewInvitationError(ErrAlreadyInvited, apiErrors.ErrDuplicateResource, campaignID, creatorID, "O criador já foi convidado para esta campanha")
		case errors.Is(err, repository.ErrReferenceNotFound):
			return nil, NewInvitationError(ErrReferenceNotFound, apiErrors.ErrResourceNotFound, campaignID, creatorID, "Campanha ou criador não encontrado")
		}

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"campaign_id": campaignID,
			"creator_id":  creatorID,
		}).Error("Erro ao criar convite no repositório")
		return nil, NewInvitationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, creatorID, "Falha ao criar convite")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"creator_id":  creatorID,
	}).Info("Criador convidado")

	return invitation, nil
}

func (s *Service) RemoveCreator(ctx context.Context, request *domain.InvitationRequest) error {
	if err := validate(request); err != nil {
		return err
	}
	campaignID, creatorID := request.CampaignID, request.CreatorID

	deleted, err := s.invitationRepository.DeleteInvitation(ctx, campaignID, creatorID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"campaign_id": campaignID,
			"creator_id":  creatorID,
		}).Error("Erro ao remover convite no repositório")
		return NewInvitationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, creatorID, "Falha ao remover convite")
	}

	if deleted == 0 {
		return NewInvitationError(ErrInvitationNotFound, apiErrors.ErrResourceNotFound, campaignID, creatorID, "Convite não encontrado")
	}

	return nil
}
