package ranking

import (
	"context"

	"github.com/vfg2006/creator-campaign-api/infrastructure/repository"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/presenting"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
)

type RankingService interface {
	// GetTopCreators lista os criadores com mais seguidores ainda não convidados para a campanha.
	// limit igual a zero usa o limite padrão configurado.
	GetTopCreators(ctx context.Context, campaignID string, limit int) ([]*domain.CreatorResponse, error)
}

type CreatorRankingService struct {
	campaignRepository   repository.CampaignRepository
	creatorRepository    repository.CreatorRepository
	invitationRepository repository.InvitationRepository
	presenter            *presenting.Presenter
	defaultLimit         int
}

func NewCreatorRankingService(
	campaignRepository repository.CampaignRepository,
	creatorRepository repository.CreatorRepository,
	invitationRepository repository.InvitationRepository,
	presenter *presenting.Presenter,
	defaultLimit int,
) RankingService {
	return &CreatorRankingService{
		campaignRepository:   campaignRepository,
		creatorRepository:    creatorRepository,
		invitationRepository: invitationRepository,
		presenter:            presenter,
		defaultLimit:         defaultLimit,
	}
}

func (s *CreatorRankingService) GetTopCreators(ctx context.Context, campaignID string, limit int) ([]*domain.CreatorResponse, error) {
	if campaignID == "" {
		return nil, NewRankingError(ErrCampaignIDRequired, apiErrors.ErrMissingRequiredData, "Informe excludeCampaignId")
	}

	if limit < 0 {
		return nil, NewRankingError(ErrInvalidLimit, apiErrors.ErrInvalidFormat, "O limite deve ser positivo")
	}

	if limit == 0 {
		limit = s.defaultLimit
	}

	exists, err := s.campaignRepository.CampaignExists(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao verificar campanha para o ranking de criadores")
		return nil, NewRankingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar campanha")
	}

	if !exists {
		return nil, NewRankingError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "Campanha não encontrada")
	}

	invited, err := s.invitationRepository.ListInvitedCreatorIDs(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar criadores já convidados")
		return nil, NewRankingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar convites")
	}

	creators, err := s.creatorRepository.ListCreators(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar criadores para o ranking")
		return nil, NewRankingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar criadores")
	}

	top := TopCreators(creators, invited, limit)

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"limit":       limit,
		"excluded":    len(invited),
		"returned":    len(top),
	}).Debug("Ranking de criadores calculado")

	return s.presenter.Creators(top), nil
}
