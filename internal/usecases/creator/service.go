package creator

import (
	"context"

	"github.com/vfg2006/creator-campaign-api/infrastructure/repository"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/presenting"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
	"github.com/vfg2006/creator-campaign-api/pkg/utils"
)

type CreatorService interface {
	ListCreators(ctx context.Context) ([]*domain.CreatorResponse, error)
	CreateCreator(ctx context.Context, request *domain.CreateCreatorRequest) (*domain.CreatorResponse, error)
}

type Service struct {
	creatorRepository repository.CreatorRepository
	presenter         *presenting.Presenter
	generateID        func() (string, error)
}

func NewService(creatorRepository repository.CreatorRepository, presenter *presenting.Presenter) CreatorService {
	return &Service{
		creatorRepository: creatorRepository,
		presenter:         presenter,
		generateID:        utils.GenerateUUID,
	}
}

func (s *Service) ListCreators(ctx context.Context) ([]*domain.CreatorResponse, error) {
	creators, err := s.creatorRepository.ListCreators(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar criadores no repositório")
		return nil, NewCreatorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar criadores")
	}

	return s.presenter.Creators(creators), nil
}

func (s *Service) CreateCreator(ctx context.Context, request *domain.CreateCreatorRequest) (*domain.CreatorResponse, error) {
	if request == nil || utils.IsBlank(request.Name) || utils.IsBlank(request.City) ||
		utils.IsBlank(request.Country) || request.Followers == nil {
		return nil, NewCreatorError(ErrMissingFields, apiErrors.ErrMissingRequiredData, "Nome, cidade, país e seguidores são obrigatórios")
	}

	if *request.Followers < 0 {
		return nil, NewCreatorError(ErrInvalidFollowers, apiErrors.ErrInvalidFormat, "O número de seguidores não pode ser negativo")
	}

	id, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar ID do criador")
		return nil, NewCreatorError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do criador")
	}

	platforms := request.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	creator := &domain.Creator{
		ID:        id,
		Name:      request.Name,
		City:      request.City,
		Country:   request.Country,
		Followers: *request.Followers,
		Platforms: platforms,
		ImageKey:  utils.NilIfBlank(request.ImageKey),
	}

	if err := s.creatorRepository.CreateCreator(ctx, creator); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar criador no repositório")
		return nil, NewCreatorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar criador")
	}

	log.ForContext(ctx).WithField("creator_id", creator.ID).Info("Criador cadastrado")

	return s.presenter.Creator(creator), nil
}
