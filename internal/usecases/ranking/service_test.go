package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/presenting"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type rankingMocks struct {
	campaigns   *mocks.MockCampaignRepository
	creators    *mocks.MockCreatorRepository
	invitations *mocks.MockInvitationRepository
}

func newRankingService(t *testing.T, defaultLimit int) (RankingService, rankingMocks) {
	ctrl := gomock.NewController(t)

	m := rankingMocks{
		campaigns:   mocks.NewMockCampaignRepository(ctrl),
		creators:    mocks.NewMockCreatorRepository(ctrl),
		invitations: mocks.NewMockInvitationRepository(ctrl),
	}

	service := NewCreatorRankingService(
		m.campaigns,
		m.creators,
		m.invitations,
		presenting.NewPresenter("https://cdn.test/"),
		defaultLimit,
	)

	return service, m
}

func TestCreatorRankingService_GetTopCreators(t *testing.T) {
	ctx := context.Background()

	t.Run("usa o limite padrão e formata os criadores", func(t *testing.T) {
		service, m := newRankingService(t, 2)

		m.campaigns.EXPECT().CampaignExists(ctx, "z1").Return(true, nil)
		m.invitations.EXPECT().ListInvitedCreatorIDs(ctx, "z1").Return(map[string]struct{}{"c2": {}}, nil)
		m.creators.EXPECT().ListCreators(ctx).Return([]*domain.Creator{
			{ID: "c1", Followers: 500},
			{ID: "c2", Followers: 900},
			{ID: "c3", Followers: 100},
			{ID: "c4", Followers: 50},
		}, nil)

		result, err := service.GetTopCreators(ctx, "z1", 0)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "c1", result[0].ID)
		assert.Equal(t, "500", result[0].Followers)
		assert.Equal(t, "c3", result[1].ID)
	})

	t.Run("limite da requisição sobrescreve o padrão", func(t *testing.T) {
		service, m := newRankingService(t, 10)

		m.campaigns.EXPECT().CampaignExists(ctx, "z1").Return(true, nil)
		m.invitations.EXPECT().ListInvitedCreatorIDs(ctx, "z1").Return(map[string]struct{}{}, nil)
		m.creators.EXPECT().ListCreators(ctx).Return([]*domain.Creator{
			{ID: "c1", Followers: 1500},
			{ID: "c2", Followers: 2_000_000},
		}, nil)

		result, err := service.GetTopCreators(ctx, "z1", 1)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "c2", result[0].ID)
		assert.Equal(t, "2.0M", result[0].Followers)
	})

	t.Run("campanha obrigatória", func(t *testing.T) {
		service, _ := newRankingService(t, 10)

		_, err := service.GetTopCreators(ctx, "", 0)

		assert.ErrorIs(t, err, ErrCampaignIDRequired)
		var rankingErr *RankingError
		require.ErrorAs(t, err, &rankingErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, rankingErr.Code)
	})

	t.Run("limite negativo é rejeitado", func(t *testing.T) {
		service, _ := newRankingService(t, 10)

		_, err := service.GetTopCreators(ctx, "z1", -1)

		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		service, m := newRankingService(t, 10)

		m.campaigns.EXPECT().CampaignExists(ctx, "z404").Return(false, nil)

		_, err := service.GetTopCreators(ctx, "z404", 0)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("falha no banco ao listar criadores", func(t *testing.T) {
		service, m := newRankingService(t, 10)

		m.campaigns.EXPECT().CampaignExists(ctx, "z1").Return(true, nil)
		m.invitations.EXPECT().ListInvitedCreatorIDs(ctx, "z1").Return(map[string]struct{}{}, nil)
		m.creators.EXPECT().ListCreators(ctx).Return(nil, errors.New("connection refused"))

		_, err := service.GetTopCreators(ctx, "z1", 0)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
