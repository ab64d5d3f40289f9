package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/campaign"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/creator"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/invitation"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/ranking"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/middleware"
)

type fakeCampaignService struct {
	campaigns map[string]*domain.CampaignResponse
	created   *domain.CreateCampaignRequest
	updated   *domain.UpdateCampaignRequest
}

func (f *fakeCampaignService) ListCampaigns(context.Context) ([]*domain.CampaignResponse, error) {
	result := make([]*domain.CampaignResponse, 0, len(f.campaigns))
	for _, c := range f.campaigns {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCampaignService) GetCampaign(_ context.Context, id string) (*domain.CampaignResponse, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, id, "Campanha não encontrada")
	}
	return c, nil
}

func (f *fakeCampaignService) CreateCampaign(_ context.Context, request *domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	f.created = request
	return &domain.CampaignResponse{ID: "z-new", Name: request.Name}, nil
}

func (f *fakeCampaignService) UpdateCampaign(_ context.Context, request *domain.UpdateCampaignRequest) (*domain.CampaignResponse, error) {
	f.updated = request
	if _, ok := f.campaigns[request.ID]; !ok {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, request.ID, "Campanha não encontrada")
	}
	return &domain.CampaignResponse{ID: request.ID, Name: *request.Name}, nil
}

func (f *fakeCampaignService) DeleteCampaign(_ context.Context, id string) error {
	if _, ok := f.campaigns[id]; !ok {
		return campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, id, "Campanha não encontrada")
	}
	delete(f.campaigns, id)
	return nil
}

type fakeCreatorService struct{}

func (fakeCreatorService) ListCreators(context.Context) ([]*domain.CreatorResponse, error) {
	return []*domain.CreatorResponse{{ID: "c1", Followers: "1.5K"}}, nil
}

func (fakeCreatorService) CreateCreator(_ context.Context, request *domain.CreateCreatorRequest) (*domain.CreatorResponse, error) {
	if request.Followers == nil {
		return nil, creator.NewCreatorError(creator.ErrMissingFields, apiErrors.ErrMissingRequiredData, "seguidores")
	}
	return &domain.CreatorResponse{ID: "c-new", Name: request.Name, Followers: "999"}, nil
}

type fakeRankingService struct {
	campaignID string
	limit      int
}

func (f *fakeRankingService) GetTopCreators(_ context.Context, campaignID string, limit int) ([]*domain.CreatorResponse, error) {
	f.campaignID = campaignID
	f.limit = limit
	if campaignID == "z404" {
		return nil, ranking.NewRankingError(ranking.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "Campanha não encontrada")
	}
	return []*domain.CreatorResponse{{ID: "c9", Followers: "2.0M"}}, nil
}

type fakeInvitationService struct {
	invited map[string]bool
}

func (f *fakeInvitationService) InviteCreator(_ context.Context, request *domain.InvitationRequest) (*domain.Invitation, error) {
	key := request.CampaignID + "/" + request.CreatorID
	if f.invited[key] {
		return nil, invitation.NewInvitationError(invitation.ErrAlreadyInvited, apiErrors.ErrDuplicateResource, request.CampaignID, request.CreatorID, "duplicado")
	}
	f.invited[key] = true
	return &domain.Invitation{ID: "inv1", CampaignID: request.CampaignID, CreatorID: request.CreatorID}, nil
}

func (f *fakeInvitationService) RemoveCreator(_ context.Context, request *domain.InvitationRequest) error {
	key := request.CampaignID + "/" + request.CreatorID
	if !f.invited[key] {
		return invitation.NewInvitationError(invitation.ErrInvitationNotFound, apiErrors.ErrResourceNotFound, request.CampaignID, request.CreatorID, "")
	}
	delete(f.invited, key)
	return nil
}

type testServer struct {
	handler     http.Handler
	campaigns   *fakeCampaignService
	ranking     *fakeRankingService
	invitations *fakeInvitationService
}

func newTestServer() *testServer {
	s := &testServer{
		campaigns: &fakeCampaignService{campaigns: map[string]*domain.CampaignResponse{
			"z1": {ID: "z1", Name: "Verão"},
		}},
		ranking:     &fakeRankingService{},
		invitations: &fakeInvitationService{invited: map[string]bool{}},
	}

	s.handler = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Campaigns(s.campaigns)...),
		router.WithRoutes(Creators(fakeCreatorService{}, s.ranking)...),
		router.WithRoutes(InvitedCreators(s.invitations)...),
	)

	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	rec := newTestServer().do(http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "ok "))
}

func TestCampaignHandlers(t *testing.T) {
	t.Run("GET por ID envolve a campanha", func(t *testing.T) {
		rec := newTestServer().do(http.MethodGet, "/v1/campaigns/z1", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.CampaignDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "z1", body.Campaign.ID)
	})

	t.Run("GET de campanha inexistente", func(t *testing.T) {
		rec := newTestServer().do(http.MethodGet, "/v1/campaigns/z404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
	})

	t.Run("POST cria a campanha", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodPost, "/v1/campaigns", `{"name":"Nova","description":"d","budget":10,"launchDate":"2024-01-01"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, s.campaigns.created)
		assert.Equal(t, "Nova", s.campaigns.created.Name)
		assert.Equal(t, 10.0, *s.campaigns.created.Budget)
	})

	t.Run("POST com corpo acima do limite", func(t *testing.T) {
		s := newTestServer()
		body := `{"name":"` + strings.Repeat("a", int(middleware.DefaultMaxBodyBytes)) + `"}`

		rec := s.do(http.MethodPost, "/v1/campaigns", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
		assert.Nil(t, s.campaigns.created)
	})

	t.Run("POST com corpo inválido", func(t *testing.T) {
		rec := newTestServer().do(http.MethodPost, "/v1/campaigns", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("PUT usa o ID da URL", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodPut, "/v1/campaigns/z1", `{"name":"Renomeada"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "z1", s.campaigns.updated.ID)
		assert.Nil(t, s.campaigns.updated.Budget)
	})

	t.Run("DELETE responde com mensagem", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodDelete, "/v1/campaigns/z1", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Message)

		rec = s.do(http.MethodDelete, "/v1/campaigns/z1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreatorHandlers(t *testing.T) {
	t.Run("GET lista criadores", func(t *testing.T) {
		rec := newTestServer().do(http.MethodGet, "/v1/creators", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var body []domain.CreatorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "1.5K", body[0].Followers)
	})

	t.Run("POST sem seguidores", func(t *testing.T) {
		rec := newTestServer().do(http.MethodPost, "/v1/creators", `{"name":"Ana","city":"Recife","country":"Brasil"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("POST cria o criador", func(t *testing.T) {
		rec := newTestServer().do(http.MethodPost, "/v1/creators", `{"name":"Ana","city":"Recife","country":"Brasil","followers":999}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestGetTopCreators(t *testing.T) {
	t.Run("sem excludeCampaignId", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodGet, "/v1/creators/top", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
		assert.Empty(t, s.ranking.campaignID)
	})

	t.Run("repassa campanha e limite", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodGet, "/v1/creators/top?excludeCampaignId=z1&limit=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "z1", s.ranking.campaignID)
		assert.Equal(t, 3, s.ranking.limit)
	})

	t.Run("sem limite usa o padrão do serviço", func(t *testing.T) {
		s := newTestServer()
		rec := s.do(http.MethodGet, "/v1/creators/top?excludeCampaignId=z1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, s.ranking.limit)
	})

	t.Run("limite inválido", func(t *testing.T) {
		rec := newTestServer().do(http.MethodGet, "/v1/creators/top?excludeCampaignId=z1&limit=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		rec := newTestServer().do(http.MethodGet, "/v1/creators/top?excludeCampaignId=z404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInvitedCreatorHandlers(t *testing.T) {
	s := newTestServer()
	body := `{"campaignId":"z1","creatorId":"c1"}`

	rec := s.do(http.MethodPost, "/v1/invited-creators", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Invitation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "z1", created.CampaignID)
	assert.Equal(t, "c1", created.CreatorID)

	rec = s.do(http.MethodPost, "/v1/invited-creators", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrDuplicateResource, decodeError(t, rec).Code)

	rec = s.do(http.MethodDelete, "/v1/invited-creators", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/v1/invited-creators", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
