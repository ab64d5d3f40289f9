package handler

import (
	"net/http"

	"github.com/vfg2006/creator-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/campaign"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/creator"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/invitation"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/ranking"
	"github.com/vfg2006/creator-campaign-api/pkg/middleware"
)

// jsonBody limita o tamanho do corpo nas rotas que decodificam JSON
var jsonBody = []func(http.Handler) http.Handler{middleware.LimitBody(middleware.DefaultMaxBodyBytes)}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service campaign.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
	}
}

func Creators(service creator.CreatorService, rankingService ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/creators",
			Method:  http.MethodGet,
			Handler: ListCreators(service),
		},
		{
			Path:        "/v1/creators",
			Method:      http.MethodPost,
			Handler:     CreateCreator(service),
			Middlewares: jsonBody,
		},
		{
			Path:    "/v1/creators/top",
			Method:  http.MethodGet,
			Handler: GetTopCreators(rankingService),
		},
	}
}

func InvitedCreators(service invitation.InvitationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invited-creators",
			Method:      http.MethodPost,
			Handler:     InviteCreator(service),
			Middlewares: jsonBody,
		},
		{
			Path:        "/v1/invited-creators",
			Method:      http.MethodDelete,
			Handler:     RemoveInvitedCreator(service),
			Middlewares: jsonBody,
		},
	}
}
