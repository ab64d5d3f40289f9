package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/creator"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/ranking"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
)

func writeCreatorError(w http.ResponseWriter, err error, fallback string) {
	var creatorErr *creator.CreatorError
	if errors.As(err, &creatorErr) {
		apiErrors.WriteError(w, creatorErr.Code, creatorErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func ListCreators(service creator.CreatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creators, err := service.ListCreators(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar criadores")
			writeCreatorError(w, err, "Erro ao listar criadores")
			return
		}

		writeJSON(w, r, http.StatusOK, creators)
	})
}

func CreateCreator(service creator.CreatorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCreatorRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.CreateCreator(r.Context(), &request)
		if err != nil {
			writeCreatorError(w, err, "Erro ao cadastrar criador")
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	})
}

// GetTopCreators retorna os criadores com mais seguidores que ainda não foram convidados para a campanha
func GetTopCreators(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		campaignID := query.Get("excludeCampaignId")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O parâmetro excludeCampaignId é obrigatório", nil)
			return
		}

		limit := 0
		if rawLimit := query.Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		creators, err := service.GetTopCreators(r.Context(), campaignID, limit)
		if err != nil {
			var rankingErr *ranking.RankingError
			if errors.As(err, &rankingErr) {
				apiErrors.WriteError(w, rankingErr.Code, rankingErr.Error(), map[string]interface{}{
					"campaign_id": campaignID,
				})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking de criadores")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar ranking de criadores", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, creators)
	})
}
