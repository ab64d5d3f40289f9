package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/campaign"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/creator-campaign-api/pkg/log"
)

func writeCampaignError(w http.ResponseWriter, err error, fallback string) {
	var campaignErr *campaign.CampaignError
	if errors.As(err, &campaignErr) {
		var details map[string]interface{}
		if campaignErr.CampaignID != "" {
			details = map[string]interface{}{"campaign_id": campaignErr.CampaignID}
		}

		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func ListCampaigns(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListCampaigns(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar campanhas")
			writeCampaignError(w, err, "Erro ao listar campanhas")
			return
		}

		writeJSON(w, r, http.StatusOK, campaigns)
	})
}

func GetCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetCampaign(r.Context(), id)
		if err != nil {
			writeCampaignError(w, err, "Erro ao buscar campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.CampaignDetailResponse{Campaign: result})
	})
}

func CreateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, err, "Erro ao criar campanha")
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	})
}

func UpdateCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var request domain.UpdateCampaignRequest
		if !decodeBody(w, r, &request) {
			return
		}

		// O ID da URL prevalece sobre o corpo
		request.ID = id

		result, err := service.UpdateCampaign(r.Context(), &request)
		if err != nil {
			writeCampaignError(w, err, "Erro ao atualizar campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func DeleteCampaign(service campaign.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(r.Context(), id); err != nil {
			writeCampaignError(w, err, "Erro ao remover campanha")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.MessageResponse{Message: "Campanha removida com sucesso"})
	})
}
