package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/creator-campaign-api/internal/domain"
	"github.com/vfg2006/creator-campaign-api/internal/usecases/invitation"
	"github.com/vfg2006/creator-campaign-api/pkg/apiErrors"
)

func writeInvitationError(w http.ResponseWriter, err error, fallback string) {
	var invitationErr *invitation.InvitationError
	if errors.As(err, &invitationErr) {
		var details map[string]interface{}
		if invitationErr.CampaignID != "" {
			details = map[string]interface{}{
				"campaign_id": invitationErr.CampaignID,
				"creator_id":  invitationErr.CreatorID,
			}
		}

		apiErrors.WriteError(w, invitationErr.Code, invitationErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func InviteCreator(service invitation.InvitationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.InvitationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		result, err := service.InviteCreator(r.Context(), &request)
		if err != nil {
			writeInvitationError(w, err, "Erro ao convidar criador")
			return
		}

		writeJSON(w, r, http.StatusCreated, result)
	})
}

func RemoveInvitedCreator(service invitation.InvitationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.InvitationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		if err := service.RemoveCreator(r.Context(), &request); err != nil {
			writeInvitationError(w, err, "Erro ao remover convite")
			return
		}

		writeJSON(w, r, http.StatusOK, domain.MessageResponse{Message: "Convite removido com sucesso"})
	})
}
