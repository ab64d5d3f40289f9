package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/creator-campaign-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if _, err := w.Write([]byte("ok " + time.Now().UTC().Format(time.RFC3339))); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}
