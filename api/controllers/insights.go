package controllers

import (
	"net/http"

	"github.com/rdmartins/drilltrack-backend/api/responses"
	"github.com/rdmartins/drilltrack-backend/internal/insights"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

type insightView struct {
	Analysis string `json:"analysis"`
}

// GenerateInsight runs the predictive analysis over the current inventory
// snapshot. The insight service degrades to a fixed message on upstream
// failure, so this handler always answers 200.
func GenerateInsight(invSvc inventory.Service, insightSvc insights.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if invSvc == nil || insightSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "insight service unavailable"))
			return
		}

		state := invSvc.Snapshot(r.Context())
		text := insightSvc.Analyze(r.Context(), state)

		responses.WriteSuccess(w, insightView{Analysis: text})
	}
}
