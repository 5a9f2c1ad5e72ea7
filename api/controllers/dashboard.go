package controllers

import (
	"net/http"
	"time"

	"github.com/rdmartins/drilltrack-backend/api/responses"
	"github.com/rdmartins/drilltrack-backend/internal/analytics"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

// Dashboard returns the headline numbers and chart series for the main view.
func Dashboard(svc inventory.Service, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		state := svc.Snapshot(r.Context())
		responses.WriteSuccess(w, analytics.BuildSummary(state, now()))
	}
}
