package controllers

import (
	"net/http"
	"strings"

	"github.com/rdmartins/drilltrack-backend/api/responses"
	"github.com/rdmartins/drilltrack-backend/internal/analytics"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

// itemView decorates a stock item with its alert level for the listing.
type itemView struct {
	inventory.ToolItem
	Alert analytics.AlertLevel `json:"alert"`
}

// ListInventory returns the item list, optionally filtered by tool model
// via the `model` query parameter.
func ListInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		modelFilter := strings.TrimSpace(r.URL.Query().Get("model"))
		items, err := svc.Items(r.Context(), modelFilter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]itemView, 0, len(items))
		for _, item := range items {
			views = append(views, itemView{ToolItem: item, Alert: analytics.AlertLevelFor(item)})
		}

		responses.WriteSuccess(w, views)
	}
}

// ListCriticalInventory returns only the items at or below their reorder
// threshold, preserving seed order.
func ListCriticalInventory(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		state := svc.Snapshot(r.Context())
		critical := analytics.CriticalItems(state)

		views := make([]itemView, 0, len(critical))
		for _, item := range critical {
			views = append(views, itemView{ToolItem: item, Alert: analytics.AlertLevelFor(item)})
		}

		responses.WriteSuccess(w, views)
	}
}
