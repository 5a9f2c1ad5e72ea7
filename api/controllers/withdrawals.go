package controllers

import (
	"net/http"

	"github.com/rdmartins/drilltrack-backend/api/responses"
	"github.com/rdmartins/drilltrack-backend/api/validators"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

type createWithdrawalRequest struct {
	ToolID     string `json:"tool_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	Reason     string `json:"reason" validate:"required"`
	Supervisor string `json:"supervisor" validate:"required"`
}

// CreateWithdrawal registers a stock withdrawal against the inventory.
func CreateWithdrawal(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createWithdrawalRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.ApplyWithdrawal(r.Context(), inventory.WithdrawalRequest{
			ToolID:     payload.ToolID,
			Quantity:   payload.Quantity,
			Reason:     payload.Reason,
			Supervisor: payload.Supervisor,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// ListWithdrawals returns the withdrawal log, newest first. The optional
// `limit` query parameter caps the page size.
func ListWithdrawals(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Withdrawals(r.Context(), limit))
	}
}
