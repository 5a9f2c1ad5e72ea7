package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rdmartins/drilltrack-backend/api/responses"
	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/internal/reports"
	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
	"github.com/rdmartins/drilltrack-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadWithdrawalsReport streams the stock and withdrawal log as an XLSX
// workbook.
func DownloadWithdrawalsReport(svc inventory.Service, logg *logger.Logger, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		state := svc.Snapshot(r.Context())
		buf, err := reports.WithdrawalsWorkbook(state)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building withdrawals report"))
			return
		}

		filename := fmt.Sprintf("retiradas-%s.xlsx", now().Format("2006-01-02"))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
