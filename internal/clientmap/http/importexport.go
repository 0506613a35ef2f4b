package http

import (
	"fmt"
	"net/http"

	"clientmap/internal/clientmap/metrics"
	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/httpx"
)

const maxImportBytes = 10 << 20 // 10 MiB CSV uploads

// ImportExportHandler serves the CSV bulk endpoints.
type ImportExportHandler struct {
	Service *service.Service
	Metrics *metrics.Metrics
}

// Import godoc
//
//	@Summary		Bulk-import client records from CSV
//	@Description	Accepts a multipart upload under the "file" field. Rows without a name are skipped.
//	@Tags			clients
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"CSV document"
//	@Success		200		{object}	crmsdk.ImportReport
//	@Failure		400		{object}	crmsdk.APIError
//	@Router			/v1/clients/import [post]
func (h *ImportExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, "expected a multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, `missing "file" field`)
		return
	}
	defer file.Close()

	report, err := h.Service.ImportRecords(r.Context(), httpx.UserID(r.Context()), file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordsImported.Add(float64(report.Imported))
	h.Metrics.RecordsCreated.Add(float64(report.Imported))
	httpx.WriteJSON(w, http.StatusOK, crmsdk.ImportReport{
		Imported: report.Imported,
		Skipped:  report.Skipped,
	})
}

// Export godoc
//
//	@Summary		Export all client records as CSV
//	@Description	Streams a date-stamped CSV attachment in list order.
//	@Tags			clients
//	@Produce		text/csv
//	@Security		BearerAuth
//	@Success		200	{string}	string	"CSV document"
//	@Router			/v1/clients/export [get]
func (h *ImportExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := httpx.UserID(ctx)

	stats, err := h.Service.RecordStats(ctx, ownerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", h.Service.ExportFilename()))

	if err := h.Service.ExportRecords(ctx, ownerID, w); err != nil {
		// Headers are already gone; nothing to do but log.
		writeServiceError(w, r, err)
		return
	}
	h.Metrics.RecordsExported.Add(float64(stats.Total))
}
