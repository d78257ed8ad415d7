package web

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/medfleet/internal/ports/primary"
)

// handleExport streams one entity's CSV. Filters mirror the entity's list
// page query parameters; an empty result set redirects back with a notice
// instead of downloading an empty file.
func (s *Server) handleExport(entity, listPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := primary.ExportRequest{
			Entity:     entity,
			Month:      q.Get("month"),
			Date:       q.Get("date"),
			Employee:   q.Get("employee"),
			Supervisor: q.Get("supervisor"),
		}

		res, err := s.svc.Exports.Export(r.Context(), req)
		if err != nil {
			s.log.Error("export failed", zap.String("entity", entity), zap.Error(err))
			setFlash(w, flashError, "Export failed.")
			http.Redirect(w, r, listPath, http.StatusSeeOther)
			return
		}
		if len(res.Rows) == 0 {
			setFlash(w, flashWarning, "Nothing to export.")
			http.Redirect(w, r, listPath, http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))

		cw := csv.NewWriter(w)
		if err := cw.Write(res.Headers); err != nil {
			s.log.Error("failed to write export", zap.String("entity", entity), zap.Error(err))
			return
		}
		if err := cw.WriteAll(res.Rows); err != nil {
			s.log.Error("failed to write export", zap.String("entity", entity), zap.Error(err))
			return
		}
		cw.Flush()
	}
}
