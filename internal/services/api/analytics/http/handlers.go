// Package http provides http transport for analytics
package http

import (
	stdhttp "net/http"

	"staymeter/internal/modkit/httpkit"
	"staymeter/internal/services/api/analytics/domain"
	svc "staymeter/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// cross-run stay aggregates by technician
	httpkit.PostJSON[domain.TechniciansInput](r, "/technicians", h.technicians)

	// cross-run stay aggregates by terminal model
	httpkit.PostJSON[domain.ModelsInput](r, "/models", h.models)

	// stored anomalies in window
	httpkit.PostJSON[domain.AnomaliesInput](r, "/anomalies", h.anomalies)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analytics/technicians Analytics analyticsTechnicians
// @Summary Stay aggregates by technician
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.TechniciansInput true "Query"
// @Success 200 {array} domain.AggRow "ok"
// @Router /analytics/technicians [post]
func (h *handlers) technicians(r *stdhttp.Request, in domain.TechniciansInput) (any, error) {
	return h.svc.Technicians(r.Context(), in)
}

// swagger:route POST /analytics/models Analytics analyticsModels
// @Summary Stay aggregates by terminal model
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.ModelsInput true "Query"
// @Success 200 {array} domain.AggRow "ok"
// @Router /analytics/models [post]
func (h *handlers) models(r *stdhttp.Request, in domain.ModelsInput) (any, error) {
	return h.svc.Models(r.Context(), in)
}

// swagger:route POST /analytics/anomalies Analytics analyticsAnomalies
// @Summary Stored anomalies across runs
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body domain.AnomaliesInput true "Query"
// @Success 200 {array} domain.AnomalyRow "ok"
// @Router /analytics/anomalies [post]
func (h *handlers) anomalies(r *stdhttp.Request, in domain.AnomaliesInput) (any, error) {
	return h.svc.Anomalies(r.Context(), in)
}
