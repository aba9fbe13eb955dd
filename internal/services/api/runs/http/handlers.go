// Package http provides http transport for runs
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staymeter/internal/modkit/httpkit"
	"staymeter/internal/services/api/runs/domain"
	svc "staymeter/internal/services/api/runs/service"
)

// Register mounts runs endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// execute a run over an inline dataset
	httpkit.PostJSON[domain.ExecuteInput](r, "/", h.execute)

	// recent runs, newest first
	httpkit.Get(r, "/", h.list)

	// stored projection of one run
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /runs Runs runsExecute
// @Summary Execute an analysis run
// @Tags Runs
// @Accept json
// @Produce json
// @Param payload body domain.ExecuteInput true "Dataset, column bindings and options"
// @Success 200 {object} domain.ExecuteResponse "ok"
// @Failure 422 "dataset missing required columns"
// @Router /runs [post]
func (h *handlers) execute(r *stdhttp.Request, in domain.ExecuteInput) (any, error) {
	return h.svc.Execute(r.Context(), in)
}

// swagger:route GET /runs Runs runsList
// @Summary List recent runs
// @Tags Runs
// @Produce json
// @Param limit query int false "max rows, clamped server side" default(50)
// @Success 200 {array} domain.RunSummary "ok"
// @Router /runs [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return h.svc.List(r.Context(), limit)
}

// swagger:route GET /runs/{id} Runs runsGet
// @Summary Stored run detail
// @Tags Runs
// @Produce json
// @Param id path string true "run id"
// @Success 200 {object} domain.RunDetailResponse "ok"
// @Failure 404 "unknown run id"
// @Router /runs/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}
