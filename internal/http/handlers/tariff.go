package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"delivery-fee-service/internal/domain"
	"delivery-fee-service/internal/logx"
)

// TariffHandler serves the admin endpoints of the tariff tables and settings.
type TariffHandler struct {
	usecase tariffUsecase
	logger  logx.Logger
}

// NewTariffHandler creates a new TariffHandler.
func NewTariffHandler(logger logx.Logger, uc tariffUsecase) *TariffHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &TariffHandler{usecase: uc, logger: logger}
}

func (h *TariffHandler) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func windowKind(r *http.Request) domain.WindowKind {
	return domain.WindowKind(chi.URLParam(r, "kind"))
}

func created(w http.ResponseWriter, path string, id int64) {
	w.Header().Set("Location", path+"/"+strconv.FormatInt(id, 10))
}

// ListDistance handles GET /admin/tariffs/distance.
func (h *TariffHandler) ListDistance(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListDistanceTiers(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, mapSlice(list, distanceTierToDTO))
}

// CreateDistance handles POST /admin/tariffs/distance.
func (h *TariffHandler) CreateDistance(w http.ResponseWriter, r *http.Request) {
	var req distanceTierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	t, err := h.usecase.CreateDistanceTier(r.Context(), req.toModel(0))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	created(w, r.URL.Path, t.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, distanceTierToDTO(t))
}

// UpdateDistance handles PUT /admin/tariffs/distance/{id}.
func (h *TariffHandler) UpdateDistance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var req distanceTierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	t, err := h.usecase.UpdateDistanceTier(r.Context(), req.toModel(id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, distanceTierToDTO(t))
}

// DeleteDistance handles DELETE /admin/tariffs/distance/{id}.
func (h *TariffHandler) DeleteDistance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.usecase.DeleteDistanceTier(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWeight handles GET /admin/tariffs/weight.
func (h *TariffHandler) ListWeight(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListWeightTiers(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, mapSlice(list, weightTierToDTO))
}

// CreateWeight handles POST /admin/tariffs/weight.
func (h *TariffHandler) CreateWeight(w http.ResponseWriter, r *http.Request) {
	var req weightTierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	t, err := h.usecase.CreateWeightTier(r.Context(), req.toModel(0))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	created(w, r.URL.Path, t.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, weightTierToDTO(t))
}

// UpdateWeight handles PUT /admin/tariffs/weight/{id}.
func (h *TariffHandler) UpdateWeight(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var req weightTierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	t, err := h.usecase.UpdateWeightTier(r.Context(), req.toModel(id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, weightTierToDTO(t))
}

// DeleteWeight handles DELETE /admin/tariffs/weight/{id}.
func (h *TariffHandler) DeleteWeight(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.usecase.DeleteWeightTier(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWindows handles GET /admin/tariffs/windows/{kind}.
func (h *TariffHandler) ListWindows(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.ListWindows(r.Context(), windowKind(r))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, mapSlice(list, windowToDTO))
}

// CreateWindow handles POST /admin/tariffs/windows/{kind}.
func (h *TariffHandler) CreateWindow(w http.ResponseWriter, r *http.Request) {
	var req windowRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	tw, err := h.usecase.CreateWindow(r.Context(), req.toModel(windowKind(r), 0))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	created(w, r.URL.Path, tw.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, windowToDTO(tw))
}

// UpdateWindow handles PUT /admin/tariffs/windows/{kind}/{id}.
func (h *TariffHandler) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	var req windowRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	tw, err := h.usecase.UpdateWindow(r.Context(), req.toModel(windowKind(r), id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, windowToDTO(tw))
}

// DeleteWindow handles DELETE /admin/tariffs/windows/{kind}/{id}.
func (h *TariffHandler) DeleteWindow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	if err := h.usecase.DeleteWindow(r.Context(), windowKind(r), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings handles GET /admin/tariffs/settings.
func (h *TariffHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.usecase.Settings(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, settingsToDTO(s))
}

// UpdateSettings handles PUT /admin/tariffs/settings.
func (h *TariffHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	s, err := h.usecase.UpdateSettings(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, settingsToDTO(s))
}
