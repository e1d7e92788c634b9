package handlers

import (
	"net/http"

	"delivery-fee-service/internal/logx"
)

// QuoteHandler serves delivery cost calculations.
type QuoteHandler struct {
	usecase quoteUsecase
	logger  logx.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(logger logx.Logger, uc quoteUsecase) *QuoteHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &QuoteHandler{usecase: uc, logger: logger}
}

// Quote handles POST /delivery/quote.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in, err := req.toModel()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	res, err := h.usecase.Quote(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(res))
}
