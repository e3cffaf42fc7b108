package bill

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/billsplit/internal/bill/split"
	"github.com/fkhayef/billsplit/pkg/middleware"
	"github.com/fkhayef/billsplit/pkg/response"
)

var ErrNoBillsInRequest = errors.New("at least one bill is required")

// Handler handles HTTP requests for bill splitting. It keeps no state
// between requests: every request builds its own session.
type Handler struct {
	validator    *split.DealValidator
	splitFactory *split.Factory
	columnWidth  int
	logger       *zap.Logger
}

// NewHandler creates a new bill handler
func NewHandler(validator *split.DealValidator, splitFactory *split.Factory, columnWidth int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		validator:    validator,
		splitFactory: splitFactory,
		columnWidth:  columnWidth,
		logger:       logger,
	}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequireJSON)

	r.Post("/deals/validate", h.ValidateDeal)
	r.Post("/reports", h.CreateReport)
	r.Post("/receipts", h.CreateReceipt)

	return r
}

// ValidateDeal handles POST /deals/validate
// @Summary      Validate a deal
// @Description  Check a deal against the roommate count and auto-fill the last ratio when one is missing
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        request body ValidateDealRequest true "Roommate count and deal"
// @Success      200 {object} response.APIResponse{data=AllocationResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /deals/validate [post]
func (h *Handler) ValidateDeal(w http.ResponseWriter, r *http.Request) {
	var req ValidateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	allocation, err := h.validator.Validate(req.Roommates, req.Deal)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, &AllocationResponse{
		Roommates:  req.Roommates,
		Allocation: allocation,
	})
}

// CreateReport handles POST /reports
// @Summary      Split bills
// @Description  Split every bill equally and by deal, then report the combined summary
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest true "Deal and bills"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /reports [post]
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	service, session, ok := h.decodeSession(w, r)
	if !ok {
		return
	}

	resp := &SessionResponse{
		SessionID:  session.ID.String(),
		Roommates:  service.Roommates(),
		Allocation: service.Allocation(),
		Bills:      make([]*ReportResponse, 0, session.Len()),
	}
	for _, entry := range session.Bills() {
		report, err := service.ReportEntry(entry, false)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		resp.Bills = append(resp.Bills, report.ToResponse())
	}

	summary, err := service.Summary(session, false)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	resp.Summary = summary.ToResponse()

	response.JSON(w, http.StatusOK, resp)
}

// CreateReceipt handles POST /receipts
// @Summary      Render a receipt
// @Description  Render the plain text receipt with one table per bill and the combined summary
// @Tags         receipts
// @Accept       json
// @Produce      plain
// @Param        request body SplitRequest true "Deal and bills"
// @Success      200 {string} string
// @Failure      400 {object} response.APIResponse
// @Router       /receipts [post]
func (h *Handler) CreateReceipt(w http.ResponseWriter, r *http.Request) {
	service, session, ok := h.decodeSession(w, r)
	if !ok {
		return
	}

	receipt, err := service.Receipt(session)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.Text(w, http.StatusOK, receipt)
}

// decodeSession validates the request deal and records its bills.
// It writes the error response itself and reports whether to continue.
func (h *Handler) decodeSession(w http.ResponseWriter, r *http.Request) (*Service, *Session, bool) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, nil, false
	}

	if len(req.Bills) == 0 {
		response.BadRequest(w, ErrNoBillsInRequest.Error())
		return nil, nil, false
	}

	allocation, err := h.validator.Validate(req.Roommates, req.Deal)
	if err != nil {
		h.logger.Debug("rejected deal", zap.Int("roommates", req.Roommates), zap.Error(err))
		response.BadRequest(w, err.Error())
		return nil, nil, false
	}

	service, err := NewService(nil, h.splitFactory, allocation, Options{
		ColumnWidth: h.columnWidth,
		Logger:      h.logger,
	})
	if err != nil {
		response.InternalError(w, "Failed to prepare split")
		return nil, nil, false
	}

	session := NewSession()
	for _, b := range req.Bills {
		if b == nil {
			response.BadRequest(w, "Bill must not be null")
			return nil, nil, false
		}
		session.Add(b.ToEntry())
	}

	return service, session, true
}
