package ticket

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"lottery-backend/internal/models"
	"lottery-backend/internal/storage"
	"lottery-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Scanner creates a ticket from a scanned barcode.
type Scanner interface {
	Scan(ctx context.Context, barcode string) (*models.LotteryTicket, error)
}

type Handler struct {
	store   storage.Storage
	scanner Scanner
}

func NewHandler(store storage.Storage, scanner Scanner) *Handler {
	return &Handler{store: store, scanner: scanner}
}

// listWith writes the result of a ticket list query.
func (h *Handler) listWith(c *gin.Context, query func(context.Context) ([]models.LotteryTicket, error), failure string) {
	tickets, err := query(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, failure)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// ListTickets godoc
// @Summary List all tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} models.LotteryTicket
// @Failure 500 {object} utils.Response
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	h.listWith(c, h.store.GetLotteryTickets, "Failed to fetch tickets")
}

// WeeklyTickets godoc
// @Summary List the first three tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} models.LotteryTicket
// @Failure 500 {object} utils.Response
// @Router /tickets/weekly [get]
func (h *Handler) WeeklyTickets(c *gin.Context) {
	h.listWith(c, h.store.GetWeeklyTickets, "Failed to fetch weekly tickets")
}

// SavedTickets godoc
// @Summary List saved tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} models.LotteryTicket
// @Failure 500 {object} utils.Response
// @Router /tickets/saved [get]
func (h *Handler) SavedTickets(c *gin.Context) {
	h.listWith(c, h.store.GetSavedTickets, "Failed to fetch saved tickets")
}

// TotalWinnings godoc
// @Summary Sum of potential winnings across all tickets
// @Tags tickets
// @Produce json
// @Success 200 {integer} int
// @Failure 500 {object} utils.Response
// @Router /tickets/winnings [get]
func (h *Handler) TotalWinnings(c *gin.Context) {
	total, err := h.store.GetTotalWinnings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch winnings")
		return
	}
	c.JSON(http.StatusOK, total)
}

// GetTicket godoc
// @Summary Get a ticket by id
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.LotteryTicket
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tickets/{id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	id, ok := parseTicketID(c.Param("id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Ticket not found")
		return
	}

	ticket, err := h.store.GetLotteryTicketByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch ticket")
		return
	}
	if ticket == nil {
		utils.RespondError(c, http.StatusNotFound, "Ticket not found")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// parseTicketID reads the leading decimal digits of raw, so "2abc" is ticket 2.
func parseTicketID(raw string) (uint, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body CreateTicketRequest true "Ticket"
// @Success 201 {object} models.LotteryTicket
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tickets [post]
func (h *Handler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	ticket, err := h.store.CreateLotteryTicket(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create ticket")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// ScanTicket godoc
// @Summary Create a ticket from a scanned barcode
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body ScanTicketRequest true "Barcode"
// @Success 201 {object} models.LotteryTicket
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /tickets/scan [post]
func (h *Handler) ScanTicket(c *gin.Context) {
	var req ScanTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.barcode() == "" {
		utils.RespondError(c, http.StatusBadRequest, "Barcode is required")
		return
	}

	ticket, err := h.scanner.Scan(c.Request.Context(), req.barcode())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to scan ticket")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}
