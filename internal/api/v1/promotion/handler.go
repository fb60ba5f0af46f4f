package promotion

import (
	"net/http"

	"lottery-backend/internal/storage"
	"lottery-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store storage.Storage
}

func NewHandler(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// ListPromotions godoc
// @Summary List promotions
// @Tags promotions
// @Produce json
// @Success 200 {array} models.Promotion
// @Failure 500 {object} utils.Response
// @Router /promotions [get]
func (h *Handler) ListPromotions(c *gin.Context) {
	promotions, err := h.store.GetPromotions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch promotions")
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// CreatePromotion godoc
// @Summary Create a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param input body CreatePromotionRequest true "Promotion"
// @Success 201 {object} models.Promotion
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /promotions [post]
func (h *Handler) CreatePromotion(c *gin.Context) {
	var req CreatePromotionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	promotion, err := h.store.CreatePromotion(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create promotion")
		return
	}
	c.JSON(http.StatusCreated, promotion)
}
