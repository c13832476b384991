package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/service"
)

type StockEntriesHandler struct{ svc service.StockEntryService }

func NewStockEntriesHandler(svc service.StockEntryService) *StockEntriesHandler {
	return &StockEntriesHandler{svc: svc}
}

// Register godoc
// @Summary Register a batch of incoming stock
// @Tags stock-entries
// @Accept json
// @Produce json
// @Param body body dto.StockEntryRequest true "Entry batch"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/stock-entries [post]
func (h *StockEntriesHandler) Register(c *gin.Context) {
	var req dto.StockEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
