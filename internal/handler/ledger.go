package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PedroABernis/InventoryManager/internal/apierror"
	"github.com/PedroABernis/InventoryManager/internal/service"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func productIDQuery(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("product_id query parameter required"))
		return uuid.Nil, false
	}
	return id, true
}

// Transactions returns a product's raw ledger, newest first.
func (h *LedgerHandler) Transactions(c *gin.Context) {
	id, ok := productIDQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.TransactionsFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History returns a product's stock movement history with before/after
// levels reconstructed from the ledger.
func (h *LedgerHandler) History(c *gin.Context) {
	id, ok := productIDQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
