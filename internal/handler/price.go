package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/PedroABernis/InventoryManager/internal/apierror"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/repository"
)

const priceCacheTTL = 4 * time.Hour

// PriceHandler serves the public price check endpoint.
// No authentication required — no side effects whatsoever.
type PriceHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client // nil disables caching
}

func NewPriceHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceHandler {
	return &PriceHandler{repo: repo, rdb: rdb}
}

// GetPrice godoc
// @Summary Price lookup by product id (no authentication)
// @Tags price
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id}/price [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "price:" + id.String()

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PriceCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — query the store
	product, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	resp := dto.PriceCheckResponse{
		Name:           product.Name,
		Price:          product.Price,
		StockAvailable: product.Stock,
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
