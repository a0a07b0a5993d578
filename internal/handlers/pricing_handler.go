package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

// ======================================================
// HANDLER
// ======================================================

type PricingHandler struct {
	db *gorm.DB

	setPriceUC   *ucpricing.SetPrice
	bulkAdjustUC *ucpricing.BulkAdjustPrices
	reportUC     *ucpricing.ComputeReport
	costUC       *ucpricing.GetServiceCost
}

func NewPricingHandler(
	db *gorm.DB,
	setPriceUC *ucpricing.SetPrice,
	bulkAdjustUC *ucpricing.BulkAdjustPrices,
	reportUC *ucpricing.ComputeReport,
	costUC *ucpricing.GetServiceCost,
) *PricingHandler {
	return &PricingHandler{
		db:           db,
		setPriceUC:   setPriceUC,
		bulkAdjustUC: bulkAdjustUC,
		reportUC:     reportUC,
		costUC:       costUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetPriceRequest struct {
	Size string `json:"size" binding:"required"`

	// Valor em texto localizado ("1.234,56"); entrada inválida é
	// rejeitada, nunca gravada como zero
	Price string `json:"price" binding:"required"`
}

type BulkAdjustRequest struct {
	Target     string `json:"target" binding:"required"`     // porte ou "all"
	Percentage string `json:"percentage" binding:"required"` // ex.: "-7,5"
}

// ======================================================
// PRICE MATRIX
// ======================================================

func (h *PricingHandler) GetMatrix(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var prices []models.ServicePrice
	if err := h.db.
		Where("shop_id = ?", shopID).
		Order("service_id ASC, size ASC").
		Find(&prices).Error; err != nil {

		httperr.Internal(c, "failed_to_list_prices", "Erro ao listar a matriz de preços.")
		return
	}

	c.JSON(http.StatusOK, prices)
}

func (h *PricingHandler) SetPrice(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var req SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entry, err := h.setPriceUC.Execute(
		c.Request.Context(),
		ucpricing.SetPriceInput{
			ShopID:    shopID,
			UserID:    userID,
			ServiceID: uint(serviceID),
			Size:      req.Size,
			Price:     req.Price,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_size"):
			httperr.BadRequest(c, "invalid_size", "Porte inválido.")
		case httperr.IsBusiness(err, "invalid_price"):
			httperr.BadRequest(c, "invalid_price", "Valor de preço inválido.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		default:
			httperr.Internal(c, "failed_to_save_price", "Erro ao salvar o preço.")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *PricingHandler) BulkAdjust(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BulkAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	changed, err := h.bulkAdjustUC.Execute(
		c.Request.Context(),
		ucpricing.BulkAdjustInput{
			ShopID:     shopID,
			UserID:     userID,
			Target:     req.Target,
			Percentage: req.Percentage,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_size"):
			httperr.BadRequest(c, "invalid_size", "Porte inválido.")
		case httperr.IsBusiness(err, "invalid_percentage"):
			httperr.BadRequest(c, "invalid_percentage", "Percentual inválido.")
		default:
			httperr.Internal(c, "failed_to_adjust_prices", "Erro ao reajustar preços.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changed": len(changed),
		"prices":  changed,
	})
}

// ======================================================
// PROFITABILITY
// ======================================================

func (h *PricingHandler) ProfitabilityReport(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	report, err := h.reportUC.Execute(c.Request.Context(), shopID)
	if err != nil {
		httperr.Internal(c, "profitability_failed", "Erro ao calcular lucratividade.")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *PricingHandler) ServiceCost(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	cost, err := h.costUC.Execute(c.Request.Context(), shopID, uint(serviceID))
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "cost_failed", "Erro ao calcular custo do serviço.")
		return
	}

	c.JSON(http.StatusOK, cost)
}
