package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

type ShopHandler struct {
	db          *gorm.DB
	reportCache ucpricing.ReportCache
}

func NewShopHandler(db *gorm.DB, reportCache ucpricing.ReportCache) *ShopHandler {
	return &ShopHandler{db: db, reportCache: reportCache}
}

type UpdateShopConfigRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	// Custo-hora da equipe usado no relatório de lucratividade
	HourlyRate *float64 `json:"hourly_rate"`
}

func (h *ShopHandler) GetMeShop(c *gin.Context) {
	shopIDVal, _ := c.Get(middleware.ContextShopID)
	shopID := shopIDVal.(uint)

	var shop models.DetailShop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Erro ao buscar dados da loja.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) UpdateMeShop(c *gin.Context) {
	shopIDVal, _ := c.Get(middleware.ContextShopID)
	shopID := shopIDVal.(uint)

	var shop models.DetailShop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_shop", "Erro ao buscar dados da loja.")
		return
	}

	var req UpdateShopConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Custo-hora deve ser zero ou positivo.")
			return
		}
		shop.HourlyRate = *req.HourlyRate
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Erro ao salvar as configurações da loja.")
		return
	}

	// o custo-hora entra no relatório de lucratividade
	invalidateReport(c, h.reportCache, shopID)

	c.JSON(http.StatusOK, shop)
}
