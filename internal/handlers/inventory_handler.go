package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

type InventoryHandler struct {
	db          *gorm.DB
	reportCache ucpricing.ReportCache
}

func NewInventoryHandler(db *gorm.DB, reportCache ucpricing.ReportCache) *InventoryHandler {
	return &InventoryHandler{db: db, reportCache: reportCache}
}

// --------- Requests ---------

type CreateInventoryItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	CostPrice float64 `json:"cost_price" binding:"required,gte=0"`
	Stock     float64 `json:"stock"`
	MinStock  float64 `json:"min_stock"`
}

type UpdateInventoryItemRequest struct {
	Name      *string  `json:"name,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	CostPrice *float64 `json:"cost_price,omitempty"`
	Stock     *float64 `json:"stock,omitempty"`
	MinStock  *float64 `json:"min_stock,omitempty"`
	Active    *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *InventoryHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("shop_id = ?", shopID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	// só itens abaixo do estoque mínimo
	if c.Query("low_stock") == "true" {
		q = q.Where("stock < min_stock")
	}

	var items []models.InventoryItem
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_inventory", "Erro ao listar estoque.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	item := models.InventoryItem{
		ShopID:    shopID,
		Name:      req.Name,
		Unit:      strings.ToLower(strings.TrimSpace(req.Unit)),
		CostPrice: req.CostPrice,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Active:    true,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_item", "Erro ao criar item de estoque.")
		return
	}

	invalidateReport(c, h.reportCache, shopID)

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	var item models.InventoryItem
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&item).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "item_not_found", "Item não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_item", "Erro ao buscar item.")
		return
	}

	var req UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = strings.ToLower(strings.TrimSpace(*req.Unit))
	}
	if req.CostPrice != nil {
		if *req.CostPrice < 0 {
			httperr.BadRequest(c, "invalid_cost_price", "Custo deve ser zero ou positivo.")
			return
		}
		item.CostPrice = *req.CostPrice
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_item", "Erro ao salvar item.")
		return
	}

	invalidateReport(c, h.reportCache, shopID)

	c.JSON(http.StatusOK, item)
}

// Delete remove o item do catálogo de estoque. Receitas que ainda o
// referenciam passam a exibir "item removido do estoque" — a linha é
// pulada no cálculo de custo, nunca vira erro.
func (h *InventoryHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&models.InventoryItem{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_item", "Erro ao remover item.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "item_not_found", "Item não encontrado.")
		return
	}

	invalidateReport(c, h.reportCache, shopID)

	c.Status(http.StatusNoContent)
}
