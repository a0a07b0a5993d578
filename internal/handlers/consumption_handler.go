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

type ConsumptionHandler struct {
	db              *gorm.DB
	replaceRecipeUC *ucpricing.ReplaceRecipe
}

func NewConsumptionHandler(
	db *gorm.DB,
	replaceRecipeUC *ucpricing.ReplaceRecipe,
) *ConsumptionHandler {
	return &ConsumptionHandler{
		db:              db,
		replaceRecipeUC: replaceRecipeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConsumptionLineRequest struct {
	InventoryItemID uint    `json:"inventory_item_id" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	UsageUnit       string  `json:"usage_unit" binding:"required"`
}

type ReplaceRecipeRequest struct {
	Lines []ConsumptionLineRequest `json:"lines" binding:"required,dive"`
}

// ======================================================
// GET / PUT RECIPE
// ======================================================

func (h *ConsumptionHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var recipe []models.ServiceConsumption
	if err := h.db.
		Where("shop_id = ? AND service_id = ?", shopID, serviceID).
		Order("id ASC").
		Find(&recipe).Error; err != nil {

		httperr.Internal(c, "failed_to_list_recipe", "Erro ao listar receita de consumo.")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Put substitui a receita inteira do serviço de uma vez
func (h *ConsumptionHandler) Put(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var req ReplaceRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucpricing.ReplaceRecipeInput{
		ShopID:    shopID,
		UserID:    userID,
		ServiceID: uint(serviceID),
	}
	for _, l := range req.Lines {
		in.Lines = append(in.Lines, ucpricing.RecipeLineInput{
			InventoryItemID: l.InventoryItemID,
			Quantity:        l.Quantity,
			UsageUnit:       l.UsageUnit,
		})
	}

	lines, err := h.replaceRecipeUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "service_not_found":
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case "invalid_quantity":
			httperr.BadRequest(c, "invalid_quantity", "Quantidade deve ser maior que zero.")
		default:
			httperr.Internal(c, "failed_to_save_recipe", "Erro ao salvar receita de consumo.")
		}
		return
	}

	c.JSON(http.StatusOK, lines)
}
