package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

type ServiceHandler struct {
	db          *gorm.DB
	reportCache ucpricing.ReportCache
}

func NewServiceHandler(db *gorm.DB, reportCache ucpricing.ReportCache) *ServiceHandler {
	return &ServiceHandler{db: db, reportCache: reportCache}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	StandardTimeMin int    `json:"standard_time_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	StandardTimeMin *int    `json:"standard_time_min,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("shop_id = ?", shopID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Preload("Prices").
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// Create grava o serviço e semeia as quatro linhas da matriz de preços
// em zero ("Sob Consulta") na mesma transação
func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		ShopID:          shopID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        strings.ToLower(req.Category),
		StandardTimeMin: req.StandardTimeMin,
		Active:          true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}

		for _, size := range pricing.AllSizes() {
			price := models.ServicePrice{
				ShopID:    shopID,
				ServiceID: service.ID,
				Size:      string(size),
				Price:     0,
			}
			if err := tx.Create(&price).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	invalidateReport(c, h.reportCache, shopID)
	writeAudit(h.db, shopID, &userID, "service_created", "service", &service.ID, nil)

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.StandardTimeMin != nil {
		service.StandardTimeMin = *req.StandardTimeMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	invalidateReport(c, h.reportCache, shopID)

	c.JSON(http.StatusOK, service)
}

// Delete remove o serviço e, em cascata explícita, suas linhas de preço
// e sua receita de consumo — nenhuma linha órfã sobrevive
func (h *ServiceHandler) Delete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ? AND shop_id = ?", service.ID, shopID).
			Delete(&models.ServicePrice{}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("service_id = ? AND shop_id = ?", service.ID, shopID).
			Delete(&models.ServiceConsumption{}).Error; err != nil {
			return err
		}

		return tx.Delete(&service).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	invalidateReport(c, h.reportCache, shopID)
	writeAudit(h.db, shopID, &userID, "service_deleted", "service", &service.ID, nil)

	c.Status(http.StatusNoContent)
}
