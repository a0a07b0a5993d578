package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/dto"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/httpresp"
	"github.com/BLEINATS/estetica-auto-api/internal/infra/payments"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	ucworkorder "github.com/BLEINATS/estetica-auto-api/internal/usecase/workorder"
)

// ======================================================
// HANDLER
// ======================================================

type WorkOrderHandler struct {
	db      *gorm.DB
	gateway payments.Gateway

	createUC   *ucworkorder.CreateWorkOrder
	completeUC *ucworkorder.CompleteWorkOrder
	cancelUC   *ucworkorder.CancelWorkOrder
}

func NewWorkOrderHandler(
	db *gorm.DB,
	gateway payments.Gateway,
	createUC *ucworkorder.CreateWorkOrder,
	completeUC *ucworkorder.CompleteWorkOrder,
	cancelUC *ucworkorder.CancelWorkOrder,
) *WorkOrderHandler {
	return &WorkOrderHandler{
		db:         db,
		gateway:    gateway,
		createUC:   createUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWorkOrderRequest struct {
	ClientID        uint   `json:"client_id" binding:"required"`
	VehicleID       uint   `json:"vehicle_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	ExtraServiceIDs []uint `json:"extra_service_ids"`
	Notes           string `json:"notes"`
}

type CompleteWorkOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ======================================================
// CREATE
// ======================================================

func (h *WorkOrderHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	wo, err := h.createUC.Execute(
		c.Request.Context(),
		ucworkorder.CreateWorkOrderInput{
			ShopID:          shopID,
			UserID:          userID,
			ClientID:        req.ClientID,
			VehicleID:       req.VehicleID,
			ServiceID:       req.ServiceID,
			ExtraServiceIDs: req.ExtraServiceIDs,
			Notes:           req.Notes,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "vehicle_not_found"):
			httperr.BadRequest(c, "vehicle_not_found", "Veículo não encontrado.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		default:
			httperr.Internal(c, "failed_to_create_work_order", "Erro ao criar ordem de serviço.")
		}
		return
	}

	c.JSON(http.StatusCreated, wo)
}

// ======================================================
// LIST
// ======================================================

func (h *WorkOrderHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := h.db.Where("shop_id = ?", shopID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var orders []models.WorkOrder
	if err := q.
		Preload("Client").
		Preload("Vehicle").
		Preload("Service").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {

		httperr.Internal(c, "failed_to_list_work_orders", "Erro ao listar ordens de serviço.")
		return
	}

	out := make([]dto.WorkOrderListDTO, 0, len(orders))
	for _, wo := range orders {
		out = append(out, dto.WorkOrderListDTO{
			ID:          wo.ID,
			Reference:   wo.Reference,
			Status:      wo.Status,
			TotalValue:  wo.TotalValue,
			ClientName:  wo.Client.Name,
			Plate:       wo.Vehicle.Plate,
			ServiceName: wo.Service.Name,
			ExtraCount:  len(wo.Items),
			CreatedAt:   wo.CreatedAt,
			CompletedAt: wo.CompletedAt,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================

func (h *WorkOrderHandler) Complete(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_work_order_id", "Ordem de serviço inválida.")
		return
	}

	var req CompleteWorkOrderRequest
	_ = c.ShouldBindJSON(&req)

	wo, err := h.completeUC.Execute(
		c.Request.Context(),
		shopID,
		userID,
		uint(id),
		req.PaymentMethod,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "work_order_not_found"):
			httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Ordem de serviço não está aberta.")
		default:
			httperr.Internal(c, "failed_to_complete_work_order", "Erro ao concluir ordem de serviço.")
		}
		return
	}

	c.JSON(http.StatusOK, wo)
}

func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_work_order_id", "Ordem de serviço inválida.")
		return
	}

	wo, err := h.cancelUC.Execute(c.Request.Context(), shopID, userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "work_order_not_found"):
			httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.Conflict(c, "invalid_state", "Ordem de serviço não está aberta.")
		default:
			httperr.Internal(c, "failed_to_cancel_work_order", "Erro ao cancelar ordem de serviço.")
		}
		return
	}

	c.JSON(http.StatusOK, wo)
}

// ======================================================
// CHECKOUT LINK
// ======================================================

func (h *WorkOrderHandler) CreateCheckout(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	if h.gateway == nil {
		httperr.Internal(c, "payments_not_configured", "Pagamentos não configurados.")
		return
	}

	id := c.Param("id")

	var wo models.WorkOrder
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&wo).Error; err != nil {
		httperr.NotFound(c, "work_order_not_found", "Ordem de serviço não encontrada.")
		return
	}

	if wo.Status != "open" {
		httperr.Conflict(c, "invalid_state", "Só ordens abertas geram link de pagamento.")
		return
	}
	if wo.TotalValue <= 0 {
		httperr.BadRequest(c, "nothing_to_charge", "Ordem sem valor a cobrar.")
		return
	}

	link, err := h.gateway.CreateCheckout(
		c.Request.Context(),
		wo.Reference,
		"Ordem de serviço "+wo.Reference,
		wo.TotalValue,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_checkout", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, link)
}
