package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/infra/storage"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	"github.com/BLEINATS/estetica-auto-api/internal/validators"
)

const maxPhotoBytes = 10 << 20 // 10 MB

type VehicleHandler struct {
	db     *gorm.DB
	photos *storage.PhotoStorage
}

func NewVehicleHandler(db *gorm.DB, photos *storage.PhotoStorage) *VehicleHandler {
	return &VehicleHandler{db: db, photos: photos}
}

// --------- Requests ---------

type CreateVehicleRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Plate    string `json:"plate" binding:"required"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Color    string `json:"color"`
	Size     string `json:"size" binding:"required"`
}

type UpdateVehicleRequest struct {
	Brand *string `json:"brand,omitempty"`
	Model *string `json:"model,omitempty"`
	Color *string `json:"color,omitempty"`
	Size  *string `json:"size,omitempty"`
}

// --------- Handlers ---------

func (h *VehicleHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := h.db.Where("shop_id = ?", shopID)

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var vehicles []models.Vehicle
	if err := q.Order("id ASC").Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Erro ao listar veículos.")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	plate := validators.NormalizePlate(req.Plate)
	if !validators.IsPlateValid(plate) {
		httperr.BadRequest(c, "invalid_plate", "Placa inválida.")
		return
	}

	size, err := pricing.ParseSize(req.Size)
	if err != nil {
		httperr.BadRequest(c, "invalid_size", "Porte de veículo inválido.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND shop_id = ?", req.ClientID, shopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	vehicle := models.Vehicle{
		ShopID:   shopID,
		ClientID: client.ID,
		Plate:    plate,
		Brand:    req.Brand,
		Model:    req.Model,
		Color:    req.Color,
		Size:     string(size),
	}

	if err := h.db.Create(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vehicle", "Erro ao criar veículo.")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&vehicle).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_vehicle", "Erro ao buscar veículo.")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Size != nil {
		size, err := pricing.ParseSize(*req.Size)
		if err != nil {
			httperr.BadRequest(c, "invalid_size", "Porte de veículo inválido.")
			return
		}
		vehicle.Size = string(size)
	}

	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Erro ao salvar veículo.")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// ======================================================
// PHOTO UPLOAD (multipart → WebP → S3)
// ======================================================
func (h *VehicleHandler) UploadPhoto(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)
	id := c.Param("id")

	if h.photos == nil {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de fotos não configurado.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&vehicle).Error; err != nil {
		httperr.NotFound(c, "vehicle_not_found", "Veículo não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do limite de 10MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto enviada.")
		return
	}
	defer src.Close()

	url, err := h.photos.UploadVehiclePhoto(
		c.Request.Context(),
		shopID,
		vehicle.ID,
		src,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	vehicle.PhotoURL = url
	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Erro ao salvar veículo.")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
