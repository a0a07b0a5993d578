package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/middleware"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	"github.com/BLEINATS/estetica-auto-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type TransactionHandler struct {
	db *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method"`
	Date        string  `json:"date"` // YYYY-MM-DD, default hoje
}

// ======================================================
// LIST / CREATE
// ======================================================

func (h *TransactionHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	q := h.db.Where("shop_id = ?", shopID)

	if txType := c.Query("type"); txType != "" {
		q = q.Where("type = ?", txType)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("date >= ?", from)
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("date < ?", to.Add(24*time.Hour))
		}
	}

	var txs []models.Transaction
	if err := q.Order("date DESC").Find(&txs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_transactions", "Erro ao listar lançamentos.")
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date := timezone.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(""))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	tx := models.Transaction{
		ShopID:      shopID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Method:      req.Method,
		Date:        date,
	}

	if err := h.db.Create(&tx).Error; err != nil {
		httperr.Internal(c, "failed_to_create_transaction", "Erro ao criar lançamento.")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// ======================================================
// MONTHLY SUMMARY
// ======================================================

// Summary devolve receitas, despesas e saldo do mês corrente da loja
func (h *TransactionHandler) Summary(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	var shop models.DetailShop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Loja não encontrada.")
		return
	}

	start, end := timezone.MonthRange(timezone.NowIn(shop.Timezone), shop.Timezone)

	sum := func(txType string) (float64, error) {
		var total float64
		err := h.db.
			Model(&models.Transaction{}).
			Where("shop_id = ? AND type = ? AND date >= ? AND date < ?",
				shopID, txType, start, end).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
		return total, err
	}

	income, err := sum("income")
	if err != nil {
		httperr.Internal(c, "summary_failed", "Erro ao somar receitas.")
		return
	}

	expense, err := sum("expense")
	if err != nil {
		httperr.Internal(c, "summary_failed", "Erro ao somar despesas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month_start": start,
		"income":      income,
		"expense":     expense,
		"balance":     income - expense,
	})
}
