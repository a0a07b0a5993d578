package handlers

import (
	"github.com/gin-gonic/gin"

	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

// invalidateReport descarta o relatório de lucratividade em cache da loja
// depois de uma escrita que muda seus insumos: catálogo de serviços,
// custo de estoque ou custo-hora.
func invalidateReport(c *gin.Context, cache ucpricing.ReportCache, shopID uint) {
	if cache == nil {
		return
	}
	cache.Invalidate(c.Request.Context(), shopID)
}
