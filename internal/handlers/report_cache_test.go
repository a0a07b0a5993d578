package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	ucpricing "github.com/BLEINATS/estetica-auto-api/internal/usecase/pricing"
)

type recordingCache struct {
	invalidated []uint
}

func (c *recordingCache) Get(_ context.Context, shopID uint) (*ucpricing.Report, bool) {
	return nil, false
}

func (c *recordingCache) Set(_ context.Context, shopID uint, _ *ucpricing.Report) {}

func (c *recordingCache) Invalidate(_ context.Context, shopID uint) {
	c.invalidated = append(c.invalidated, shopID)
}

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c
}

func TestInvalidateReport(t *testing.T) {
	cache := &recordingCache{}
	c := testContext()

	invalidateReport(c, cache, 7)
	invalidateReport(c, cache, 9)

	assert.Equal(t, []uint{7, 9}, cache.invalidated)
}

func TestInvalidateReportSemCache(t *testing.T) {
	c := testContext()

	// sem Redis configurado o cache é nil; escrita segue normal
	assert.NotPanics(t, func() {
		invalidateReport(c, nil, 7)
	})
}
