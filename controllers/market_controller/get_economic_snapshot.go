package market_controller

import (
	"log"
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// GetEconomicSnapshot godoc
// @Summary Get market data strip
// @Description Returns the USD/TRY rate, BTC price and static indicator values. Failed fetches fall back to defaults and set stale; this endpoint always returns 200.
// @Tags Market
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.EconomicSnapshot}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /market [get]
func (ctl *Controller) GetEconomicSnapshot(c *gin.Context) {
	snapshot := ctl.Market.Snapshot(c.Request.Context())

	log.Printf("[market.snapshot] respond 200 usd_try=%s btc=%s stale=%v", snapshot.UsdTry, snapshot.BtcUsd, snapshot.Stale)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Market data retrieved successfully",
		snapshot,
	))
}
