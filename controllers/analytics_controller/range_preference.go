package analytics_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Atlas-Ticaret/atlas-backoffice/middleware"
	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rangePrefKeyPrefix = "dashboard:range:"

// GetRangePreference godoc
// @Summary Get saved dashboard range
// @Description Returns the caller's last saved KPI date range, or the 30-day default when none is saved.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.RangePreference}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /analytics/range [get]
func (ctl *Controller) GetRangePreference(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	raw, err := ctl.Redis.Get(c.Request.Context(), rangePrefKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		today := models.NewDay(time.Now())
		pref := models.RangePreference{
			Start: today.AddDays(-29).String(),
			End:   today.String(),
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Default range", pref))
		return
	}
	if err != nil {
		log.Printf("[analytics.range] ERROR redis get failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch range preference"))
		return
	}

	var pref models.RangePreference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		log.Printf("[analytics.range] ERROR corrupt preference user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read range preference"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Range preference retrieved successfully", pref))
}

// SaveRangePreference godoc
// @Summary Save dashboard range
// @Description Persists the caller's selected KPI date range so it survives reloads.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.RangePreference true "Date range"
// @Success 200 {object} models.ApiResponse{data=models.RangePreference}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /analytics/range [put]
func (ctl *Controller) SaveRangePreference(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var pref models.RangePreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if _, err := models.ParseDateRange(pref.Start, pref.End); err != nil {
		log.Printf("[analytics.range] rejected range start=%q end=%q err=%v", pref.Start, pref.End, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Range start must not be after end"))
		return
	}

	raw, err := json.Marshal(pref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to encode range preference"))
		return
	}

	if err := ctl.Redis.Set(c.Request.Context(), rangePrefKeyPrefix+userID, raw, 0).Err(); err != nil {
		log.Printf("[analytics.range] ERROR redis set failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save range preference"))
		return
	}

	log.Printf("[analytics.range] saved user=%s range=%s..%s", userID, pref.Start, pref.End)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Range preference saved successfully", pref))
}
