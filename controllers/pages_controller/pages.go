package pages_controller

import (
	"net/http"

	"github.com/Atlas-Ticaret/atlas-backoffice/models"
	"github.com/gin-gonic/gin"
)

// Controller serves the static navigation registry. Stateless.
type Controller struct{}

func New() *Controller {
	return &Controller{}
}

// GetMenu godoc
// @Summary Get sidebar menu
// @Description Returns the static sidebar tree grouped into sections.
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MenuSection}
// @Router /pages/menu [get]
func (ctl *Controller) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Menu retrieved successfully",
		models.Menu(),
	))
}

// GetPages godoc
// @Summary List all pages
// @Description Returns every registered page with its implementation status.
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.PageInfo}
// @Router /pages [get]
func (ctl *Controller) GetPages(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Pages retrieved successfully",
		models.AllPages(),
	))
}

// ResolvePage godoc
// @Summary Resolve a page id
// @Description Returns the metadata for a page id. Unknown ids resolve to the dashboard instead of erroring.
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} models.ApiResponse{data=models.PageInfo}
// @Router /pages/{id} [get]
func (ctl *Controller) ResolvePage(c *gin.Context) {
	info := models.ResolvePage(c.Param("id"))
	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Page resolved successfully",
		info,
	))
}
