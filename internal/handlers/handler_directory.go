package handlers

import (
	"net/http"

	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// directoryHandler serves the static department taxonomy. The routes are
// public so registration forms can populate their dropdowns.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(ds portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: ds}
}

// registerDirectoryRoutes registers the public directory routes.
func registerDirectoryRoutes(rg *gin.Engine, directoryService portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directoryService)

	directory := rg.Group("/api/v1/directory")
	{
		directory.GET("/departments", h.listDepartments)
		directory.GET("/sub-departments", h.listSubDepartments)
	}
}

func (h *directoryHandler) listDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.directoryService.ListDepartments(c.Request.Context()))
}

// listSubDepartments returns the sub-departments of ?department=X. Unknown
// codes yield an empty list, not an error.
func (h *directoryHandler) listSubDepartments(c *gin.Context) {
	department := c.Query("department")
	c.JSON(http.StatusOK, h.directoryService.ListSubDepartments(c.Request.Context(), department))
}
