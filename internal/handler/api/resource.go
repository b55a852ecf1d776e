package api

import (
	"net/http"
	"time"

	reqdto "resbook/internal/handler/dto/request"
	resdto "resbook/internal/handler/dto/response"
	"resbook/internal/pkg/errs"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type ResourceHandler struct {
	resourceCommands   commands.ResourceCommands
	resourceQueries    queries.ResourceQueries
	reservationQueries queries.ReservationQueries
}

func NewResourceHandler(
	resourceCommands commands.ResourceCommands,
	resourceQueries queries.ResourceQueries,
	reservationQueries queries.ReservationQueries,
) *ResourceHandler {
	return &ResourceHandler{
		resourceCommands:   resourceCommands,
		resourceQueries:    resourceQueries,
		reservationQueries: reservationQueries,
	}
}

// @Summary Create resource
// @Description Register a resource in the catalog and preallocate its lock
// @Tags resources
// @Accept json
// @Produce json
// @Param request body reqdto.CreateResourceRequest true "Resource definition"
// @Success 201 {object} resdto.CreateResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.resourceCommands.CreateResource(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDuplicateResource):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Resource already exists",
			})
		case errs.Is(err, commands.ErrInvalidResource):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource definition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateResourceResponse{ID: id})
}

// @Summary Find available resources
// @Description List resources matching the constraints that are free for the window
// @Tags resources
// @Produce json
// @Param min_capacity query int false "Minimum capacity (interval resources)"
// @Param vehicle query string false "Vehicle type (exclusive resources)"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Router /resources/available [get]
func (h *ResourceHandler) FindAvailable(c *gin.Context) {
	var q reqdto.FindAvailableQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	views, err := h.resourceQueries.FindAvailable(c.Request.Context(), q.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidQueryWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary List reservations for a resource and day
// @Description Day calendar for one resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param day query string true "Calendar day (2006-01-02)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/reservations [get]
func (h *ResourceHandler) ListReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource ID format",
		})
		return
	}

	day, err := time.Parse(dayLayout, c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing day parameter",
		})
		return
	}

	views, err := h.reservationQueries.ListForResourceAndDay(c.Request.Context(), id, day)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
