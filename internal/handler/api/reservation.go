package api

import (
	"net/http"

	reqdto "resbook/internal/handler/dto/request"
	resdto "resbook/internal/handler/dto/response"
	"resbook/internal/pkg/errs"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Allocate a resource
// @Description Pick a matching resource and commit a reservation atomically
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.AllocateRequest true "Allocation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Allocate(c *gin.Context) {
	var req reqdto.AllocateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	reservationEntity, err := h.reservationCommands.Allocate(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case commands.IsBusinessOutcome(err):
			// NoCapacity and Conflict are deliberately indistinguishable to
			// the caller: both mean retry later or change constraints.
			c.JSON(http.StatusConflict, gin.H{
				"error": "No resource available",
			})
		case errs.Is(err, commands.ErrInvalidOccupant):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid occupant reference",
			})
		case errs.Is(err, commands.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation window",
			})
		case errs.Is(err, commands.ErrInvalidConstraint):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Exactly one of min_capacity or vehicle must be set",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(queries.NewReservationView(reservationEntity)))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Release reservation
// @Description Idempotent release by reservation id
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	released, err := h.reservationCommands.Release(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: released})
}

// @Summary Release by occupant
// @Description Release the occupant's open-ended reservation (leave)
// @Tags reservations
// @Produce json
// @Param ref path string true "Occupant reference"
// @Success 200 {object} resdto.ReleaseResponse
// @Router /occupants/{ref}/reservation [delete]
func (h *ReservationHandler) ReleaseByOccupant(c *gin.Context) {
	released, err := h.reservationCommands.ReleaseByOccupant(c.Request.Context(), c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: released})
}
