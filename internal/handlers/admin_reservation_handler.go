package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/httpresp"
	"github.com/SaborReal/restaurant-manager/internal/middleware"
	ucReservation "github.com/SaborReal/restaurant-manager/internal/usecase/reservation"
)

// ======================================================
// HANDLER (painel admin)
// ======================================================

type AdminReservationHandler struct {
	listByDateUC   *ucReservation.ListReservationsByDate
	listByMonthUC  *ucReservation.ListReservationsByMonth
	updateStatusUC *ucReservation.UpdateReservationStatus
	deleteUC       *ucReservation.DeleteReservation
}

func NewAdminReservationHandler(
	listByDateUC *ucReservation.ListReservationsByDate,
	listByMonthUC *ucReservation.ListReservationsByMonth,
	updateStatusUC *ucReservation.UpdateReservationStatus,
	deleteUC *ucReservation.DeleteReservation,
) *AdminReservationHandler {
	return &AdminReservationHandler{
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List aceita ?date=YYYY-MM-DD ou ?month=YYYY-MM (visão de calendário).
func (h *AdminReservationHandler) List(c *gin.Context) {
	dateStr := c.Query("date")
	monthStr := c.Query("month")

	switch {
	case dateStr != "":
		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		out, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
		if err != nil {
			httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
			return
		}
		httpresp.List(c, out)

	case monthStr != "":
		ref, err := time.Parse("2006-01", monthStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}

		out, err := h.listByMonthUC.Execute(c.Request.Context(), ref.Year(), ref.Month())
		if err != nil {
			httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
			return
		}
		httpresp.List(c, out)

	default:
		httperr.BadRequest(c, "missing_params", "Informe date ou month.")
	}
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminReservationHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		domain.Status(req.Status),
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminReservationHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, uint(id)); err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_reservation", "Erro ao remover reserva.")
		return
	}

	c.Status(http.StatusNoContent)
}
