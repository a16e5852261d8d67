package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/middleware"
	ucReservation "github.com/SaborReal/restaurant-manager/internal/usecase/reservation"
)

// ======================================================
// HANDLER (cliente autenticado)
// ======================================================

type ReservationHandler struct {
	createUC   *ucReservation.CreateReservation
	listMineUC *ucReservation.ListMyReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listMineUC *ucReservation.ListMyReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:   createUC,
		listMineUC: listMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
	PartySize    int    `json:"party_size"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(
		c.Request.Context(),
		ucReservation.CreateReservationInput{
			UserID:       userID,
			ContactName:  req.ContactName,
			ContactPhone: req.ContactPhone,
			ContactEmail: req.ContactEmail,
			PartySize:    req.PartySize,
			Date:         req.Date,
			Time:         req.Time,
		},
	)

	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// LIST (histórico do cliente)
// ======================================================

func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reservations": out,
		"total":        len(out),
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapReservationError separa validação (400) de conflito de agenda (409),
// para o front saber se pede correção de dados ou outro horário.
func mapReservationError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Horário indisponível. Escolha outro horário.")

	case httperr.IsBusiness(err, "all_fields_required"):
		httperr.BadRequest(c, "all_fields_required", "Todos os campos são obrigatórios.")

	case httperr.IsBusiness(err, "invalid_party_size"):
		httperr.BadRequest(c, "invalid_party_size", "Quantidade de pessoas deve ser entre 1 e 35.")

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")

	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Horário deve ser entre 07:30 e 19:00.")

	default:
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
	}
}
