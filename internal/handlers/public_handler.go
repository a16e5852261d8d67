package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaborReal/restaurant-manager/internal/cache"
	"github.com/SaborReal/restaurant-manager/internal/config"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	infraRepo "github.com/SaborReal/restaurant-manager/internal/infra/repository"
	"github.com/SaborReal/restaurant-manager/internal/models"
	"github.com/SaborReal/restaurant-manager/internal/timezone"
	ucReservation "github.com/SaborReal/restaurant-manager/internal/usecase/reservation"
	"github.com/SaborReal/restaurant-manager/internal/whatsapp"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db     *gorm.DB
	config *config.Config
	cache  *cache.Availability
}

func NewPublicHandler(db *gorm.DB, cfg *config.Config, availCache *cache.Availability) *PublicHandler {
	return &PublicHandler{
		db:     db,
		config: cfg,
		cache:  availCache,
	}
}

////////////////////////////////////////////////////////
// MENU
////////////////////////////////////////////////////////

func (h *PublicHandler) ListMenu(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.MenuItem
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Erro ao listar o cardápio.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *PublicHandler) GetDailyLunch(c *gin.Context) {
	today := timezone.Today()

	var lunch models.DailyLunch
	if err := h.db.Where("date = ?", today).First(&lunch).Error; err != nil {
		httperr.NotFound(c, "daily_lunch_not_found", "Prato do dia ainda não publicado.")
		return
	}

	c.JSON(http.StatusOK, lunch)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	repo := infraRepo.NewReservationGormRepository(h.db)
	uc := ucReservation.NewGetAvailability(repo, h.cache)

	out, err := uc.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// WHATSAPP ORDER
////////////////////////////////////////////////////////

type WhatsAppOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
	Note string `json:"note"`
}

// WhatsAppOrder monta o deep-link wa.me do pedido de almoço. Nome e
// preço saem sempre do banco; o front só manda ids e quantidades.
func (h *PublicHandler) WhatsAppOrder(c *gin.Context) {
	var req WhatsAppOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	order := whatsapp.Order{
		CustomerName: req.CustomerName,
		Note:         req.Note,
	}

	for _, reqItem := range req.Items {
		var item models.MenuItem
		if err := h.db.
			Where("id = ? AND active = true", reqItem.MenuItemID).
			First(&item).Error; err != nil {

			httperr.BadRequest(c, "menu_item_not_found", "Item do cardápio inválido.")
			return
		}

		order.Items = append(order.Items, whatsapp.OrderItem{
			Name:     item.Name,
			Quantity: reqItem.Quantity,
			Price:    item.Price,
		})
	}

	link, err := whatsapp.BuildOrderLink(h.config.WhatsAppNumber, order)
	if err != nil {
		httperr.Internal(c, "whatsapp_link_failed", "Erro ao montar o pedido.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"link":    link,
		"message": whatsapp.BuildOrderMessage(order),
	})
}
