package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SaborReal/restaurant-manager/internal/audit"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/middleware"
	"github.com/SaborReal/restaurant-manager/internal/models"
	"github.com/SaborReal/restaurant-manager/internal/storage"
	"github.com/SaborReal/restaurant-manager/internal/timezone"
)

// upload limitado a 10MB; a foto vira WebP de no máximo 1280px
const maxLunchImageBytes = 10 << 20

type DailyLunchHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewDailyLunchHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	dispatcher *audit.Dispatcher,
) *DailyLunchHandler {
	return &DailyLunchHandler{
		db:       db,
		uploader: uploader,
		audit:    dispatcher,
	}
}

// Upload recebe multipart (campo "image" + opcionais "date" e
// "description") e publica o prato do dia. Reenviar na mesma data
// substitui a foto anterior.
func (h *DailyLunchHandler) Upload(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.PostForm("date")
	if date == "" {
		date = timezone.Today()
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	description := c.PostForm("description")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Imagem obrigatória.")
		return
	}
	defer file.Close()

	if header.Size > maxLunchImageBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 10MB.")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(file, maxLunchImageBytes))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}

	processed, err := storage.ProcessImage(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	url, err := h.uploader.UploadLunchImage(c.Request.Context(), date, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao subir a imagem.")
		return
	}

	var lunch models.DailyLunch
	err = h.db.Where("date = ?", date).First(&lunch).Error
	switch {
	case err == nil:
		lunch.ImageURL = url
		lunch.Description = description
		err = h.db.Save(&lunch).Error
	case err == gorm.ErrRecordNotFound:
		lunch = models.DailyLunch{
			Date:        date,
			ImageURL:    url,
			Description: description,
		}
		err = h.db.Create(&lunch).Error
	}

	if err != nil {
		httperr.Internal(c, "failed_to_save_daily_lunch", "Erro ao salvar o prato do dia.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "daily_lunch_published",
		Entity:   "daily_lunch",
		EntityID: &lunch.ID,
		Metadata: map[string]string{"date": date},
	})

	c.JSON(http.StatusCreated, lunch)
}
