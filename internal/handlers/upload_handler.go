package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumiere-salon/salon-scheduler/internal/httperr"
	"github.com/lumiere-salon/salon-scheduler/internal/media"
)

type UploadHandler struct {
	store *media.Store
}

func NewUploadHandler(store *media.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload recebe a foto de um serviço e devolve a URL final
// (local ou S3) para o painel gravar no cadastro.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Imagem é obrigatória")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	url, err := h.store.Save(c.Request.Context(), src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida. Envie JPEG ou PNG.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
