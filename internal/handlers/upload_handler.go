package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/httpresp"
	ucMedia "github.com/BruksfildServices01/venue-site/internal/usecase/media"
)

const maxUploadBytes = 8 << 20

type UploadHandler struct {
	upload *ucMedia.UploadImage
}

func NewUploadHandler(upload *ucMedia.UploadImage) *UploadHandler {
	return &UploadHandler{upload: upload}
}

// Image takes a multipart "file" and answers with the public URL of the
// stored webp copy.
func (h *UploadHandler) Image(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.BadRequest(c, "Image cannot be larger than 8 MB")
			return
		}
		httperr.BadRequest(c, "Please provide an image file")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}
	defer f.Close()

	url, err := h.upload.Execute(c.Request.Context(), "games", f)
	if err != nil {
		httperr.Respond(c, err, "", "")
		return
	}

	httpresp.Created(c, gin.H{"url": url})
}
