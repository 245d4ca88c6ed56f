package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repair-tracker/internal/apperr"
	"repair-tracker/internal/storage"
	"repair-tracker/internal/transport/http/response"
)

type UploadHandler struct {
	store      *storage.Local
	publicPath string // URL prefix returned to clients, e.g. "/uploads"
}

func NewUploadHandler(store *storage.Local, publicPath string) *UploadHandler {
	return &UploadHandler{store: store, publicPath: publicPath}
}

// Upload stores every named file from the multipart "images" field and returns
// their URLs. It never attaches URLs to a job; callers do that in a follow-up
// create/update. A client crash between the two steps orphans the file, which
// is a known limitation of the protocol.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, bindErr(err, "invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Fail(c, apperr.Validation("No images provided"))
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			response.Fail(c, apperr.Internal("open upload", err))
			return
		}
		stored, err := h.store.Save(fh.Filename, f)
		f.Close()
		if err != nil {
			response.Fail(c, apperr.Internal("save upload", err))
			return
		}
		urls = append(urls, h.publicPath+"/"+stored)
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

func (h *UploadHandler) Serve(c *gin.Context) {
	p, err := h.store.Resolve(c.Param("filename"))
	if err != nil {
		response.Fail(c, apperr.NotFound("File not found"))
		return
	}
	c.File(p)
}
