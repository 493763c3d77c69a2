package handler

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 5 << 20 // 5MB

// UploadHandler stores uploaded images on local disk. Admin and staff only.
type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	if dir == "" {
		dir = "uploads"
	}
	return &UploadHandler{dir: dir}
}

// Image accepts a multipart image upload.
//
// @Summary      Upload image
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Router       /upload/image [post]
func (h *UploadHandler) Image(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds the 5MB limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("image-%d-%d%s",
		time.Now().UnixMilli(), rand.Int63n(1_000_000_000), filepath.Ext(fileHeader.Filename))
	path := filepath.Join(h.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok("Image uploaded successfully", map[string]string{
		"filename": name,
		"path":     path,
	}))
}
