package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UploadErrorResponse lists what was stored before the batch stopped.
type UploadErrorResponse struct {
	Error string   `json:"error"`
	URLs  []string `json:"urls"`
}

// /admin/uploads
type AdminUploadHandler struct {
	uc *usecase.UploadUsecase
}

func NewAdminUploadHandler(uc *usecase.UploadUsecase) *AdminUploadHandler {
	return &AdminUploadHandler{uc: uc}
}

func (h *AdminUploadHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/uploads", h.upload)
	admin.DELETE("/uploads/:name", h.delete)
}

func (h *AdminUploadHandler) upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
	}

	headers := form.File["files"]
	files := make([]usecase.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadFile(fh))
	}

	out, err := h.uc.UploadImages(c.Request().Context(), files)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok && len(out.URLs) > 0 {
			return c.JSON(he.Status, UploadErrorResponse{Error: he.Message, URLs: out.URLs})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminUploadHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteImage(c.Request().Context(), c.Param("name")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func uploadFile(fh *multipart.FileHeader) usecase.UploadFile {
	return usecase.UploadFile{
		Filename: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
