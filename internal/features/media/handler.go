// ================== internal/features/media/handler.go ==================
package media

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/campusfix/internal/pkg/cloudinary"
	"github.com/xyz-asif/campusfix/internal/pkg/response"
)

type Handler struct {
	cloudinary *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cloudinary: cld}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Uploads a resolution photo or report image to Cloudinary
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image to upload"
// @Success      200  {object}  response.SuccessResponse{data=cloudinary.UploadResult}
// @Failure      400  {object}  response.ErrorResponse
// @Security     BearerAuth
// @Router       /media/upload [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if h.cloudinary == nil {
		response.ServiceUnavailable(c, "Image uploads not configured")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload file", "UPLOAD_FAILED")
		return
	}

	response.Success(c, result)
}
