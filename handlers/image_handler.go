package handlers

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/festwish/wish-service/internal/service"
	"github.com/festwish/wish-service/pkg/response"
)

// 10 MB upload cap, matching typical photo sizes with headroom.
const maxUploadBytes = 10 << 20

type ImageHandler struct {
	service *service.ImageService
}

func NewImageHandler(service *service.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// UploadImage godoc
// @Summary Upload a user image
// @Description Stores a user-provided background image for later use on cards
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param x-api-key header string true "API key for image management"
// @Param userId path int true "User ID"
// @Param file formData file true "Image file"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/users/{userId}/images [post]
func (h *ImageHandler) UploadImage(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, fmt.Errorf("file is required"))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.BadRequest(c, fmt.Errorf("file exceeds the %d byte limit", maxUploadBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return response.InternalServerError(c, err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	img, err := h.service.UploadUserImage(c.Request().Context(), userID, content, fileHeader.Filename, mimeType)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Created(c, "Image uploaded successfully", img)
}

// GetUserImages godoc
// @Summary List a user's images
// @Description Retrieves the images uploaded by a user
// @Tags images
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key for image management"
// @Param userId path int true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/users/{userId}/images [get]
func (h *ImageHandler) GetUserImages(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, err)
	}

	images, err := h.service.GetUserImages(c.Request().Context(), userID)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, images)
}

// DeleteImage godoc
// @Summary Delete a user image
// @Description Removes an uploaded image from storage and the database
// @Tags images
// @Accept json
// @Produce json
// @Param x-api-key header string true "API key for image management"
// @Param userId path int true "User ID"
// @Param imageId path int true "Image ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/users/{userId}/images/{imageId} [delete]
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, err)
	}
	imageID, err := parseIDParam(c, "imageId")
	if err != nil {
		return response.BadRequest(c, err)
	}

	if err := h.service.DeleteUserImage(c.Request().Context(), userID, imageID); err != nil {
		return mapDomainError(c, err)
	}

	return response.OkWithMessage(c, "Image deleted successfully", nil)
}
