package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/festwish/wish-service/internal/channel"
	"github.com/festwish/wish-service/internal/service"
	"github.com/festwish/wish-service/pkg/response"
	"github.com/festwish/wish-service/pkg/validator"
)

type WishHandler struct {
	service  *service.WishService
	channels *channel.Registry
}

func NewWishHandler(service *service.WishService, channels *channel.Registry) *WishHandler {
	return &WishHandler{service: service, channels: channels}
}

type CreateWishRequest struct {
	UserID         *int64  `json:"userId"`
	FestivalID     int64   `json:"festivalId" validate:"required,gt=0"`
	RelationshipID int64   `json:"relationshipId" validate:"required,gt=0"`
	RecipientName  *string `json:"recipientName" validate:"omitempty,max=100"`
	CustomMessage  *string `json:"customMessage" validate:"omitempty,max=1000"`
	UserImageID    *int64  `json:"userImageId" validate:"omitempty,gt=0"`
	ChannelType    string  `json:"channelType" validate:"omitempty,max=50"`
}

type SendWishRequest struct {
	ChannelType string `json:"channelType" validate:"required,max=50"`
	Recipient   string `json:"recipient" validate:"omitempty,max=255"`
}

// CreateWish godoc
// @Summary Create a wish
// @Description Composes a wish from the festival and relationship content pools and persists it
// @Tags wishes
// @Accept json
// @Produce json
// @Param wish body CreateWishRequest true "Wish to create"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes [post]
func (h *WishHandler) CreateWish(c echo.Context) error {
	var req CreateWishRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	wish, err := h.service.CreateWish(c.Request().Context(), service.CreateWishInput{
		UserID:         req.UserID,
		FestivalID:     req.FestivalID,
		RelationshipID: req.RelationshipID,
		RecipientName:  req.RecipientName,
		CustomMessage:  req.CustomMessage,
		UserImageID:    req.UserImageID,
		ChannelType:    req.ChannelType,
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Created(c, "Wish created successfully", wish)
}

// PreviewWish godoc
// @Summary Preview wish content
// @Description Runs content selection for a festival and relationship without persisting anything
// @Tags wishes
// @Accept json
// @Produce json
// @Param festivalId query int true "Festival ID"
// @Param relationshipId query int true "Relationship ID"
// @Param recipientName query string false "Recipient name"
// @Param customMessage query string false "Custom message overriding template selection"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/preview [get]
func (h *WishHandler) PreviewWish(c echo.Context) error {
	festivalID, err := parseQueryID(c, "festivalId")
	if err != nil {
		return response.BadRequest(c, err)
	}
	relationshipID, err := parseQueryID(c, "relationshipId")
	if err != nil {
		return response.BadRequest(c, err)
	}

	in := service.PreviewInput{
		FestivalID:     festivalID,
		RelationshipID: relationshipID,
	}
	if name := c.QueryParam("recipientName"); name != "" {
		in.RecipientName = &name
	}
	if msg := c.QueryParam("customMessage"); msg != "" {
		in.CustomMessage = &msg
	}

	preview, err := h.service.GeneratePreview(c.Request().Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, preview)
}

// GetWish godoc
// @Summary Get a wish
// @Description Retrieves a wish by id
// @Tags wishes
// @Accept json
// @Produce json
// @Param id path int true "Wish ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/{id} [get]
func (h *WishHandler) GetWish(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	wish, err := h.service.GetWish(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, wish)
}

// GetUserWishes godoc
// @Summary Get a user's wish history
// @Description Retrieves the wishes created by a user, newest first
// @Tags wishes
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum number of wishes (default: 20, max: 100)"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/history/{userId} [get]
func (h *WishHandler) GetUserWishes(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.BadRequest(c, err)
	}

	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	limit := defaultLimit
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 || l > maxLimit {
			return response.BadRequest(c, fmt.Errorf("limit must be between 1 and %d", maxLimit))
		}
		limit = l
	}

	wishes, err := h.service.GetUserWishes(c.Request().Context(), userID, limit)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, wishes)
}

// GenerateCard godoc
// @Summary Generate the wish card
// @Description Renders the wish text onto a background image and stores the JPEG. Re-rendering overwrites the previous card.
// @Tags wishes
// @Accept json
// @Produce json
// @Param id path int true "Wish ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/{id}/card [post]
func (h *WishHandler) GenerateCard(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	result, err := h.service.GenerateCard(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, result)
}

// DownloadCard godoc
// @Summary Download the generated card
// @Description Streams the stored card JPEG as a file attachment
// @Tags wishes
// @Produce image/jpeg
// @Param id path int true "Wish ID"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/{id}/download [get]
func (h *WishHandler) DownloadCard(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	data, filename, err := h.service.DownloadCard(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Blob(200, "image/jpeg", data)
}

// SendWish godoc
// @Summary Send a wish through a delivery channel
// @Description Dispatches the wish through the named channel; the wish is marked sent only on success
// @Tags wishes
// @Accept json
// @Produce json
// @Param id path int true "Wish ID"
// @Param request body SendWishRequest true "Channel and recipient"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/wishes/{id}/send [post]
func (h *WishHandler) SendWish(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	var req SendWishRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleValidationError(c, err)
	}

	result, err := h.service.SendWish(c.Request().Context(), id, req.ChannelType, req.Recipient)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, result)
}

// ListChannels godoc
// @Summary List delivery channels
// @Description Returns the registered delivery channels and whether each is a stub
// @Tags channels
// @Accept json
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/channels [get]
func (h *WishHandler) ListChannels(c echo.Context) error {
	return response.Ok(c, h.channels.List())
}

func parseQueryID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
