package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/festwish/wish-service/internal/domain"
	"github.com/festwish/wish-service/internal/service"
	"github.com/festwish/wish-service/pkg/response"
)

type FestivalHandler struct {
	service *service.FestivalService
}

func NewFestivalHandler(service *service.FestivalService) *FestivalHandler {
	return &FestivalHandler{service: service}
}

// GetFestivals godoc
// @Summary List festivals
// @Description Retrieves festivals, optionally filtered by culture or typical month
// @Tags festivals
// @Accept json
// @Produce json
// @Param culture query string false "Filter by religion/culture"
// @Param month query string false "Filter by typical month"
// @Param includeInactive query bool false "Include inactive festivals"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/festivals [get]
func (h *FestivalHandler) GetFestivals(c echo.Context) error {
	ctx := c.Request().Context()

	if culture := c.QueryParam("culture"); culture != "" {
		festivals, err := h.service.GetByCulture(ctx, culture)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return response.Ok(c, festivals)
	}

	if month := c.QueryParam("month"); month != "" {
		festivals, err := h.service.GetByMonth(ctx, month)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return response.Ok(c, festivals)
	}

	activeOnly := c.QueryParam("includeInactive") != "true"

	festivals, err := h.service.GetAll(ctx, activeOnly)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, festivals)
}

// GetFestival godoc
// @Summary Get a festival
// @Description Retrieves a single festival by numeric id or slug
// @Tags festivals
// @Accept json
// @Produce json
// @Param id path string true "Festival id or slug"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/festivals/{id} [get]
func (h *FestivalHandler) GetFestival(c echo.Context) error {
	ctx := c.Request().Context()
	idStr := c.Param("id")

	// Numeric path segments are ids, anything else is a slug.
	if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
		festival, err := h.service.GetByID(ctx, id)
		if err != nil {
			return mapDomainError(c, err)
		}
		return response.Ok(c, festival)
	}

	festival, err := h.service.GetBySlug(ctx, idStr)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, festival)
}

// GetFestivalDetail godoc
// @Summary Get a festival with its content pools
// @Description Retrieves a festival together with its active quotes and card images
// @Tags festivals
// @Accept json
// @Produce json
// @Param id path int true "Festival ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/festivals/{id}/detail [get]
func (h *FestivalHandler) GetFestivalDetail(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	detail, err := h.service.GetDetail(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, detail)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// mapDomainError translates the domain sentinels into the right HTTP status.
func mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return response.UnprocessableEntity(c, err)
	default:
		return response.InternalServerError(c, err)
	}
}
