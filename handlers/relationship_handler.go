package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/festwish/wish-service/internal/service"
	"github.com/festwish/wish-service/pkg/response"
)

type RelationshipHandler struct {
	service *service.RelationshipService
}

func NewRelationshipHandler(service *service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{service: service}
}

// GetRelationships godoc
// @Summary List relationships
// @Description Retrieves relationships in display order, optionally filtered by category
// @Tags relationships
// @Accept json
// @Produce json
// @Param category query string false "Filter by category (family, friends, professional)"
// @Param includeInactive query bool false "Include inactive relationships"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/relationships [get]
func (h *RelationshipHandler) GetRelationships(c echo.Context) error {
	ctx := c.Request().Context()

	if category := c.QueryParam("category"); category != "" {
		relationships, err := h.service.GetByCategory(ctx, category)
		if err != nil {
			return response.InternalServerError(c, err)
		}
		return response.Ok(c, relationships)
	}

	activeOnly := c.QueryParam("includeInactive") != "true"

	relationships, err := h.service.GetAll(ctx, activeOnly)
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, relationships)
}

// GetRelationship godoc
// @Summary Get a relationship
// @Description Retrieves a single relationship by id
// @Tags relationships
// @Accept json
// @Produce json
// @Param id path int true "Relationship ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/relationships/{id} [get]
func (h *RelationshipHandler) GetRelationship(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, err)
	}

	relationship, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Ok(c, relationship)
}
