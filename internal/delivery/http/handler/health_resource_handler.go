package handler

import (
	"errors"
	"net/http"
	"strings"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/response"
	"nextcare-api/pkg/validator"
)

type HealthResourceHandler struct {
	resourceUsecase usecase.HealthResourceUsecase
	validator       *validator.CustomValidator
}

func NewHealthResourceHandler(resourceUsecase usecase.HealthResourceUsecase, validator *validator.CustomValidator) *HealthResourceHandler {
	return &HealthResourceHandler{
		resourceUsecase: resourceUsecase,
		validator:       validator,
	}
}

func (h *HealthResourceHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrHealthResourceNotFound):
		response.NotFound(w, "Resource not found")
	case errors.Is(err, usecase.ErrNotAuthorized):
		response.Unauthorized(w, "Not authorized as admin")
	default:
		response.InternalServerError(w, "")
	}
}

func healthResourceFilter(r *http.Request) entity.HealthResourceFilter {
	query := r.URL.Query()
	filter := entity.HealthResourceFilter{
		Category: query.Get("category"),
	}

	if tags := query.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	if featured := query.Get("featured"); featured != "" {
		value := featured == "true"
		filter.Featured = &value
	}

	return filter
}

// GetAllHealthResources lists the catalog, newest first
// @Summary List health resources
// @Tags HealthResources
// @Produce json
// @Param category query string false "Exact category"
// @Param tags query string false "Comma separated tags; any match"
// @Param featured query bool false "Featured flag"
// @Success 200 {array} dto.HealthResourceResponse
// @Router /health-resources [get]
func (h *HealthResourceHandler) GetAllHealthResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceUsecase.GetAllHealthResources(r.Context(), healthResourceFilter(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, resources)
}

// GetHealthResource returns one resource and counts the read as a view
// @Summary Get health resource
// @Tags HealthResources
// @Produce json
// @Success 200 {object} dto.HealthResourceResponse
// @Failure 404 {object} response.Message
// @Router /health-resources/{id} [get]
func (h *HealthResourceHandler) GetHealthResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Resource not found")
	if !ok {
		return
	}

	resource, err := h.resourceUsecase.GetHealthResource(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, resource)
}

func (h *HealthResourceHandler) LikeHealthResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Resource not found")
	if !ok {
		return
	}

	resource, err := h.resourceUsecase.LikeHealthResource(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, resource)
}

func (h *HealthResourceHandler) CreateHealthResource(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.CreateHealthResourceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	resource, err := h.resourceUsecase.CreateHealthResource(r.Context(), caller, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, resource)
}

func (h *HealthResourceHandler) UpdateHealthResource(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Resource not found")
	if !ok {
		return
	}

	var req dto.UpdateHealthResourceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	resource, err := h.resourceUsecase.UpdateHealthResource(r.Context(), caller, id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, resource)
}

func (h *HealthResourceHandler) DeleteHealthResource(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "Resource not found")
	if !ok {
		return
	}

	if err := h.resourceUsecase.DeleteHealthResource(r.Context(), caller, id); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, "Resource removed")
}
