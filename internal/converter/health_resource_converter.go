package converter

import (
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
)

func CreateHealthResourceRequestToEntity(req *dto.CreateHealthResourceRequest) *entity.HealthResource {
	return &entity.HealthResource{
		Title:             req.Title,
		Description:       req.Description,
		Category:          entity.ResourceCategory(req.Category),
		Tags:              nonNil(req.Tags),
		Content:           req.Content,
		URL:               req.URL,
		ImageURL:          req.ImageURL,
		Author:            req.Author,
		PublishDate:       req.PublishDate.Ptr(),
		Difficulty:        req.Difficulty,
		Duration:          req.Duration,
		Featured:          req.Featured,
		RelatedConditions: nonNil(req.RelatedConditions),
	}
}

// MergeHealthResource copies the provided fields of req onto resource.
// Views and likes only change through their counters.
func MergeHealthResource(resource *entity.HealthResource, req *dto.UpdateHealthResourceRequest) {
	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Category != nil {
		resource.Category = entity.ResourceCategory(*req.Category)
	}
	if req.Tags != nil {
		resource.Tags = req.Tags
	}
	if req.Content != nil {
		resource.Content = *req.Content
	}
	if req.URL != nil {
		resource.URL = *req.URL
	}
	if req.ImageURL != nil {
		resource.ImageURL = *req.ImageURL
	}
	if req.Author != nil {
		resource.Author = *req.Author
	}
	if req.PublishDate != nil {
		resource.PublishDate = req.PublishDate.Ptr()
	}
	if req.Difficulty != nil {
		resource.Difficulty = *req.Difficulty
	}
	if req.Duration != nil {
		resource.Duration = *req.Duration
	}
	if req.Featured != nil {
		resource.Featured = *req.Featured
	}
	if req.RelatedConditions != nil {
		resource.RelatedConditions = req.RelatedConditions
	}
}

func HealthResourceToResponse(resource *entity.HealthResource) *dto.HealthResourceResponse {
	if resource == nil {
		return nil
	}

	return &dto.HealthResourceResponse{
		ID:                resource.ID,
		Title:             resource.Title,
		Description:       resource.Description,
		Category:          string(resource.Category),
		Tags:              nonNil(resource.Tags),
		Content:           resource.Content,
		URL:               resource.URL,
		ImageURL:          resource.ImageURL,
		Author:            resource.Author,
		PublishDate:       resource.PublishDate,
		Difficulty:        resource.Difficulty,
		Duration:          resource.Duration,
		Featured:          resource.Featured,
		RelatedConditions: nonNil(resource.RelatedConditions),
		Views:             resource.Views,
		Likes:             resource.Likes,
		CreatedAt:         resource.CreatedAt,
		UpdatedAt:         resource.UpdatedAt,
	}
}

func HealthResourcesToResponses(resources []entity.HealthResource) []dto.HealthResourceResponse {
	responses := make([]dto.HealthResourceResponse, len(resources))
	for i := range resources {
		responses[i] = *HealthResourceToResponse(&resources[i])
	}
	return responses
}
