package converter

import (
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
)

func CreateCarePlanRequestToEntity(req *dto.CreateCarePlanRequest, ownerID uuid.UUID) *entity.CarePlan {
	plan := &entity.CarePlan{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.CarePlanStatusActive,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Ptr(),
		Goals:       goalsFromPayload(req.Goals),
		Tasks:       tasksFromPayload(req.Tasks),
		Medications: prescriptionsFromPayload(req.Medications),
	}
	if req.Status != "" {
		plan.Status = entity.CarePlanStatus(req.Status)
	}
	if req.AssignedBy != nil {
		plan.AssignedBy = assignedByFromPayload(req.AssignedBy)
	}
	if req.Progress != nil {
		plan.Progress = *req.Progress
	}
	return plan
}

// MergeCarePlan copies the provided fields of req onto plan. An empty endDate clears it.
func MergeCarePlan(plan *entity.CarePlan, req *dto.UpdateCarePlanRequest) {
	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Status != nil {
		plan.Status = entity.CarePlanStatus(*req.Status)
	}
	if req.StartDate != nil && !req.StartDate.IsZero() {
		plan.StartDate = req.StartDate.Time
	}
	if req.EndDate != nil {
		plan.EndDate = req.EndDate.Ptr()
	}
	if req.Goals != nil {
		plan.Goals = goalsFromPayload(req.Goals)
	}
	if req.Tasks != nil {
		plan.Tasks = tasksFromPayload(req.Tasks)
	}
	if req.Medications != nil {
		plan.Medications = prescriptionsFromPayload(req.Medications)
	}
	if req.AssignedBy != nil {
		plan.AssignedBy = assignedByFromPayload(req.AssignedBy)
	}
	if req.Progress != nil {
		plan.Progress = *req.Progress
	}
}

func goalsFromPayload(payload []dto.GoalPayload) []entity.Goal {
	goals := make([]entity.Goal, len(payload))
	for i, g := range payload {
		goals[i] = entity.Goal{
			Title:         g.Title,
			Description:   g.Description,
			TargetDate:    g.TargetDate.Ptr(),
			Completed:     g.Completed,
			CompletedDate: g.CompletedDate.Ptr(),
		}
	}
	return goals
}

func tasksFromPayload(payload []dto.TaskPayload) []entity.Task {
	tasks := make([]entity.Task, len(payload))
	for i, t := range payload {
		tasks[i] = entity.Task{
			Title:         t.Title,
			Description:   t.Description,
			Frequency:     t.Frequency,
			DueDate:       t.DueDate.Ptr(),
			Completed:     t.Completed,
			CompletedDate: t.CompletedDate.Ptr(),
		}
	}
	return tasks
}

func prescriptionsFromPayload(payload []dto.PrescriptionPayload) []entity.Prescription {
	medications := make([]entity.Prescription, len(payload))
	for i, m := range payload {
		medications[i] = entity.Prescription{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			StartDate: m.StartDate.Ptr(),
			EndDate:   m.EndDate.Ptr(),
		}
	}
	return medications
}

func assignedByFromPayload(p *dto.AssignedByPayload) entity.AssignedBy {
	return entity.AssignedBy{
		Name: p.Name,
		Role: p.Role,
		Date: p.Date.Ptr(),
	}
}

func CarePlanToResponse(plan *entity.CarePlan) *dto.CarePlanResponse {
	if plan == nil {
		return nil
	}

	return &dto.CarePlanResponse{
		ID:          plan.ID,
		UserID:      plan.UserID,
		User:        UserToOwner(plan.User),
		Title:       plan.Title,
		Description: plan.Description,
		Status:      string(plan.Status),
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		Goals:       nonNil(plan.Goals),
		Tasks:       nonNil(plan.Tasks),
		Medications: nonNil(plan.Medications),
		AssignedBy:  plan.AssignedBy,
		Progress:    plan.Progress,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

func CarePlansToResponses(plans []entity.CarePlan) []dto.CarePlanResponse {
	responses := make([]dto.CarePlanResponse, len(plans))
	for i := range plans {
		responses[i] = *CarePlanToResponse(&plans[i])
	}
	return responses
}
