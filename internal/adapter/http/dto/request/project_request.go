package request

import "agency_ops/internal/usecase"

// UpdateProjectRequest is a partial update; omitted fields are left untouched.
type UpdateProjectRequest struct {
	GlobalStatus    *string `json:"global_status"`
	ProgressPercent *int    `json:"progress_percent"`
	ECD             *string `json:"ecd"`
}

func (r UpdateProjectRequest) ToInput() usecase.ProjectStatusInput {
	return usecase.ProjectStatusInput{
		GlobalStatus:    r.GlobalStatus,
		ProgressPercent: r.ProgressPercent,
		ECD:             r.ECD,
	}
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}
