package api

import "baladiya/pkg/types"

// Input bodies, validated before any handler logic runs. The validate
// tags mirror what the route table accepts; anything the server derives
// itself (ids, owner, initial status) is deliberately absent.

type RegisterInput struct {
	FullName string     `json:"fullName" validate:"required,max=200"`
	CIN      string     `json:"cin" validate:"required,max=40"`
	Password string     `json:"password" validate:"required,min=4"`
	Role     types.Role `json:"role,omitempty" validate:"omitempty,oneof=citizen admin"`
}

type LoginInput struct {
	CIN      string `json:"cin" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateRequestInput struct {
	Type string `json:"type" validate:"required,max=200"`
}

type UpdateRequestStatusInput struct {
	Status types.RequestStatus `json:"status" validate:"required,oneof=Pending Approved Ready Rejected"`
}

type AttachRequestFileInput struct {
	AttachmentURL string `json:"attachmentUrl" validate:"required,max=2000"`
}

type UpdateUserRoleInput struct {
	Role types.Role `json:"role" validate:"required,oneof=citizen admin"`
}

type CreateReportInput struct {
	Category    string  `json:"category" validate:"required,max=100"`
	Location    string  `json:"location" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,max=2000"`
}

type UpdateReportStatusInput struct {
	Status types.ReportStatus `json:"status" validate:"required,oneof=Pending 'In Progress' Resolved"`
}

type CreateAnnouncementInput struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,max=2000"`
}
