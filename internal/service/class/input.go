package class

import (
	"strings"
	"time"

	"yoga-marketplace/internal/domain"
	"yoga-marketplace/internal/validation"
)

// CreateInput is the submission payload of a new class. Numbers may arrive as strings.
type CreateInput struct {
	Name            string             `json:"name" validate:"required,max=200"`
	Description     string             `json:"description" validate:"max=5000"`
	Image           string             `json:"image" validate:"omitempty,url"`
	Price           validation.Float   `json:"price" validate:"gte=0"`
	InstructorName  string             `json:"instructorName" validate:"max=200"`
	InstructorEmail string             `json:"instructorEmail" validate:"required,email"`
	AvailableSeats  validation.Int     `json:"availableSeats" validate:"gte=0"`
	TotalEnrolled   validation.Int     `json:"totalEnrolled" validate:"gte=0"`
	VideoLink       string             `json:"videoLink" validate:"omitempty,url"`
	Status          domain.ClassStatus `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	Submitted       *time.Time         `json:"submitted"`
}

// DetailsInput carries the fields an instructor may edit.
type DetailsInput struct {
	Name           string           `json:"name" validate:"required,max=200"`
	Description    string           `json:"description" validate:"max=5000"`
	Price          validation.Float `json:"price" validate:"gte=0"`
	AvailableSeats validation.Int   `json:"availableSeats" validate:"gte=0"`
	VideoLink      string           `json:"videoLink" validate:"omitempty,url"`
}

// StatusInput is a moderation decision.
type StatusInput struct {
	Status domain.ClassStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Reason string             `json:"reason" validate:"max=1000"`
}

func (in *CreateInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.InstructorEmail = strings.TrimSpace(in.InstructorEmail)
	in.VideoLink = strings.TrimSpace(in.VideoLink)
	in.Image = strings.TrimSpace(in.Image)
}

func (in *DetailsInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.VideoLink = strings.TrimSpace(in.VideoLink)
}

// toClass produces the typed document persisted on create.
func (in CreateInput) toClass(now time.Time) domain.Class {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	submitted := now.UTC()
	if in.Submitted != nil && !in.Submitted.IsZero() {
		submitted = in.Submitted.UTC()
	}
	return domain.Class{
		Name:            in.Name,
		Description:     in.Description,
		Image:           in.Image,
		Price:           float64(in.Price),
		InstructorName:  in.InstructorName,
		InstructorEmail: in.InstructorEmail,
		AvailableSeats:  int(in.AvailableSeats),
		TotalEnrolled:   int(in.TotalEnrolled),
		VideoLink:       in.VideoLink,
		Status:          status,
		Submitted:       submitted,
	}
}

func (in DetailsInput) toDetails() domain.ClassDetails {
	return domain.ClassDetails{
		Name:           in.Name,
		Description:    in.Description,
		Price:          float64(in.Price),
		AvailableSeats: int(in.AvailableSeats),
		VideoLink:      in.VideoLink,
	}
}
