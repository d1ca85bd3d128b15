package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus is the moderation state of a class listing.
type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusRejected ClassStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ClassStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Class is a yoga class listing submitted by an instructor.
type Class struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description" bson:"description"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	InstructorName  string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	AvailableSeats  int                `json:"availableSeats" bson:"availableSeats"`
	TotalEnrolled   int                `json:"totalEnrolled" bson:"totalEnrolled"`
	VideoLink       string             `json:"videoLink" bson:"videoLink"`
	Status          ClassStatus        `json:"status" bson:"status"`
	Reason          string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Submitted       time.Time          `json:"submitted" bson:"submitted"`
}

// ClassDetails is the set of fields an instructor edit overwrites.
type ClassDetails struct {
	Name           string
	Description    string
	Price          float64
	AvailableSeats int
	VideoLink      string
}

// ClassFilter selects classes for listing. Zero fields match everything.
type ClassFilter struct {
	Status          ClassStatus
	InstructorEmail string
}

// Matches reports whether c satisfies the filter.
func (f ClassFilter) Matches(c Class) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.InstructorEmail != "" && c.InstructorEmail != f.InstructorEmail {
		return false
	}
	return true
}
