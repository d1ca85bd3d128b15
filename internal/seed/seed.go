package seed

import (
	"context"
	"fmt"

	"yoga-marketplace/internal/domain"
	classsvc "yoga-marketplace/internal/service/class"
	"yoga-marketplace/internal/validation"
)

// ClassStore is the part of the class service the seeder needs.
type ClassStore interface {
	ListByInstructor(ctx context.Context, email string) ([]domain.Class, error)
	Create(ctx context.Context, in classsvc.CreateInput) (domain.InsertResult, error)
}

var demoClasses = []classsvc.CreateInput{
	{
		Name:            "Sunrise Vinyasa Flow",
		Description:     "A brisk morning flow linking breath and movement.",
		Image:           "https://images.yoga.test/vinyasa.jpg",
		Price:           validation.Float(25),
		InstructorName:  "Ana Ortiz",
		InstructorEmail: "ana@yoga.test",
		AvailableSeats:  validation.Int(20),
		VideoLink:       "https://video.yoga.test/vinyasa",
		Status:          domain.StatusApproved,
	},
	{
		Name:            "Yin Deep Stretch",
		Description:     "Long passive holds for the connective tissue.",
		Image:           "https://images.yoga.test/yin.jpg",
		Price:           validation.Float(18.5),
		InstructorName:  "Ana Ortiz",
		InstructorEmail: "ana@yoga.test",
		AvailableSeats:  validation.Int(12),
		VideoLink:       "https://video.yoga.test/yin",
		Status:          domain.StatusApproved,
	},
	{
		Name:            "Power Ashtanga",
		Description:     "Primary series at a strong pace.",
		Price:           validation.Float(30),
		InstructorName:  "Kai Mendes",
		InstructorEmail: "kai@yoga.test",
		AvailableSeats:  validation.Int(15),
		VideoLink:       "https://video.yoga.test/ashtanga",
	},
}

// Apply inserts demo classes for manual testing and returns how many were created. Classes
// already present for the same instructor and name are left alone.
func Apply(ctx context.Context, classes ClassStore) (int, error) {
	created := 0
	existing := map[string]map[string]bool{}
	for _, in := range demoClasses {
		names, ok := existing[in.InstructorEmail]
		if !ok {
			list, err := classes.ListByInstructor(ctx, in.InstructorEmail)
			if err != nil {
				return created, fmt.Errorf("list classes of %s: %w", in.InstructorEmail, err)
			}
			names = make(map[string]bool, len(list))
			for _, c := range list {
				names[c.Name] = true
			}
			existing[in.InstructorEmail] = names
		}
		if names[in.Name] {
			continue
		}
		if _, err := classes.Create(ctx, in); err != nil {
			return created, fmt.Errorf("create class %s: %w", in.Name, err)
		}
		names[in.Name] = true
		created++
	}
	return created, nil
}
