package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"yoga-marketplace/internal/domain"
	classrepo "yoga-marketplace/internal/repository/class"
	classsvc "yoga-marketplace/internal/service/class"
)

type stubCreator struct {
	items []classsvc.CreateInput
	err   error
}

func (s *stubCreator) Create(_ context.Context, in classsvc.CreateInput) (domain.InsertResult, error) {
	if s.err != nil {
		return domain.InsertResult{}, s.err
	}
	s.items = append(s.items, in)
	return domain.InsertResult{Acknowledged: true, InsertedID: "id"}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := "\ufeffname,description,price,instructorEmail,availableSeats,videoLink,status,legacyColumn\n" +
		"Sunrise Vinyasa,Morning flow,25.5,ana@yoga.test,12,https://video.test/1,Approved,x\n" +
		",,,,,,,\n" +
		"Yin Deep Stretch,Slow,\"18\",,\"8\",,,\n"

	repo := &stubCreator{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)
	imp.DefaultInstructor = "studio@yoga.test"

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 || len(repo.items) != 2 {
		t.Fatalf("expected 2 classes imported, got %d (%d saved)", count, len(repo.items))
	}

	first := repo.items[0]
	if first.Name != "Sunrise Vinyasa" || first.Price != 25.5 || first.AvailableSeats != 12 || first.Status != domain.StatusApproved {
		t.Fatalf("unexpected class data: %+v", first)
	}
	second := repo.items[1]
	if second.InstructorEmail != "studio@yoga.test" || second.AvailableSeats != 8 || second.Price != 18 || second.Status != "" {
		t.Fatalf("unexpected class data: %+v", second)
	}
}

func TestCSVImporter_ValidatesThroughService(t *testing.T) {
	classes := classrepo.NewMemory()
	svc := classsvc.New(classes, false)
	csvData := "name,instructorEmail,price\n" +
		"Hatha Basics,ana@yoga.test,10\n" +
		"No Email,,10\n"

	count, err := NewCSVImporter(strings.NewReader(csvData), svc).Run(context.Background())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 imported before failure, got %d", count)
	}

	all, err := classes.List(context.Background(), domain.ClassFilter{})
	if err != nil || len(all) != 1 || all[0].Status != domain.StatusPending {
		t.Fatalf("unexpected stored classes %+v err=%v", all, err)
	}
}

func TestCSVImporter_BadNumber(t *testing.T) {
	csvData := "name,instructorEmail,availableSeats\nFlow,ana@yoga.test,lots\n"
	_, err := NewCSVImporter(strings.NewReader(csvData), &stubCreator{}).Run(context.Background())
	if !errors.Is(err, domain.ErrValidation) || !strings.Contains(err.Error(), "availableSeats") {
		t.Fatalf("expected availableSeats validation error, got %v", err)
	}
}

func TestCSVImporter_RequiresNameColumn(t *testing.T) {
	_, err := NewCSVImporter(strings.NewReader("title,price\nx,1\n"), &stubCreator{}).Run(context.Background())
	if err == nil {
		t.Fatalf("expected missing header error")
	}
}
