package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"yoga-marketplace/internal/domain"
	classsvc "yoga-marketplace/internal/service/class"
)

// ClassCreator is satisfied by the class service, so imported rows pass the same validation
// as API submissions.
type ClassCreator interface {
	Create(ctx context.Context, in classsvc.CreateInput) (domain.InsertResult, error)
}

// CSVImporter reads class listings from a CSV file with a header row.
//
// Recognised columns: name, description, image, price, instructorName, instructorEmail,
// availableSeats, totalEnrolled, videoLink, status. Unknown columns are ignored.
type CSVImporter struct {
	reader  *csv.Reader
	classes ClassCreator
	// DefaultInstructor fills instructorEmail on rows that leave it empty.
	DefaultInstructor string
}

func NewCSVImporter(r io.Reader, classes ClassCreator) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader:  csvr,
		classes: classes,
	}
}

// Run creates one class per non-empty row and returns how many were imported. It stops at the
// first row that fails.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("read headers: name column is required")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)

		in, ok, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		if in.InstructorEmail == "" {
			in.InstructorEmail = i.DefaultInstructor
		}

		if _, err := i.classes.Create(ctx, in); err != nil {
			return imported, fmt.Errorf("line %d: create class %q: %w", line, in.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// parseRow maps a record onto a CreateInput. Blank rows report ok=false.
func parseRow(record []string, index map[string]int) (classsvc.CreateInput, bool, error) {
	in := classsvc.CreateInput{
		Name:            pick(record, index, "name"),
		Description:     pick(record, index, "description"),
		Image:           pick(record, index, "image"),
		InstructorName:  pick(record, index, "instructorName"),
		InstructorEmail: pick(record, index, "instructorEmail"),
		VideoLink:       pick(record, index, "videoLink"),
		Status:          domain.ClassStatus(strings.ToLower(pick(record, index, "status"))),
	}
	if in.Name == "" && in.InstructorEmail == "" {
		return in, false, nil
	}

	// Numbers go through the same lenient decoding as JSON payloads.
	if err := in.Price.UnmarshalJSON(quoted(record, index, "price")); err != nil {
		return in, false, fmt.Errorf("price: %w", err)
	}
	if err := in.AvailableSeats.UnmarshalJSON(quoted(record, index, "availableSeats")); err != nil {
		return in, false, fmt.Errorf("availableSeats: %w", err)
	}
	if err := in.TotalEnrolled.UnmarshalJSON(quoted(record, index, "totalEnrolled")); err != nil {
		return in, false, fmt.Errorf("totalEnrolled: %w", err)
	}
	return in, true, nil
}

func quoted(record []string, index map[string]int, key string) []byte {
	return []byte(strconv.Quote(pick(record, index, key)))
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
