package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pulsewatch/pulsewatch/internal/shared"
)

// CreateInput carries the fields required to append a telemetry record.
type CreateInput struct {
	Date     string `validate:"required"`
	CPUUsage string `validate:"required"`
	CPUTemp  string `validate:"required"`
}

// Service handles telemetry business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// dateFormats lists the accepted layouts for the free-text date field.
var dateFormats = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

func validateDate(value string) error {
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: unparseable date %q", shared.ErrValidation, value)
}

// Create validates the input and appends a new record. Malformed dates are
// rejected; once a date parses, the text is stored as provided.
func (s *Service) Create(ctx context.Context, input CreateInput) (Record, error) {
	if err := s.validate.Struct(input); err != nil {
		return Record{}, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}
	if err := validateDate(input.Date); err != nil {
		return Record{}, err
	}
	return s.repo.Insert(ctx, Record{
		Date:     input.Date,
		CPUUsage: input.CPUUsage,
		CPUTemp:  input.CPUTemp,
	})
}

// List returns all records in store-native order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.ListAll(ctx)
}
