package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pulsewatch/pulsewatch/internal/shared"
)

type memoryRepo struct {
	records []Record
}

func (r *memoryRepo) ListAll(ctx context.Context) ([]Record, error) {
	result := make([]Record, len(r.records))
	copy(result, r.records)
	return result, nil
}

func (r *memoryRepo) Insert(ctx context.Context, record Record) (Record, error) {
	record.ID = primitive.NewObjectID()
	r.records = append(r.records, record)
	return record, nil
}

func TestCreateThenList(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Date: "2020-01-01", CPUUsage: "42.5", CPUTemp: "70"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, created.ID, records[0].ID)
	require.Equal(t, "2020-01-01", records[0].Date)
	require.Equal(t, "42.5", records[0].CPUUsage)
	require.Equal(t, "70", records[0].CPUTemp)
}

func TestCreateMissingField(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Date: "2020-01-01", CPUUsage: "42.5"})
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Empty(t, repo.records)
}

func TestCreateMalformedDate(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Date: "not a date", CPUUsage: "42.5", CPUTemp: "70"})
	require.ErrorIs(t, err, shared.ErrValidation)
	require.Empty(t, repo.records)
}

func TestCreateAcceptedDateFormats(t *testing.T) {
	svc := NewService(&memoryRepo{})
	ctx := context.Background()

	for _, date := range []string{"2020-01-01", "2020-01-01 10:30:00", "2020-01-01T10:30:00Z"} {
		_, err := svc.Create(ctx, CreateInput{Date: date, CPUUsage: "1.5", CPUTemp: "50"})
		require.NoError(t, err, date)
	}
}
