package vetapi

import (
	"context"
	"fmt"
	"sort"
)

// RecordsService handles medical record CRUD operations.
type RecordsService struct {
	client *Client
}

// List returns all medical records.
func (s *RecordsService) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := s.client.get(ctx, "/records", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get retrieves a medical record by ID.
func (s *RecordsService) Get(ctx context.Context, id string) (*Record, error) {
	var record Record
	if err := s.client.get(ctx, fmt.Sprintf("/records/%s", id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create creates a new medical record and returns the authoritative
// server copy.
func (s *RecordsService) Create(ctx context.Context, req CreateRecordRequest) (*Record, error) {
	var record Record
	if err := s.client.post(ctx, "/records", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update applies a partial update. Only the fields set in req appear in
// the request payload.
func (s *RecordsService) Update(ctx context.Context, id string, req UpdateRecordRequest) (*Record, error) {
	var record Record
	if err := s.client.patch(ctx, fmt.Sprintf("/records/%s", id), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a medical record.
func (s *RecordsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/records/%s", id))
}

// ListByAnimal returns the records for the given animal, most recent
// visit first. Callers rely on this ordering for display; it is part of
// the service contract, not a presentation detail.
func (s *RecordsService) ListByAnimal(ctx context.Context, animalID string) ([]Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.AnimalID == animalID {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].AttendedAt.After(filtered[j].AttendedAt)
	})

	return filtered, nil
}
