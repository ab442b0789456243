package vetapi

import (
	"context"
	"fmt"
)

// AnimalsService handles animal CRUD operations.
type AnimalsService struct {
	client *Client
}

// List returns all animals.
func (s *AnimalsService) List(ctx context.Context) ([]Animal, error) {
	var animals []Animal
	if err := s.client.get(ctx, "/animals", &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// Get retrieves an animal by ID.
func (s *AnimalsService) Get(ctx context.Context, id string) (*Animal, error) {
	var animal Animal
	if err := s.client.get(ctx, fmt.Sprintf("/animals/%s", id), &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// Create creates a new animal and returns the authoritative server copy.
func (s *AnimalsService) Create(ctx context.Context, req CreateAnimalRequest) (*Animal, error) {
	var animal Animal
	if err := s.client.post(ctx, "/animals", req, &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// Update applies a partial update. Only the fields set in req appear in
// the request payload.
func (s *AnimalsService) Update(ctx context.Context, id string, req UpdateAnimalRequest) (*Animal, error) {
	var animal Animal
	if err := s.client.patch(ctx, fmt.Sprintf("/animals/%s", id), req, &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// Delete removes an animal.
func (s *AnimalsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/animals/%s", id))
}

// ListByOwner returns the animals belonging to the given owner. The
// backend exposes no relational query for this, so the filtering is
// done client-side over the full collection, preserving the server's
// relative order.
func (s *AnimalsService) ListByOwner(ctx context.Context, ownerID string) ([]Animal, error) {
	animals, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Animal, 0, len(animals))
	for _, a := range animals {
		if a.OwnerID == ownerID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
