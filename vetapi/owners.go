package vetapi

import (
	"context"
	"fmt"
)

// OwnersService handles owner CRUD operations.
type OwnersService struct {
	client *Client
}

// List returns all owners visible to the authenticated user.
func (s *OwnersService) List(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	if err := s.client.get(ctx, "/owners", &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// Get retrieves an owner by ID.
func (s *OwnersService) Get(ctx context.Context, id string) (*Owner, error) {
	var owner Owner
	if err := s.client.get(ctx, fmt.Sprintf("/owners/%s", id), &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Create creates a new owner and returns the authoritative server copy.
func (s *OwnersService) Create(ctx context.Context, req CreateOwnerRequest) (*Owner, error) {
	var owner Owner
	if err := s.client.post(ctx, "/owners", req, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Update applies a partial update. Only the fields set in req appear in
// the request payload; everything else is left untouched server-side.
func (s *OwnersService) Update(ctx context.Context, id string, req UpdateOwnerRequest) (*Owner, error) {
	var owner Owner
	if err := s.client.patch(ctx, fmt.Sprintf("/owners/%s", id), req, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// Delete removes an owner.
func (s *OwnersService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, fmt.Sprintf("/owners/%s", id))
}
