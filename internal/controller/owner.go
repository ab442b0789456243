package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Duhandrade22/vet-system/internal/validate"
	"github.com/Duhandrade22/vet-system/vetapi"
)

// AnimalForm is the create/edit draft for an animal, shown in the
// owner-details modal. CustomSpecies carries a free-text species choice
// that replaces Species when filled; it never reaches the wire as its
// own field.
type AnimalForm struct {
	Name          string `validate:"required"`
	Species       string `validate:"required"`
	CustomSpecies string
	Breed         string
	OwnerID       string `validate:"required"`
}

// OwnerController drives the dashboard (owner list with search) and
// the owner-details page (owner, its animals, the animal modal, and
// the inline owner edit).
type OwnerController struct {
	ownerID string
	client  *vetapi.Client
	notify  Notifier
	prompt  Prompter
	nav     Navigator

	Loading       bool
	Owner         *vetapi.Owner
	Animals       []vetapi.Animal
	ModalOpen     bool
	EditingAnimal *vetapi.Animal
	Form          AnimalForm

	Owners         []vetapi.Owner
	FilteredOwners []vetapi.Owner

	EditingOwner bool
	ownerDraft   *vetapi.Owner
}

// NewOwner creates an owner controller. ownerID may be empty when the
// controller only backs the dashboard list.
func NewOwner(ownerID string, client *vetapi.Client, notify Notifier, prompt Prompter, nav Navigator) *OwnerController {
	return &OwnerController{
		ownerID: ownerID,
		client:  client,
		notify:  notify,
		prompt:  prompt,
		nav:     nav,
		Loading: true,
	}
}

// Load fetches the owner and its animals concurrently. Failures are
// surfaced as a notification; Loading is cleared either way so the view
// never hangs.
func (c *OwnerController) Load(ctx context.Context) {
	defer func() { c.Loading = false }()

	var (
		owner   *vetapi.Owner
		animals []vetapi.Animal
		oErr    error
		aErr    error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		owner, oErr = c.client.Owners.Get(ctx, c.ownerID)
	}()
	go func() {
		defer wg.Done()
		animals, aErr = c.client.Animals.ListByOwner(ctx, c.ownerID)
	}()
	wg.Wait()

	if oErr != nil || aErr != nil {
		err := oErr
		if err == nil {
			err = aErr
		}
		c.notify.Error(errMessage(err, "Failed to load data"))
		return
	}

	c.Owner = owner
	c.Animals = animals
}

// LoadOwners fetches the full owner list for the dashboard.
func (c *OwnerController) LoadOwners(ctx context.Context) {
	defer func() { c.Loading = false }()

	owners, err := c.client.Owners.List(ctx)
	if err != nil {
		c.notify.Error(errMessage(err, "Failed to load owners"))
		return
	}
	c.Owners = owners
	c.FilteredOwners = owners
}

// Filter narrows the dashboard list by name, phone, or email. An empty
// query restores the full list. Wrap with Debounce when wiring to a
// search input.
func (c *OwnerController) Filter(query string) {
	if query == "" {
		c.FilteredOwners = c.Owners
		return
	}

	q := strings.ToLower(query)
	filtered := make([]vetapi.Owner, 0, len(c.Owners))
	for _, o := range c.Owners {
		if strings.Contains(strings.ToLower(o.Name), q) ||
			strings.Contains(o.Phone, query) ||
			strings.Contains(strings.ToLower(o.Email), q) {
			filtered = append(filtered, o)
		}
	}
	c.FilteredOwners = filtered
}

// OpenCreateAnimal resets the modal for a new animal, pre-filling the
// owning relation.
func (c *OwnerController) OpenCreateAnimal() {
	c.EditingAnimal = nil
	c.Form = AnimalForm{OwnerID: c.ownerID}
	c.ModalOpen = true
}

// OpenEditAnimal seeds the modal draft from an existing animal.
func (c *OwnerController) OpenEditAnimal(animal vetapi.Animal) {
	c.EditingAnimal = &animal
	c.Form = AnimalForm{
		Name:    animal.Name,
		Species: animal.Species,
		Breed:   animal.Breed,
		OwnerID: animal.OwnerID,
	}
	c.ModalOpen = true
}

// SubmitAnimal validates the draft and creates or updates the animal
// depending on the editing target. On success the modal closes and the
// page reloads; on failure the error is returned so the caller keeps
// the modal open for correction.
func (c *OwnerController) SubmitAnimal(ctx context.Context) error {
	form := c.Form
	if form.CustomSpecies != "" {
		form.Species = form.CustomSpecies
		form.CustomSpecies = ""
	}

	if err := validate.Form(form); err != nil {
		c.notify.Error(err.Error())
		return err
	}

	if c.EditingAnimal != nil {
		_, err := c.client.Animals.Update(ctx, c.EditingAnimal.ID, vetapi.UpdateAnimalRequest{
			Name:    &form.Name,
			Species: &form.Species,
			Breed:   &form.Breed,
		})
		if err != nil {
			c.notify.Error(errMessage(err, "Failed to save animal"))
			return err
		}
		c.notify.Success("Animal updated successfully!")
	} else {
		_, err := c.client.Animals.Create(ctx, vetapi.CreateAnimalRequest{
			Name:    form.Name,
			Species: form.Species,
			Breed:   form.Breed,
			OwnerID: form.OwnerID,
		})
		if err != nil {
			c.notify.Error(errMessage(err, "Failed to save animal"))
			return err
		}
		c.notify.Success("Animal registered successfully!")
	}

	c.ModalOpen = false
	c.Load(ctx)
	return nil
}

// DeleteOwner removes the primary entity after confirmation and
// navigates back to the dashboard.
func (c *OwnerController) DeleteOwner(ctx context.Context) {
	if c.Owner == nil {
		return
	}
	if !c.prompt.Confirm(fmt.Sprintf("Delete owner %q?", c.Owner.Name)) {
		return
	}

	if err := c.client.Owners.Delete(ctx, c.Owner.ID); err != nil {
		c.notify.Error(errMessage(err, "Failed to delete owner"))
		return
	}

	c.notify.Success("Owner deleted successfully!")
	c.nav.NavigateTo("/")
}

// DeleteAnimal removes a child animal after confirmation and reloads
// the current page.
func (c *OwnerController) DeleteAnimal(ctx context.Context, animal vetapi.Animal) {
	if !c.prompt.Confirm(fmt.Sprintf("Delete animal %q?", animal.Name)) {
		return
	}

	if err := c.client.Animals.Delete(ctx, animal.ID); err != nil {
		c.notify.Error(errMessage(err, "Failed to delete animal"))
		return
	}

	c.notify.Success("Animal deleted successfully!")
	c.Load(ctx)
}

// StartEditOwner snapshots the current owner so an in-place edit can be
// cancelled without a refetch.
func (c *OwnerController) StartEditOwner() {
	if c.Owner == nil {
		return
	}
	draft := *c.Owner
	c.ownerDraft = &draft
	c.EditingOwner = true
}

// CancelEditOwner discards in-place edits and restores the snapshot.
func (c *OwnerController) CancelEditOwner() {
	if c.ownerDraft != nil {
		c.Owner = c.ownerDraft
	}
	c.ownerDraft = nil
	c.EditingOwner = false
}

// SaveOwner submits only the editable subset of owner fields, then
// reloads the authoritative copy.
func (c *OwnerController) SaveOwner(ctx context.Context) {
	if c.Owner == nil {
		return
	}

	c.Loading = true
	_, err := c.client.Owners.Update(ctx, c.Owner.ID, vetapi.UpdateOwnerRequest{
		Name:  &c.Owner.Name,
		Phone: &c.Owner.Phone,
		Email: &c.Owner.Email,
		City:  &c.Owner.City,
		State: &c.Owner.State,
	})
	if err != nil {
		c.Loading = false
		c.notify.Error(errMessage(err, "Failed to update owner"))
		return
	}

	c.EditingOwner = false
	c.ownerDraft = nil
	c.Load(ctx)
	c.notify.Success("Owner updated successfully!")
}
