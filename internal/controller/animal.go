package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Duhandrade22/vet-system/internal/validate"
	"github.com/Duhandrade22/vet-system/vetapi"
)

// datetimeLocal is the format of the visit date/time input.
const datetimeLocal = "2006-01-02T15:04"

// RecordForm is the create/edit draft for a medical record. All fields
// are required; AttendedAt is held in the local datetime-input format
// and converted at submit time.
type RecordForm struct {
	Weight      string `validate:"required"`
	Medications string `validate:"required"`
	Dosage      string `validate:"required"`
	Notes       string `validate:"required"`
	AttendedAt  string `validate:"required,datetime=2006-01-02T15:04"`
	AnimalID    string `validate:"required"`
}

// AnimalController drives the animal-details page: the animal, its
// medical records (most recent first), and the record modal.
type AnimalController struct {
	animalID string
	client   *vetapi.Client
	notify   Notifier
	prompt   Prompter
	nav      Navigator

	Loading       bool
	Animal        *vetapi.Animal
	Records       []vetapi.Record
	ModalOpen     bool
	EditingRecord *vetapi.Record
	Form          RecordForm
}

// NewAnimal creates an animal-details controller.
func NewAnimal(animalID string, client *vetapi.Client, notify Notifier, prompt Prompter, nav Navigator) *AnimalController {
	return &AnimalController{
		animalID: animalID,
		client:   client,
		notify:   notify,
		prompt:   prompt,
		nav:      nav,
		Loading:  true,
	}
}

// Load fetches the animal and its records concurrently. Failures are
// surfaced as a notification; Loading is cleared either way.
func (c *AnimalController) Load(ctx context.Context) {
	defer func() { c.Loading = false }()

	var (
		animal  *vetapi.Animal
		records []vetapi.Record
		aErr    error
		rErr    error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		animal, aErr = c.client.Animals.Get(ctx, c.animalID)
	}()
	go func() {
		defer wg.Done()
		records, rErr = c.client.Records.ListByAnimal(ctx, c.animalID)
	}()
	wg.Wait()

	if aErr != nil || rErr != nil {
		err := aErr
		if err == nil {
			err = rErr
		}
		c.notify.Error(errMessage(err, "Failed to load data"))
		return
	}

	c.Animal = animal
	c.Records = records
}

// OpenCreateRecord resets the modal for a new record, pre-filling the
// owning relation.
func (c *AnimalController) OpenCreateRecord() {
	c.EditingRecord = nil
	c.Form = RecordForm{AnimalID: c.animalID}
	c.ModalOpen = true
}

// OpenEditRecord seeds the modal draft from an existing record, with
// the visit timestamp normalized to the local input format.
func (c *AnimalController) OpenEditRecord(record vetapi.Record) {
	c.EditingRecord = &record
	c.Form = RecordForm{
		Weight:      record.Weight,
		Medications: record.Medications,
		Dosage:      record.Dosage,
		Notes:       record.Notes,
		AttendedAt:  record.AttendedAt.Local().Format(datetimeLocal),
		AnimalID:    record.AnimalID,
	}
	c.ModalOpen = true
}

// SubmitRecord validates the draft and creates or updates the record.
// Validation failures never reach the network. On success the modal
// closes and the page reloads; on failure the error is returned so the
// caller keeps the modal open.
func (c *AnimalController) SubmitRecord(ctx context.Context) error {
	if err := validate.Form(c.Form); err != nil {
		c.notify.Error(err.Error())
		return err
	}

	attendedAt, err := time.ParseInLocation(datetimeLocal, c.Form.AttendedAt, time.Local)
	if err != nil {
		c.notify.Error("Visit date/time is invalid")
		return err
	}
	attendedAt = attendedAt.UTC()

	if c.EditingRecord != nil {
		_, err = c.client.Records.Update(ctx, c.EditingRecord.ID, vetapi.UpdateRecordRequest{
			Weight:      &c.Form.Weight,
			Medications: &c.Form.Medications,
			Dosage:      &c.Form.Dosage,
			Notes:       &c.Form.Notes,
			AttendedAt:  &attendedAt,
		})
		if err != nil {
			c.notify.Error(errMessage(err, "Failed to save record"))
			return err
		}
		c.notify.Success("Record updated successfully!")
	} else {
		_, err = c.client.Records.Create(ctx, vetapi.CreateRecordRequest{
			Weight:      c.Form.Weight,
			Medications: c.Form.Medications,
			Dosage:      c.Form.Dosage,
			Notes:       c.Form.Notes,
			AttendedAt:  attendedAt,
			AnimalID:    c.Form.AnimalID,
		})
		if err != nil {
			c.notify.Error(errMessage(err, "Failed to save record"))
			return err
		}
		c.notify.Success("Record registered successfully!")
	}

	c.ModalOpen = false
	c.Load(ctx)
	return nil
}

// DeleteAnimal removes the primary entity after confirmation and
// navigates to the owning owner's page. The destination uses the
// animal's own relation, not whatever owner happens to be on screen.
func (c *AnimalController) DeleteAnimal(ctx context.Context) {
	if c.Animal == nil {
		return
	}
	if !c.prompt.Confirm(fmt.Sprintf("Delete animal %q?", c.Animal.Name)) {
		return
	}

	if err := c.client.Animals.Delete(ctx, c.Animal.ID); err != nil {
		c.notify.Error(errMessage(err, "Failed to delete animal"))
		return
	}

	c.notify.Success("Animal deleted successfully!")
	c.nav.NavigateTo(fmt.Sprintf("/owners/%s", c.Animal.OwnerID))
}

// DeleteRecord removes a child record after confirmation and reloads.
func (c *AnimalController) DeleteRecord(ctx context.Context, record vetapi.Record) {
	if !c.prompt.Confirm("Delete this medical record?") {
		return
	}

	if err := c.client.Records.Delete(ctx, record.ID); err != nil {
		c.notify.Error(errMessage(err, "Failed to delete record"))
		return
	}

	c.notify.Success("Record deleted successfully!")
	c.Load(ctx)
}
