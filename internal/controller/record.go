package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/Duhandrade22/vet-system/internal/validate"
	"github.com/Duhandrade22/vet-system/vetapi"
)

// RecordController drives the record-details page: one medical record
// plus the animal it belongs to, with an edit modal.
type RecordController struct {
	recordID string
	client   *vetapi.Client
	notify   Notifier
	prompt   Prompter
	nav      Navigator

	Loading   bool
	Record    *vetapi.Record
	Animal    *vetapi.Animal
	ModalOpen bool
	Form      RecordForm
}

// NewRecord creates a record-details controller.
func NewRecord(recordID string, client *vetapi.Client, notify Notifier, prompt Prompter, nav Navigator) *RecordController {
	return &RecordController{
		recordID: recordID,
		client:   client,
		notify:   notify,
		prompt:   prompt,
		nav:      nav,
		Loading:  true,
	}
}

// Load fetches the record and then its animal. The second fetch depends
// on the first, so this load is sequential rather than batched.
func (c *RecordController) Load(ctx context.Context) {
	defer func() { c.Loading = false }()

	record, err := c.client.Records.Get(ctx, c.recordID)
	if err != nil {
		c.notify.Error(errMessage(err, "Failed to load record"))
		return
	}

	animal, err := c.client.Animals.Get(ctx, record.AnimalID)
	if err != nil {
		c.notify.Error(errMessage(err, "Failed to load record"))
		return
	}

	c.Record = record
	c.Animal = animal
}

// OpenEdit seeds the modal draft from the loaded record.
func (c *RecordController) OpenEdit() {
	if c.Record == nil {
		return
	}
	c.Form = RecordForm{
		Weight:      c.Record.Weight,
		Medications: c.Record.Medications,
		Dosage:      c.Record.Dosage,
		Notes:       c.Record.Notes,
		AttendedAt:  c.Record.AttendedAt.Local().Format(datetimeLocal),
		AnimalID:    c.Record.AnimalID,
	}
	c.ModalOpen = true
}

// SubmitUpdate validates the draft and patches the record. On success
// the modal closes and the page reloads; on failure the error is
// returned so the caller keeps the modal open.
func (c *RecordController) SubmitUpdate(ctx context.Context) error {
	if c.Record == nil {
		return nil
	}

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

	_, err = c.client.Records.Update(ctx, c.Record.ID, vetapi.UpdateRecordRequest{
		Weight:      &c.Form.Weight,
		Medications: &c.Form.Medications,
		Dosage:      &c.Form.Dosage,
		Notes:       &c.Form.Notes,
		AttendedAt:  &attendedAt,
	})
	if err != nil {
		c.notify.Error(errMessage(err, "Failed to update record"))
		return err
	}

	c.notify.Success("Record updated successfully!")
	c.ModalOpen = false
	c.Load(ctx)
	return nil
}

// Delete removes the record after confirmation and navigates back to
// the owning animal's page.
func (c *RecordController) Delete(ctx context.Context) {
	if c.Record == nil {
		return
	}
	if !c.prompt.Confirm("Delete this medical record?") {
		return
	}

	if err := c.client.Records.Delete(ctx, c.Record.ID); err != nil {
		c.notify.Error(errMessage(err, "Failed to delete record"))
		return
	}

	c.notify.Success("Record deleted successfully!")
	c.nav.NavigateTo(fmt.Sprintf("/animals/%s", c.Record.AnimalID))
}
