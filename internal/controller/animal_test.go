package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duhandrade22/vet-system/vetapi"
)

func animalBackend(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /animals/a1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(vetapi.Animal{ID: "a1", Name: "Rex", Species: "dog", OwnerID: "o7"})
	})
	mux.HandleFunc("GET /records", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]vetapi.Record{
			{ID: "r1", AnimalID: "a1", Notes: "checkup", AttendedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)},
			{ID: "r2", AnimalID: "a1", Notes: "vaccine", AttendedAt: time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)},
			{ID: "r3", AnimalID: "a2", Notes: "other animal", AttendedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		})
	})
	return mux
}

func TestAnimalController_Load(t *testing.T) {
	client, _ := newBackend(t, animalBackend(t))
	ctrl := NewAnimal("a1", client, &fakeNotifier{}, &fakePrompter{}, &fakeNavigator{})

	ctrl.Load(context.Background())

	assert.False(t, ctrl.Loading)
	require.NotNil(t, ctrl.Animal)
	assert.Equal(t, "Rex", ctrl.Animal.Name)
	require.Len(t, ctrl.Records, 2)
	// Most recent visit first.
	assert.Equal(t, "r2", ctrl.Records[0].ID)
	assert.Equal(t, "r1", ctrl.Records[1].ID)
}

func TestAnimalController_SubmitRecord_MissingNotesBlocksNetwork(t *testing.T) {
	client, requests := newBackend(t, animalBackend(t))
	notify := &fakeNotifier{}
	ctrl := NewAnimal("a1", client, notify, &fakePrompter{}, &fakeNavigator{})

	ctrl.OpenCreateRecord()
	ctrl.Form.Weight = "4.2"
	ctrl.Form.Medications = "antibiotic"
	ctrl.Form.Dosage = "5mg"
	ctrl.Form.AttendedAt = "2026-03-05T14:30"
	// Notes missing.

	err := ctrl.SubmitRecord(context.Background())
	require.Error(t, err)
	assert.Zero(t, requests.Load(), "validation failure must not reach the network")
	assert.True(t, ctrl.ModalOpen)
	require.NotEmpty(t, notify.errors)
	assert.Contains(t, notify.errors[0], "Notes")
}

func TestAnimalController_SubmitRecord_Create(t *testing.T) {
	var created map[string]any

	mux := animalBackend(t)
	mux.HandleFunc("POST /records", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&created)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(vetapi.Record{ID: "r9", AnimalID: "a1"})
	})

	client, _ := newBackend(t, mux)
	ctrl := NewAnimal("a1", client, &fakeNotifier{}, &fakePrompter{}, &fakeNavigator{})

	ctrl.OpenCreateRecord()
	ctrl.Form.Weight = "4.2"
	ctrl.Form.Medications = "antibiotic"
	ctrl.Form.Dosage = "5mg"
	ctrl.Form.Notes = "recovering well"
	ctrl.Form.AttendedAt = "2026-03-05T14:30"

	require.NoError(t, ctrl.SubmitRecord(context.Background()))

	assert.Equal(t, "a1", created["animalId"])
	assert.Equal(t, "recovering well", created["notes"])

	// The local input value is normalized to a full timestamp.
	attended, err := time.Parse(time.RFC3339, created["attendedAt"].(string))
	require.NoError(t, err)
	local := time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)
	assert.True(t, attended.Equal(local))

	assert.False(t, ctrl.ModalOpen)
}

func TestAnimalController_OpenEditRecord_NormalizesTimestamp(t *testing.T) {
	client, _ := newBackend(t, animalBackend(t))
	ctrl := NewAnimal("a1", client, &fakeNotifier{}, &fakePrompter{}, &fakeNavigator{})

	attended := time.Date(2026, 3, 5, 14, 30, 0, 0, time.Local)
	ctrl.OpenEditRecord(vetapi.Record{
		ID:         "r1",
		AnimalID:   "a1",
		Weight:     "4.2",
		AttendedAt: attended.UTC(),
	})

	assert.True(t, ctrl.ModalOpen)
	require.NotNil(t, ctrl.EditingRecord)
	assert.Equal(t, "2026-03-05T14:30", ctrl.Form.AttendedAt)
}

func TestAnimalController_DeleteAnimal_NavigatesByAnimalsOwner(t *testing.T) {
	mux := animalBackend(t)
	mux.HandleFunc("DELETE /animals/a1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newBackend(t, mux)
	nav := &fakeNavigator{}
	ctrl := NewAnimal("a1", client, &fakeNotifier{}, &fakePrompter{answer: true}, nav)
	ctrl.Load(context.Background())
	require.NotNil(t, ctrl.Animal)

	ctrl.DeleteAnimal(context.Background())

	// Destination comes from the animal's own relation (o7), not from
	// whatever owner page the user came from.
	assert.Equal(t, []string{"/owners/o7"}, nav.routes)
}

func TestAnimalController_DeleteRecord_Reloads(t *testing.T) {
	mux := animalBackend(t)
	deleted := false
	mux.HandleFunc("DELETE /records/r1", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newBackend(t, mux)
	ctrl := NewAnimal("a1", client, &fakeNotifier{}, &fakePrompter{answer: true}, &fakeNavigator{})
	ctrl.Load(context.Background())

	ctrl.DeleteRecord(context.Background(), vetapi.Record{ID: "r1", AnimalID: "a1"})

	assert.True(t, deleted)
	require.NotNil(t, ctrl.Animal, "list reloads after a child delete")
}
