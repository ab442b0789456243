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

func recordBackend(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /records/r1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(vetapi.Record{
			ID:          "r1",
			AnimalID:    "a1",
			Weight:      "4.2",
			Medications: "antibiotic",
			Dosage:      "5mg",
			Notes:       "checkup",
			AttendedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		})
	})
	mux.HandleFunc("GET /animals/a1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(vetapi.Animal{ID: "a1", Name: "Rex", OwnerID: "o1"})
	})
	return mux
}

func TestRecordController_Load(t *testing.T) {
	client, _ := newBackend(t, recordBackend(t))
	ctrl := NewRecord("r1", client, &fakeNotifier{}, &fakePrompter{}, &fakeNavigator{})

	ctrl.Load(context.Background())

	assert.False(t, ctrl.Loading)
	require.NotNil(t, ctrl.Record)
	require.NotNil(t, ctrl.Animal)
	assert.Equal(t, "Rex", ctrl.Animal.Name)
}

func TestRecordController_SubmitUpdate(t *testing.T) {
	var patched map[string]any

	mux := recordBackend(t)
	mux.HandleFunc("PATCH /records/r1", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&patched)
		json.NewEncoder(w).Encode(vetapi.Record{ID: "r1", AnimalID: "a1"})
	})

	client, _ := newBackend(t, mux)
	ctrl := NewRecord("r1", client, &fakeNotifier{}, &fakePrompter{}, &fakeNavigator{})
	ctrl.Load(context.Background())

	ctrl.OpenEdit()
	ctrl.Form.Notes = "improving"

	require.NoError(t, ctrl.SubmitUpdate(context.Background()))

	assert.Equal(t, "improving", patched["notes"])
	_, hasAnimalID := patched["animalId"]
	assert.False(t, hasAnimalID, "updates never try to move the owning relation")
	assert.False(t, ctrl.ModalOpen)
}

func TestRecordController_Delete_NavigatesToAnimal(t *testing.T) {
	mux := recordBackend(t)
	mux.HandleFunc("DELETE /records/r1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	client, _ := newBackend(t, mux)
	nav := &fakeNavigator{}
	ctrl := NewRecord("r1", client, &fakeNotifier{}, &fakePrompter{answer: true}, nav)
	ctrl.Load(context.Background())

	ctrl.Delete(context.Background())

	assert.Equal(t, []string{"/animals/a1"}, nav.routes)
}
