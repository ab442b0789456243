package vetapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

func TestOwnersService_Get(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/owners/o1" {
			t.Errorf("expected /owners/o1, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Owner{ID: "o1", Name: "Carlos", Phone: "11987654321"})
	})

	owner, err := client.Owners.Get(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.Name != "Carlos" {
		t.Errorf("expected owner Carlos, got %q", owner.Name)
	}
}

func TestOwnersService_Create(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/owners" {
			t.Errorf("expected POST /owners, got %s %s", r.Method, r.URL.Path)
		}
		var req CreateOwnerRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Owner{ID: "o2", Name: req.Name, Phone: req.Phone, UserID: "u1"})
	})

	owner, err := client.Owners.Create(context.Background(), CreateOwnerRequest{
		Name:  "Dora",
		Phone: "11912345678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.ID != "o2" {
		t.Errorf("expected server-assigned id o2, got %q", owner.ID)
	}
}

func TestAnimalsService_ListByOwner(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/animals" {
			t.Errorf("expected /animals, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Animal{
			{ID: "a1", Name: "Rex", OwnerID: "o1"},
			{ID: "a2", Name: "Mimi", OwnerID: "o2"},
			{ID: "a3", Name: "Thor", OwnerID: "o1"},
			{ID: "a4", Name: "Luna", OwnerID: "o3"},
		})
	})

	animals, err := client.Animals.ListByOwner(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(animals) != 2 {
		t.Fatalf("expected 2 animals, got %d", len(animals))
	}
	// Relative server order is preserved.
	if animals[0].ID != "a1" || animals[1].ID != "a3" {
		t.Errorf("expected [a1 a3], got [%s %s]", animals[0].ID, animals[1].ID)
	}
}

func TestRecordsService_ListByAnimal_SortsMostRecentFirst(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 10, 0, 0, 0, time.UTC)
	}

	// Deliberately shuffled input, plus a record from another animal.
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Record{
			{ID: "r2", AnimalID: "a1", AttendedAt: day(5)},
			{ID: "rX", AnimalID: "a9", AttendedAt: day(30)},
			{ID: "r1", AnimalID: "a1", AttendedAt: day(12)},
			{ID: "r3", AnimalID: "a1", AttendedAt: day(1)},
		})
	})

	records, err := client.Records.ListByAnimal(context.Background(), "a1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].AttendedAt.After(records[i-1].AttendedAt) {
			t.Errorf("records out of order at %d: %v after %v", i, records[i].AttendedAt, records[i-1].AttendedAt)
		}
	}
	if records[0].ID != "r1" || records[1].ID != "r2" || records[2].ID != "r3" {
		t.Errorf("expected [r1 r2 r3], got [%s %s %s]", records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestRecordsService_Update_PartialPayload(t *testing.T) {
	var payload map[string]interface{}

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/records/r1" {
			t.Errorf("expected PATCH /records/r1, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(Record{ID: "r1", Notes: "improving"})
	})

	notes := "improving"
	_, err := client.Records.Update(context.Background(), "r1", UpdateRecordRequest{Notes: &notes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(payload) != 1 {
		t.Fatalf("expected exactly one field, got %v", payload)
	}
	if payload["notes"] != "improving" {
		t.Errorf("expected notes field, got %v", payload)
	}
}
