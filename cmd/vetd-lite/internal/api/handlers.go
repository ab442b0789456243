package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Duhandrade22/vet-system/cmd/vetd-lite/internal/store"
	"github.com/Duhandrade22/vet-system/vetapi"
)

type handlers struct {
	store *store.Store
}

func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, store.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// --- Auth ---

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req vetapi.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := h.store.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req vetapi.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, user, err := h.store.Login(req.Email, req.Password)
	recordLoginOutcome(err)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vetapi.LoginResponse{Token: token, User: *user})
}

// --- Owners ---

func (h *handlers) listOwners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListOwners())
}

func (h *handlers) getOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := h.store.GetOwner(chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

func (h *handlers) createOwner(w http.ResponseWriter, r *http.Request) {
	var req vetapi.CreateOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		writeError(w, http.StatusBadRequest, "name and phone are required")
		return
	}

	user := userFrom(r.Context())
	owner := h.store.CreateOwner(req, user.ID)
	entitiesCreatedTotal.WithLabelValues("owner").Inc()
	writeJSON(w, http.StatusCreated, owner)
}

func (h *handlers) updateOwner(w http.ResponseWriter, r *http.Request) {
	var req vetapi.UpdateOwnerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	owner, err := h.store.UpdateOwner(chi.URLParam(r, "id"), req)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

func (h *handlers) deleteOwner(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteOwner(chi.URLParam(r, "id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Animals ---

func (h *handlers) listAnimals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListAnimals())
}

func (h *handlers) getAnimal(w http.ResponseWriter, r *http.Request) {
	animal, err := h.store.GetAnimal(chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, animal)
}

func (h *handlers) createAnimal(w http.ResponseWriter, r *http.Request) {
	var req vetapi.CreateAnimalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Species) == "" || req.OwnerID == "" {
		writeError(w, http.StatusBadRequest, "name, species and ownerId are required")
		return
	}

	animal, err := h.store.CreateAnimal(req)
	if err != nil {
		storeError(w, err)
		return
	}
	entitiesCreatedTotal.WithLabelValues("animal").Inc()
	writeJSON(w, http.StatusCreated, animal)
}

func (h *handlers) updateAnimal(w http.ResponseWriter, r *http.Request) {
	var req vetapi.UpdateAnimalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	animal, err := h.store.UpdateAnimal(chi.URLParam(r, "id"), req)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, animal)
}

func (h *handlers) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAnimal(chi.URLParam(r, "id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Records ---

func (h *handlers) listRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListRecords())
}

func (h *handlers) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetRecord(chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *handlers) createRecord(w http.ResponseWriter, r *http.Request) {
	var req vetapi.CreateRecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AnimalID == "" || req.AttendedAt.IsZero() {
		writeError(w, http.StatusBadRequest, "animalId and attendedAt are required")
		return
	}

	record, err := h.store.CreateRecord(req)
	if err != nil {
		storeError(w, err)
		return
	}
	entitiesCreatedTotal.WithLabelValues("record").Inc()
	writeJSON(w, http.StatusCreated, record)
}

func (h *handlers) updateRecord(w http.ResponseWriter, r *http.Request) {
	var req vetapi.UpdateRecordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := h.store.UpdateRecord(chi.URLParam(r, "id"), req)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *handlers) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRecord(chi.URLParam(r, "id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recordLoginOutcome labels login attempts for the /metrics endpoint.
func recordLoginOutcome(err error) {
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		return
	}
	loginsTotal.WithLabelValues("success").Inc()
}
