// Package store holds the in-memory state backing vetd-lite. It exists
// so the CLI and client library can be exercised against a real HTTP
// server without standing up a database.
package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Duhandrade22/vet-system/vetapi"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// User is the server-side account record. The password hash never
// leaves the store.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

func (u *User) api() *vetapi.User {
	return &vetapi.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Store keeps all entities in maps guarded by a single mutex. Good
// enough for a dev server; nothing here survives a restart.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*User
	tokens  map[string]string // token -> user ID
	owners  map[string]*vetapi.Owner
	animals map[string]*vetapi.Animal
	records map[string]*vetapi.Record
}

func New() *Store {
	return &Store{
		users:   make(map[string]*User),
		tokens:  make(map[string]string),
		owners:  make(map[string]*vetapi.Owner),
		animals: make(map[string]*vetapi.Animal),
		records: make(map[string]*vetapi.Record),
	}
}

// CreateUser registers an account, hashing the password with bcrypt.
func (s *Store) CreateUser(name, email, password string) (*vetapi.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[u.ID] = u
	return u.api(), nil
}

// Login verifies credentials and mints an opaque bearer token.
func (s *Store) Login(email, password string) (string, *vetapi.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *User
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user = u
			break
		}
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.tokens[token] = user.ID
	return token, user.api(), nil
}

// Authenticate resolves a bearer token to its user.
func (s *Store) Authenticate(token string) (*vetapi.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.tokens[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, ErrInvalidToken
	}
	return u.api(), nil
}

// RevokeToken invalidates a token. Used to simulate session expiry.
func (s *Store) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// --- Owners ---

func (s *Store) ListOwners() []vetapi.Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vetapi.Owner, 0, len(s.owners))
	for _, o := range s.owners {
		oc := *o
		oc.Animals = s.animalsOfLocked(o.ID)
		out = append(out, oc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) GetOwner(id string) (*vetapi.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}
	oc := *o
	oc.Animals = s.animalsOfLocked(id)
	return &oc, nil
}

func (s *Store) CreateOwner(req vetapi.CreateOwnerRequest, userID string) *vetapi.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &vetapi.Owner{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
	}
	s.owners[o.ID] = o
	oc := *o
	return &oc
}

func (s *Store) UpdateOwner(id string, req vetapi.UpdateOwnerRequest) (*vetapi.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&o.Name, req.Name)
	apply(&o.Phone, req.Phone)
	apply(&o.Email, req.Email)
	apply(&o.Street, req.Street)
	apply(&o.Number, req.Number)
	apply(&o.Complement, req.Complement)
	apply(&o.Neighborhood, req.Neighborhood)
	apply(&o.City, req.City)
	apply(&o.State, req.State)
	apply(&o.ZipCode, req.ZipCode)

	oc := *o
	oc.Animals = s.animalsOfLocked(id)
	return &oc, nil
}

// DeleteOwner removes the owner and cascades to their animals and
// those animals' records.
func (s *Store) DeleteOwner(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[id]; !ok {
		return ErrNotFound
	}
	for aid, a := range s.animals {
		if a.OwnerID != id {
			continue
		}
		for rid, r := range s.records {
			if r.AnimalID == aid {
				delete(s.records, rid)
			}
		}
		delete(s.animals, aid)
	}
	delete(s.owners, id)
	return nil
}

// --- Animals ---

func (s *Store) ListAnimals() []vetapi.Animal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vetapi.Animal, 0, len(s.animals))
	for _, a := range s.animals {
		out = append(out, s.animalWithOwnerLocked(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) GetAnimal(id string) (*vetapi.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.animals[id]
	if !ok {
		return nil, ErrNotFound
	}
	ac := s.animalWithOwnerLocked(a)
	ac.Records = s.recordsOfLocked(id)
	return &ac, nil
}

func (s *Store) CreateAnimal(req vetapi.CreateAnimalRequest) (*vetapi.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[req.OwnerID]; !ok {
		return nil, ErrNotFound
	}
	a := &vetapi.Animal{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		OwnerID:   req.OwnerID,
		CreatedAt: time.Now().UTC(),
	}
	s.animals[a.ID] = a
	ac := s.animalWithOwnerLocked(a)
	return &ac, nil
}

func (s *Store) UpdateAnimal(id string, req vetapi.UpdateAnimalRequest) (*vetapi.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.animals[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Species != nil {
		a.Species = *req.Species
	}
	if req.Breed != nil {
		a.Breed = *req.Breed
	}
	ac := s.animalWithOwnerLocked(a)
	return &ac, nil
}

// DeleteAnimal removes the animal and its records.
func (s *Store) DeleteAnimal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.animals[id]; !ok {
		return ErrNotFound
	}
	for rid, r := range s.records {
		if r.AnimalID == id {
			delete(s.records, rid)
		}
	}
	delete(s.animals, id)
	return nil
}

// --- Records ---

func (s *Store) ListRecords() []vetapi.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vetapi.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) GetRecord(id string) (*vetapi.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	rc := *r
	if a, ok := s.animals[r.AnimalID]; ok {
		ac := *a
		rc.Animal = &ac
	}
	return &rc, nil
}

func (s *Store) CreateRecord(req vetapi.CreateRecordRequest) (*vetapi.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.animals[req.AnimalID]; !ok {
		return nil, ErrNotFound
	}
	r := &vetapi.Record{
		ID:          uuid.NewString(),
		Weight:      req.Weight,
		Medications: req.Medications,
		Dosage:      req.Dosage,
		Notes:       req.Notes,
		AttendedAt:  req.AttendedAt,
		AnimalID:    req.AnimalID,
		CreatedAt:   time.Now().UTC(),
	}
	s.records[r.ID] = r
	rc := *r
	return &rc, nil
}

func (s *Store) UpdateRecord(id string, req vetapi.UpdateRecordRequest) (*vetapi.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Weight != nil {
		r.Weight = *req.Weight
	}
	if req.Medications != nil {
		r.Medications = *req.Medications
	}
	if req.Dosage != nil {
		r.Dosage = *req.Dosage
	}
	if req.Notes != nil {
		r.Notes = *req.Notes
	}
	if req.AttendedAt != nil {
		r.AttendedAt = *req.AttendedAt
	}
	rc := *r
	return &rc, nil
}

func (s *Store) DeleteRecord(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// animalsOfLocked returns copies of an owner's animals. Callers must
// hold at least the read lock.
func (s *Store) animalsOfLocked(ownerID string) []vetapi.Animal {
	var out []vetapi.Animal
	for _, a := range s.animals {
		if a.OwnerID == ownerID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *Store) recordsOfLocked(animalID string) []vetapi.Record {
	var out []vetapi.Record
	for _, r := range s.records {
		if r.AnimalID == animalID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttendedAt.After(out[j].AttendedAt) })
	return out
}

func (s *Store) animalWithOwnerLocked(a *vetapi.Animal) vetapi.Animal {
	ac := *a
	if o, ok := s.owners[a.OwnerID]; ok {
		oc := *o
		ac.Owner = &oc
	}
	return ac
}
