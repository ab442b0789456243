package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Duhandrade22/vet-system/vetapi"
)

// SeedFile is the YAML fixture format accepted by vetd-lite --seed.
// Times use the minute-resolution layout the forms use, interpreted as
// local time.
type SeedFile struct {
	Users []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"users"`
	Owners []struct {
		Name    string `yaml:"name"`
		Phone   string `yaml:"phone"`
		Email   string `yaml:"email"`
		City    string `yaml:"city"`
		State   string `yaml:"state"`
		Animals []struct {
			Name    string `yaml:"name"`
			Species string `yaml:"species"`
			Breed   string `yaml:"breed"`
			Records []struct {
				Weight      string `yaml:"weight"`
				Medications string `yaml:"medications"`
				Dosage      string `yaml:"dosage"`
				Notes       string `yaml:"notes"`
				AttendedAt  string `yaml:"attendedAt"`
			} `yaml:"records"`
		} `yaml:"animals"`
	} `yaml:"owners"`
}

const seedTimeLayout = "2006-01-02T15:04"

// Seed loads a YAML fixture into the store. Owners are attached to the
// first seeded user.
func (s *Store) Seed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	var firstUserID string
	for _, u := range seed.Users {
		user, err := s.CreateUser(u.Name, u.Email, u.Password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		if firstUserID == "" {
			firstUserID = user.ID
		}
	}

	for _, o := range seed.Owners {
		owner := s.CreateOwner(vetapi.CreateOwnerRequest{
			Name:  o.Name,
			Phone: o.Phone,
			Email: o.Email,
			City:  o.City,
			State: o.State,
		}, firstUserID)

		for _, a := range o.Animals {
			animal, err := s.CreateAnimal(vetapi.CreateAnimalRequest{
				Name:    a.Name,
				Species: a.Species,
				Breed:   a.Breed,
				OwnerID: owner.ID,
			})
			if err != nil {
				return fmt.Errorf("seed animal %s: %w", a.Name, err)
			}

			for _, r := range a.Records {
				attendedAt, err := time.ParseInLocation(seedTimeLayout, r.AttendedAt, time.Local)
				if err != nil {
					return fmt.Errorf("seed record for %s: bad attendedAt %q: %w", a.Name, r.AttendedAt, err)
				}
				if _, err := s.CreateRecord(vetapi.CreateRecordRequest{
					Weight:      r.Weight,
					Medications: r.Medications,
					Dosage:      r.Dosage,
					Notes:       r.Notes,
					AttendedAt:  attendedAt.UTC(),
					AnimalID:    animal.ID,
				}); err != nil {
					return fmt.Errorf("seed record for %s: %w", a.Name, err)
				}
			}
		}
	}

	return nil
}
