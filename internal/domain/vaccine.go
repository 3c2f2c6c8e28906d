package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

type AgeGroup string

const (
	AgeGroupInfant     AgeGroup = "infant"
	AgeGroupChild      AgeGroup = "child"
	AgeGroupChild1To5  AgeGroup = "child_1_5"
	AgeGroupChild5To10 AgeGroup = "child_5_10"
	AgeGroupAdolescent AgeGroup = "adolescent"
	AgeGroupAdult      AgeGroup = "adult"
	AgeGroupSenior     AgeGroup = "senior"
	AgeGroupAll        AgeGroup = "all"
)

var AgeGroups = []AgeGroup{
	AgeGroupInfant, AgeGroupChild, AgeGroupChild1To5, AgeGroupChild5To10,
	AgeGroupAdolescent, AgeGroupAdult, AgeGroupSenior, AgeGroupAll,
}

func (g AgeGroup) Valid() bool {
	return slices.Contains(AgeGroups, g)
}

const (
	DefaultAvailableSlots = 10

	maxVaccineNameLen        = 100
	maxVaccineDescriptionLen = 500
	maxVaccineDosageLen      = 200
	maxVaccineLocationLen    = 200
)

type Vaccine struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Dosage         string     `json:"dosage"`
	Availability   time.Time  `json:"availability"`
	Location       string     `json:"location"`
	AvailableSlots int        `json:"available_slots"`
	Price          float64    `json:"price"`
	AgeGroups      []AgeGroup `json:"age_groups"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ServesAgeGroup reports whether the vaccine matches an age group filter.
// A vaccine tagged "all" matches every group; an empty or "all" filter matches every vaccine.
func (v *Vaccine) ServesAgeGroup(g AgeGroup) bool {
	if g == "" || g == AgeGroupAll {
		return true
	}
	return slices.Contains(v.AgeGroups, g) || slices.Contains(v.AgeGroups, AgeGroupAll)
}

// EnforceCapacity deactivates the vaccine once taken (non-cancelled) bookings
// reach its slots. It never reactivates.
func (v *Vaccine) EnforceCapacity(taken int) {
	if taken >= v.AvailableSlots {
		v.IsActive = false
	}
}

func (v *Vaccine) Validate() error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	case utf8.RuneCountInString(v.Name) > maxVaccineNameLen:
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrInvalidRequest, maxVaccineNameLen)
	case strings.TrimSpace(v.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidRequest)
	case utf8.RuneCountInString(v.Description) > maxVaccineDescriptionLen:
		return fmt.Errorf("%w: description cannot be more than %d characters", ErrInvalidRequest, maxVaccineDescriptionLen)
	case strings.TrimSpace(v.Dosage) == "":
		return fmt.Errorf("%w: dosage is required", ErrInvalidRequest)
	case utf8.RuneCountInString(v.Dosage) > maxVaccineDosageLen:
		return fmt.Errorf("%w: dosage cannot be more than %d characters", ErrInvalidRequest, maxVaccineDosageLen)
	case strings.TrimSpace(v.Location) == "":
		return fmt.Errorf("%w: location is required", ErrInvalidRequest)
	case utf8.RuneCountInString(v.Location) > maxVaccineLocationLen:
		return fmt.Errorf("%w: location cannot be more than %d characters", ErrInvalidRequest, maxVaccineLocationLen)
	case v.Availability.IsZero():
		return fmt.Errorf("%w: availability date is required", ErrInvalidRequest)
	case v.AvailableSlots < 0:
		return fmt.Errorf("%w: available slots cannot be negative", ErrInvalidRequest)
	case v.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidRequest)
	case len(v.AgeGroups) == 0:
		return fmt.Errorf("%w: at least one age group is required", ErrInvalidRequest)
	}

	for _, g := range v.AgeGroups {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown age group %q", ErrInvalidRequest, g)
		}
	}

	return nil
}

type CreateVaccineInput struct {
	Name           string
	Description    string
	Dosage         string
	Availability   time.Time
	Location       string
	AvailableSlots *int
	Price          float64
	AgeGroups      []AgeGroup
	IsActive       *bool
}

// UpdateVaccineInput is a partial update: nil fields are left untouched.
type UpdateVaccineInput struct {
	Name           *string
	Description    *string
	Dosage         *string
	Availability   *time.Time
	Location       *string
	AvailableSlots *int
	Price          *float64
	AgeGroups      []AgeGroup
	IsActive       *bool
}

func (in UpdateVaccineInput) Apply(v *Vaccine) {
	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		v.Description = *in.Description
	}
	if in.Dosage != nil {
		v.Dosage = *in.Dosage
	}
	if in.Availability != nil {
		v.Availability = CalendarDate(*in.Availability)
	}
	if in.Location != nil {
		v.Location = *in.Location
	}
	if in.AvailableSlots != nil {
		v.AvailableSlots = *in.AvailableSlots
	}
	if in.Price != nil {
		v.Price = *in.Price
	}
	if in.AgeGroups != nil {
		v.AgeGroups = slices.Clone(in.AgeGroups)
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
}
