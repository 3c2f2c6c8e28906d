package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVaccine() *Vaccine {
	return &Vaccine{
		ID:             "v1",
		Name:           "MMR",
		Description:    "Measles, mumps, rubella",
		Dosage:         "2 doses",
		Availability:   date(2026, 2, 1),
		Location:       "Pediatric Health Center",
		AvailableSlots: 20,
		AgeGroups:      []AgeGroup{AgeGroupInfant, AgeGroupChild},
		IsActive:       true,
	}
}

func TestVaccine_Validate(t *testing.T) {
	require.NoError(t, validVaccine().Validate())

	tests := map[string]func(v *Vaccine){
		"empty name":      func(v *Vaccine) { v.Name = " " },
		"negative slots":  func(v *Vaccine) { v.AvailableSlots = -1 },
		"negative price":  func(v *Vaccine) { v.Price = -0.5 },
		"no age groups":   func(v *Vaccine) { v.AgeGroups = nil },
		"bad age group":   func(v *Vaccine) { v.AgeGroups = []AgeGroup{"toddler"} },
		"no availability": func(v *Vaccine) { v.Availability = time.Time{} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			v := validVaccine()
			mutate(v)
			assert.ErrorIs(t, v.Validate(), ErrInvalidRequest)
		})
	}
}

func TestVaccine_ServesAgeGroup(t *testing.T) {
	v := validVaccine()
	all := &Vaccine{AgeGroups: []AgeGroup{AgeGroupAll}}

	assert.True(t, v.ServesAgeGroup(AgeGroupInfant))
	assert.False(t, v.ServesAgeGroup(AgeGroupSenior))
	assert.True(t, v.ServesAgeGroup(""))
	assert.True(t, v.ServesAgeGroup(AgeGroupAll))
	assert.True(t, all.ServesAgeGroup(AgeGroupSenior))
}

func TestVaccineQuery_Normalize(t *testing.T) {
	q := VaccineQuery{AgeGroup: AgeGroupAll}
	require.NoError(t, q.Normalize())
	assert.Equal(t, SortByName, q.SortBy)
	assert.Equal(t, SortAsc, q.SortOrder)
	assert.Empty(t, q.AgeGroup)

	bad := VaccineQuery{SortBy: "password"}
	assert.ErrorIs(t, bad.Normalize(), ErrInvalidRequest)

	badOrder := VaccineQuery{SortOrder: "up"}
	assert.ErrorIs(t, badOrder.Normalize(), ErrInvalidRequest)
}

func TestVaccineQuery_Matches(t *testing.T) {
	v := validVaccine()

	assert.True(t, VaccineQuery{Search: "PEDIATRIC"}.Matches(v))
	assert.True(t, VaccineQuery{Search: "mumps"}.Matches(v))
	assert.False(t, VaccineQuery{Search: "flu"}.Matches(v))
	assert.False(t, VaccineQuery{AgeGroup: AgeGroupSenior}.Matches(v))

	v.IsActive = false
	assert.False(t, VaccineQuery{ActiveOnly: true}.Matches(v))
	assert.True(t, VaccineQuery{}.Matches(v))
}

func TestVaccineQuery_Compare(t *testing.T) {
	a := &Vaccine{ID: "1", Name: "BCG", Price: 30}
	b := &Vaccine{ID: "2", Name: "Cholera", Price: 10}
	c := &Vaccine{ID: "3", Name: "Anthrax", Price: 10}
	list := []*Vaccine{a, b, c}

	byName := VaccineQuery{SortBy: SortByName, SortOrder: SortAsc}
	slices.SortFunc(list, byName.Compare)
	assert.Equal(t, []*Vaccine{c, a, b}, list)

	byPriceDesc := VaccineQuery{SortBy: SortByPrice, SortOrder: SortDesc}
	slices.SortFunc(list, byPriceDesc.Compare)
	assert.Equal(t, []*Vaccine{a, b, c}, list)
}

func TestUpdateVaccineInput_Apply(t *testing.T) {
	v := validVaccine()
	slots := 0
	active := false

	UpdateVaccineInput{AvailableSlots: &slots, IsActive: &active}.Apply(v)

	assert.Equal(t, 0, v.AvailableSlots)
	assert.False(t, v.IsActive)
	assert.Equal(t, "MMR", v.Name)
}
