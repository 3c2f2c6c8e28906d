package domain

import (
	"fmt"
	"strings"
)

type SortField string

const (
	SortByName           SortField = "name"
	SortByPrice          SortField = "price"
	SortByAvailability   SortField = "availability"
	SortByAvailableSlots SortField = "available_slots"
	SortByLocation       SortField = "location"
	SortByCreatedAt      SortField = "created_at"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// VaccineQuery describes a catalog listing. ActiveOnly is set by the service,
// never taken from the request.
type VaccineQuery struct {
	Search     string
	AgeGroup   AgeGroup
	SortBy     SortField
	SortOrder  SortOrder
	ActiveOnly bool
}

func (q *VaccineQuery) Normalize() error {
	q.Search = strings.TrimSpace(q.Search)

	if q.AgeGroup == AgeGroupAll {
		q.AgeGroup = ""
	}
	if q.AgeGroup != "" && !q.AgeGroup.Valid() {
		return fmt.Errorf("%w: unknown age group %q", ErrInvalidRequest, q.AgeGroup)
	}

	switch q.SortBy {
	case "":
		q.SortBy = SortByName
	case SortByName, SortByPrice, SortByAvailability, SortByAvailableSlots, SortByLocation, SortByCreatedAt:
	default:
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidRequest, q.SortBy)
	}

	switch q.SortOrder {
	case "":
		q.SortOrder = SortAsc
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("%w: unknown sort order %q", ErrInvalidRequest, q.SortOrder)
	}

	return nil
}

func (q VaccineQuery) Matches(v *Vaccine) bool {
	if q.ActiveOnly && !v.IsActive {
		return false
	}
	if !v.ServesAgeGroup(q.AgeGroup) {
		return false
	}
	if q.Search == "" {
		return true
	}

	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(v.Name), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle) ||
		strings.Contains(strings.ToLower(v.Location), needle)
}

// Compare orders two vaccines by the query sort; ties fall back to name then id.
func (q VaccineQuery) Compare(a, b *Vaccine) int {
	c := 0
	switch q.SortBy {
	case SortByPrice:
		c = cmpFloat(a.Price, b.Price)
	case SortByAvailability:
		c = a.Availability.Compare(b.Availability)
	case SortByAvailableSlots:
		c = a.AvailableSlots - b.AvailableSlots
	case SortByLocation:
		c = strings.Compare(a.Location, b.Location)
	case SortByCreatedAt:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c == 0 {
		c = strings.Compare(a.Name, b.Name)
	}
	if c == 0 {
		c = strings.Compare(a.ID, b.ID)
	}
	if q.SortOrder == SortDesc {
		return -c
	}
	return c
}

func (q VaccineQuery) CacheKey() string {
	return fmt.Sprintf("active=%t|age=%s|sort=%s:%s|q=%s",
		q.ActiveOnly, q.AgeGroup, q.SortBy, q.SortOrder, strings.ToLower(q.Search))
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
