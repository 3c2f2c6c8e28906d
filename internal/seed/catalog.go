package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type vaccineCreator interface {
	Create(ctx context.Context, input domain.CreateVaccineInput) (*domain.Vaccine, error)
}

type entry struct {
	name        string
	description string
	dosage      string
	location    string
	available   string
	slots       int
	groups      []domain.AgeGroup
}

const (
	maternity  = "Maternity Hospital"
	general    = "General Health Clinic"
	pediatric  = "Pediatric Health Center"
	community  = "Community Health Center"
	adolescent = "Adolescent Health Center"
	senior     = "Senior Health Center"
)

var (
	infant   = domain.AgeGroupInfant
	child    = domain.AgeGroupChild
	child15  = domain.AgeGroupChild1To5
	child510 = domain.AgeGroupChild5To10
	teen     = domain.AgeGroupAdolescent
	adult    = domain.AgeGroupAdult
	elder    = domain.AgeGroupSenior
)

// Стандартный календарь прививок по возрастным группам.
var catalog = []entry{
	// 0-1
	{"BCG", "Protects against severe TB.", "Single dose at birth", maternity, "2024-02-01", 20, []domain.AgeGroup{infant}},
	{"Hepatitis B", "Prevents liver infection.", "3 doses: birth, 1 month, 6 months", general, "2024-02-01", 30, []domain.AgeGroup{infant, child, teen, adult, elder}},
	{"Polio (OPV/IPV)", "Prevents paralysis-causing virus.", "4 doses: 2, 4, 6-18 months, 4-6 years", pediatric, "2025-02-01", 25, []domain.AgeGroup{infant, child, teen, adult}},
	{"DTP (Diphtheria, Tetanus, Pertussis)", "Combined protection.", "3 doses + booster", pediatric, "2024-02-01", 25, []domain.AgeGroup{infant, child, teen, adult}},
	{"Hib", "Prevents meningitis, pneumonia.", "3-4 doses: 2, 4, 6, 12-15 months", pediatric, "2024-02-01", 20, []domain.AgeGroup{infant, child}},
	{"Rotavirus", "Protects from severe diarrhea.", "2-3 doses: 2, 4, (6) months", pediatric, "2024-02-01", 20, []domain.AgeGroup{infant}},
	{"PCV", "Protects from pneumonia & meningitis.", "4 doses: 2, 4, 6, 12-15 months", pediatric, "2024-02-01", 20, []domain.AgeGroup{infant, child, elder}},
	{"MMR", "Measles, mumps, rubella (at 9 months, 2nd dose at 1-5 years).", "2 doses: 9-12 months, 15-18 months", pediatric, "2024-02-01", 20, []domain.AgeGroup{infant, child, teen, adult}},

	// 1-5
	{"Hepatitis A", "Prevents hepatitis A infection.", "2 doses: 12-23 months, 6-18 months after first", pediatric, "2024-02-01", 15, []domain.AgeGroup{child15}},
	{"Meningococcal", "Prevents meningococcal disease.", "1 dose at 2 years", general, "2024-02-01", 10, []domain.AgeGroup{child15}},
	{"MMR (1-5)", "Measles, mumps, rubella booster for 1-5 years.", "Booster dose at 1-5 years", pediatric, "2024-02-01", 10, []domain.AgeGroup{child15}},
	{"Varicella (Chickenpox)", "Prevents chickenpox.", "1 dose at 12-15 months", pediatric, "2024-02-01", 10, []domain.AgeGroup{child15}},
	{"Typhoid Conjugate", "Prevents typhoid fever.", "1 dose at 2 years", general, "2024-02-01", 10, []domain.AgeGroup{child15}},
	{"Influenza (Flu, yearly, 1-5)", "Prevents seasonal flu.", "1 dose annually", community, "2024-02-01", 10, []domain.AgeGroup{child15}},

	// 5-10
	{"Japanese Encephalitis", "Prevents Japanese Encephalitis.", "2 doses: 9 months and 16-24 months", pediatric, "2024-02-01", 12, []domain.AgeGroup{child510}},
	{"Cholera", "Prevents cholera infection.", "2 doses: 2 years and above", general, "2024-02-01", 8, []domain.AgeGroup{child510}},
	{"DTaP Booster", "Diphtheria, Tetanus, Pertussis booster for 5-10 years.", "Booster dose at 5-10 years", pediatric, "2024-02-01", 8, []domain.AgeGroup{child510}},
	{"MMR Booster", "Measles, mumps, rubella booster for 5-10 years.", "Booster dose at 5-10 years", pediatric, "2024-02-01", 8, []domain.AgeGroup{child510}},
	{"Varicella Booster", "Chickenpox booster for 5-10 years.", "Booster dose at 5-10 years", pediatric, "2024-02-01", 8, []domain.AgeGroup{child510}},
	{"Polio Booster", "Polio booster for 5-10 years.", "Booster dose at 5-10 years", pediatric, "2024-02-01", 8, []domain.AgeGroup{child510}},
	{"Typhoid Booster", "Typhoid booster for 5-10 years.", "Booster dose at 5-10 years", general, "2024-02-01", 8, []domain.AgeGroup{child510}},

	// 10-18
	{"Tdap booster", "Tetanus, diphtheria, whooping cough.", "Single dose at 11-12 years", adolescent, "2024-02-01", 20, []domain.AgeGroup{teen, adult}},
	{"HPV (Human Papillomavirus)", "Prevents cervical & other cancers.", "2-3 doses: 9-14 years, 15-26 years", adolescent, "2024-02-01", 20, []domain.AgeGroup{teen, adult}},

	// 18-50
	{"Influenza (Flu, yearly)", "Prevents seasonal flu.", "1 dose annually", community, "2024-02-01", 20, []domain.AgeGroup{adult, elder}},
	{"Td/Tdap booster", "Tetanus & diphtheria protection (every 10 yrs).", "Booster every 10 years", general, "2024-02-01", 20, []domain.AgeGroup{adult, elder}},

	// 50+
	{"Pneumococcal (PCV / PPSV23)", "Pneumonia & meningitis prevention.", "1-2 doses after age 50", senior, "2024-02-01", 20, []domain.AgeGroup{elder}},
	{"Shingles (Herpes Zoster)", "Prevents painful nerve infection.", "2 doses after age 50", senior, "2024-02-01", 20, []domain.AgeGroup{elder}},
	{"COVID-19 booster", "As per latest guidelines.", "As per latest guidelines", community, "2024-02-01", 20, []domain.AgeGroup{adult, elder}},
}

// Catalog returns the default vaccine catalog as create inputs.
func Catalog() ([]domain.CreateVaccineInput, error) {
	inputs := make([]domain.CreateVaccineInput, 0, len(catalog))
	for _, e := range catalog {
		available, err := time.Parse(time.DateOnly, e.available)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", e.name, err)
		}
		slots := e.slots
		active := true
		inputs = append(inputs, domain.CreateVaccineInput{
			Name:           e.name,
			Description:    e.description,
			Dosage:         e.dosage,
			Availability:   available,
			Location:       e.location,
			AvailableSlots: &slots,
			AgeGroups:      e.groups,
			IsActive:       &active,
		})
	}
	return inputs, nil
}

// Run creates every catalog vaccine that does not exist yet and returns how many were added.
func Run(ctx context.Context, vaccines vaccineCreator, log logger.Logger) (int, error) {
	inputs, err := Catalog()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, input := range inputs {
		if _, err := vaccines.Create(ctx, input); err != nil {
			if errors.Is(err, domain.ErrVaccineNameTaken) {
				log.Debug("vaccine already seeded", logger.String("name", input.Name))
				continue
			}
			return created, fmt.Errorf("seed %q: %w", input.Name, err)
		}
		created++
	}

	log.Info("vaccine catalog seeded",
		logger.Int("created", created),
		logger.Int("total", len(inputs)),
	)
	return created, nil
}
