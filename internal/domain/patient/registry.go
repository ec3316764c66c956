package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/platform/kvstore"
	"github.com/frontdesk/clinic/internal/platform/persistence"
)

// maxIDAttempts bounds how many ids Create draws before giving up on a
// collision with an already registered patient.
const maxIDAttempts = 5

var earliestBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Registry is the patient directory backed by the persisted "patients"
// collection. Every call re-reads the collection, so a patient returned by
// Create is visible to the next Initialize, FindByID or List.
type Registry struct {
	patients *persistence.Collection[Patient]
	ids      IDGenerator
	now      func() time.Time
	logger   zerolog.Logger
}

func NewRegistry(store kvstore.Store, logger zerolog.Logger) *Registry {
	return &Registry{
		patients: persistence.NewCollection[Patient](store, persistence.Patients, logger),
		ids:      NewTimestampGenerator(time.Now),
		now:      time.Now,
		logger:   logger.With().Str("component", "patient-registry").Logger(),
	}
}

// SetIDGenerator replaces the default timestamp id generator.
func (r *Registry) SetIDGenerator(g IDGenerator) {
	r.ids = g
}

// SetClock replaces time.Now for age, registration date and demo seed
// computation. It does not affect an already installed id generator.
func (r *Registry) SetClock(now func() time.Time) {
	r.now = now
}

// Initialize returns every registered patient, writing the demo patients
// first if the collection is empty.
func (r *Registry) Initialize(ctx context.Context) ([]Patient, error) {
	patients, err := r.patients.SeedIfEmpty(ctx, DemoPatients(r.now()))
	if err != nil {
		return nil, fmt.Errorf("initialize registry: %w", err)
	}
	return patients, nil
}

// List returns the stored patients without seeding.
func (r *Registry) List(ctx context.Context) ([]Patient, error) {
	return r.patients.Load(ctx)
}

// Create validates the form, derives id, age, registration date and status,
// and appends the new patient to the collection. Nothing is written when
// validation fails.
func (r *Registry) Create(ctx context.Context, in CreateInput) (*Patient, error) {
	now := r.now()
	in = normalizeInput(in)
	if err := validateInput(in, now); err != nil {
		return nil, err
	}

	existing, err := r.patients.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	id, err := r.nextID(existing)
	if err != nil {
		return nil, err
	}

	p := Patient{
		ID:               id,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Gender:           in.Gender,
		DateOfBirth:      in.DateOfBirth,
		Phone:            in.Phone,
		Email:            in.Email,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		MedicalHistory:   in.MedicalHistory,
		RegistrationDate: now,
		Status:           StatusActive,
	}
	if in.DateOfBirth != nil {
		age := ComputeAge(*in.DateOfBirth, now)
		p.Age = &age
	}

	if err := r.patients.Save(ctx, append(existing, p)); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	r.logger.Info().Str("patient_id", p.ID).Msg("patient registered")
	return &p, nil
}

func (r *Registry) nextID(existing []Patient) (string, error) {
	taken := make(map[string]bool, len(existing))
	for i := range existing {
		taken[existing[i].ID] = true
	}
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.ids.NewID()
		if !taken[id] {
			return id, nil
		}
		r.logger.Warn().Str("patient_id", id).Msg("generated id already registered, retrying")
	}
	return "", fmt.Errorf("create patient: no free id after %d attempts", maxIDAttempts)
}

// FindByID scans the collection for id.
func (r *Registry) FindByID(ctx context.Context, id string) (*Patient, error) {
	patients, err := r.patients.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Exists reports whether id is registered.
func (r *Registry) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func normalizeInput(in CreateInput) CreateInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	return in
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateInput(in CreateInput, now time.Time) error {
	verr := &ValidationError{}
	if in.FirstName == "" {
		verr.add("firstName", "is required")
	}
	if in.LastName == "" {
		verr.add("lastName", "is required")
	}
	if in.Phone == "" {
		verr.add("phone", "is required")
	}
	if !in.Gender.Valid() {
		verr.add("gender", fmt.Sprintf("must be male, female or other, got %q", in.Gender))
	}
	if in.DateOfBirth != nil {
		// Compare calendar dates: a birth date of today is valid in any zone.
		switch {
		case calendarDate(*in.DateOfBirth).After(calendarDate(now)):
			verr.add("dateOfBirth", "must not be in the future")
		case in.DateOfBirth.Before(earliestBirthDate):
			verr.add("dateOfBirth", "must not be before 1900-01-01")
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
