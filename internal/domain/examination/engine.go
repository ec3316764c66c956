package examination

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/frontdesk/clinic/internal/platform/kvstore"
	"github.com/frontdesk/clinic/internal/platform/persistence"
)

// PatientLookup reports whether a patient id is registered.
// *patient.Registry satisfies it.
type PatientLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Engine starts intake workflows and owns the examinations collection.
type Engine struct {
	records  *persistence.Collection[Record]
	patients PatientLookup
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

func NewEngine(store kvstore.Store, logger zerolog.Logger) *Engine {
	return &Engine{
		records: persistence.NewCollection[Record](store, persistence.Examinations, logger),
		now:     time.Now,
		newID:   uuid.NewString,
		logger:  logger.With().Str("component", "intake").Logger(),
	}
}

// SetPatientLookup makes Commit refuse drafts whose patient is not
// registered. Without a lookup any patient id is accepted.
func (e *Engine) SetPatientLookup(l PatientLookup) {
	e.patients = l
}

// SetClock replaces time.Now for commit timestamps.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Start opens a workflow on step 1 with an empty draft for patientID.
func (e *Engine) Start(patientID string) (*Workflow, error) {
	if patientID == "" {
		return nil, ErrMissingPatientID
	}
	return &Workflow{
		engine: e,
		step:   FirstStep,
		draft:  Draft{PatientID: patientID, Images: []Image{}},
		logger: e.logger.With().Str("patient_id", patientID).Logger(),
	}, nil
}

func (e *Engine) commit(ctx context.Context, d Draft) (*Record, error) {
	if e.patients != nil {
		ok, err := e.patients.Exists(ctx, d.PatientID)
		if err != nil {
			return nil, fmt.Errorf("commit examination: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("commit examination: %w: %s", ErrPatientNotFound, d.PatientID)
		}
	}

	rec := &Record{
		ID:    e.newID(),
		Date:  e.now(),
		Draft: d,
	}
	n, err := e.records.Append(ctx, *rec)
	if err != nil {
		return nil, fmt.Errorf("commit examination: %w", err)
	}
	e.logger.Info().
		Str("examination_id", rec.ID).
		Str("patient_id", d.PatientID).
		Int("images", len(d.Images)).
		Int("total", n).
		Msg("examination committed")
	return rec, nil
}

// List returns every committed examination in commit order.
func (e *Engine) List(ctx context.Context) ([]Record, error) {
	return e.records.Load(ctx)
}

// ListByPatient returns the patient's examinations, newest first.
func (e *Engine) ListByPatient(ctx context.Context, patientID string) ([]Record, error) {
	all, err := e.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0)
	for _, r := range all {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
