package examination

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	FirstStep = 1
	LastStep  = 3
)

// Step titles and descriptions in order.
var (
	StepTitles = map[int]string{
		1: "Chief Complaint & Vitals",
		2: "Medical History",
		3: "Examination & Images",
	}
	StepDescriptions = map[int]string{
		1: "Record the patient's main concerns and vital signs",
		2: "Document medical history and current conditions",
		3: "Perform examination and upload supporting images",
	}
)

// Workflow walks one examination through steps 1 to 3. It is not safe for
// concurrent use; one clinician drives one workflow.
//
// Next never checks the current step's fields. The clinician may leave any
// field blank and still advance.
type Workflow struct {
	engine    *Engine
	step      int
	draft     Draft
	committed *Record
	logger    zerolog.Logger
}

// Step returns the current step number, 1 to 3.
func (w *Workflow) Step() int {
	return w.step
}

func (w *Workflow) StepTitle() string {
	return StepTitles[w.step]
}

// Committed returns the committed record, or nil before commit.
func (w *Workflow) Committed() *Record {
	return w.committed
}

// Draft returns a copy of the current draft.
func (w *Workflow) Draft() Draft {
	return w.draft.Clone()
}

// Next advances one step. On the last step it commits instead and returns
// the committed record; otherwise the record is nil.
func (w *Workflow) Next(ctx context.Context) (*Record, error) {
	if w.committed != nil {
		return nil, ErrAlreadyCommitted
	}
	if w.step == LastStep {
		return w.Commit(ctx)
	}
	w.step++
	w.logger.Debug().Int("step", w.step).Msg("advanced")
	return nil, nil
}

// Previous goes back one step. It does nothing on the first step or after
// commit.
func (w *Workflow) Previous() {
	if w.committed != nil || w.step == FirstStep {
		return
	}
	w.step--
	w.logger.Debug().Int("step", w.step).Msg("went back")
}

// SetField assigns one draft field by its JSON name. Values are coerced to
// the field's type: text fields take strings, flags take bools or "true" /
// "false", painLevel takes an integer 0..10 or its decimal string.
// Fields of any step can be set from any step.
func (w *Workflow) SetField(name string, value interface{}) error {
	if w.committed != nil {
		return ErrAlreadyCommitted
	}
	return assign(&w.draft, name, value)
}

// ToggleDiabetic sets isDiabetic. Clearing it leaves hba1c and the glucose
// values in the draft; they are only hidden.
func (w *Workflow) ToggleDiabetic(flag bool) error {
	return w.SetField(FieldIsDiabetic, flag)
}

// VisibleFields returns the fields shown on the current step.
func (w *Workflow) VisibleFields() []string {
	return VisibleFields(w.draft, w.step)
}

// VisibleFields returns step's fields for d in form order, leaving out the
// diabetic sub-fields unless d.IsDiabetic.
func VisibleFields(d Draft, step int) []string {
	var out []string
	for _, name := range stepFields[step] {
		if !d.IsDiabetic && isDiabeticField(name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func isDiabeticField(name string) bool {
	for _, f := range diabeticFields {
		if f == name {
			return true
		}
	}
	return false
}

// AttachImage appends a file reference under category. Order is kept and
// duplicates are allowed.
func (w *Workflow) AttachImage(fileRef string, category Category) error {
	if w.committed != nil {
		return ErrAlreadyCommitted
	}
	if fileRef == "" {
		return ErrMissingFileRef
	}
	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	w.draft.Images = append(w.draft.Images, Image{File: fileRef, Type: category})
	w.logger.Debug().Str("category", string(category)).Int("images", len(w.draft.Images)).Msg("image attached")
	return nil
}

// CategoryCounts tallies the draft's images per category.
func (w *Workflow) CategoryCounts() map[Category]int {
	return w.draft.CategoryCounts()
}

// Commit stamps the draft with an id and the current time and appends it to
// the examinations collection. It is allowed once, from the last step, and
// does not validate draft fields. Nothing is written if it fails.
func (w *Workflow) Commit(ctx context.Context) (*Record, error) {
	if w.committed != nil {
		return nil, ErrAlreadyCommitted
	}
	if w.step != LastStep {
		return nil, fmt.Errorf("%w: on step %d", ErrNotOnFinalStep, w.step)
	}

	rec, err := w.engine.commit(ctx, w.draft.Clone())
	if err != nil {
		return nil, err
	}
	w.committed = rec
	out := *rec
	out.Draft = rec.Draft.Clone()
	return &out, nil
}
