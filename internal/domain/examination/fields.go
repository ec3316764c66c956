package examination

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names accepted by SetField. They match the JSON keys of Draft.
const (
	FieldChiefComplaint     = "chiefComplaint"
	FieldPainLevel          = "painLevel"
	FieldBloodPressure      = "bloodPressure"
	FieldTemperature        = "temperature"
	FieldPulse              = "pulse"
	FieldIsDiabetic         = "isDiabetic"
	FieldHasAsthma          = "hasAsthma"
	FieldHasCardiacIssues   = "hasCardiacIssues"
	FieldIsPregnant         = "isPregnant"
	FieldHbA1c              = "hba1c"
	FieldFastingGlucose     = "fastingGlucose"
	FieldPrandialGlucose    = "prandialGlucose"
	FieldAllergies          = "allergies"
	FieldCurrentMedications = "currentMedications"
	FieldOralExamination    = "oralExamination"
	FieldAdditionalNotes    = "additionalNotes"
)

// diabeticFields are disclosed only while isDiabetic is set.
var diabeticFields = []string{FieldHbA1c, FieldFastingGlucose, FieldPrandialGlucose}

// stepFields lists each step's editable fields in form order. Step 2's
// diabetic sub-fields follow isDiabetic and are filtered by VisibleFields.
var stepFields = map[int][]string{
	1: {FieldChiefComplaint, FieldPainLevel, FieldBloodPressure, FieldTemperature, FieldPulse},
	2: {FieldIsDiabetic, FieldHbA1c, FieldFastingGlucose, FieldPrandialGlucose,
		FieldHasAsthma, FieldHasCardiacIssues, FieldIsPregnant, FieldAllergies, FieldCurrentMedications},
	3: {FieldOralExamination, FieldAdditionalNotes},
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindFlag
	kindPain
)

type fieldDef struct {
	step int
	kind fieldKind
	text func(*Draft) *string
	flag func(*Draft) *bool
}

var fields = map[string]fieldDef{
	FieldChiefComplaint:     {step: 1, kind: kindText, text: func(d *Draft) *string { return &d.ChiefComplaint }},
	FieldPainLevel:          {step: 1, kind: kindPain},
	FieldBloodPressure:      {step: 1, kind: kindText, text: func(d *Draft) *string { return &d.BloodPressure }},
	FieldTemperature:        {step: 1, kind: kindText, text: func(d *Draft) *string { return &d.Temperature }},
	FieldPulse:              {step: 1, kind: kindText, text: func(d *Draft) *string { return &d.Pulse }},
	FieldIsDiabetic:         {step: 2, kind: kindFlag, flag: func(d *Draft) *bool { return &d.IsDiabetic }},
	FieldHasAsthma:          {step: 2, kind: kindFlag, flag: func(d *Draft) *bool { return &d.HasAsthma }},
	FieldHasCardiacIssues:   {step: 2, kind: kindFlag, flag: func(d *Draft) *bool { return &d.HasCardiacIssues }},
	FieldIsPregnant:         {step: 2, kind: kindFlag, flag: func(d *Draft) *bool { return &d.IsPregnant }},
	FieldHbA1c:              {step: 2, kind: kindText, text: func(d *Draft) *string { return &d.HbA1c }},
	FieldFastingGlucose:     {step: 2, kind: kindText, text: func(d *Draft) *string { return &d.FastingGlucose }},
	FieldPrandialGlucose:    {step: 2, kind: kindText, text: func(d *Draft) *string { return &d.PrandialGlucose }},
	FieldAllergies:          {step: 2, kind: kindText, text: func(d *Draft) *string { return &d.Allergies }},
	FieldCurrentMedications: {step: 2, kind: kindText, text: func(d *Draft) *string { return &d.CurrentMedications }},
	FieldOralExamination:    {step: 3, kind: kindText, text: func(d *Draft) *string { return &d.OralExamination }},
	FieldAdditionalNotes:    {step: 3, kind: kindText, text: func(d *Draft) *string { return &d.AdditionalNotes }},
}

// StepFields returns every field of step in form order, including the
// diabetic sub-fields.
func StepFields(step int) []string {
	return append([]string(nil), stepFields[step]...)
}

// StepOf returns the step a field belongs to, or 0 for unknown names.
func StepOf(name string) int {
	return fields[name].step
}

// assign coerces value to the field's type and stores it in d.
func assign(d *Draft, name string, value interface{}) error {
	def, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	switch def.kind {
	case kindText:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected text, got %T", name, value)
		}
		*def.text(d) = s
	case kindFlag:
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*def.flag(d) = b
	case kindPain:
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if n < 0 || n > 10 {
			return fmt.Errorf("%w: %d", ErrInvalidPainLevel, n)
		}
		d.PainLevel = n
	}
	return nil
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("expected true or false, got %q", b)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("expected a flag, got %T", v)
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("expected a whole number, got %v", n)
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected a whole number, got %q", n)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("expected a whole number, got %T", v)
}
