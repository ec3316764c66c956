package examination

import "time"

// Category tags an attached image.
type Category string

const (
	CategoryIntraoral Category = "intraoral"
	CategoryXRay      Category = "xray"
)

// Categories lists the accepted image categories in display order.
var Categories = []Category{CategoryIntraoral, CategoryXRay}

func (c Category) Valid() bool {
	return c == CategoryIntraoral || c == CategoryXRay
}

// Image references an uploaded file. The file itself is never read.
type Image struct {
	File string   `json:"file"`
	Type Category `json:"type"`
}

// Draft is the in-progress examination held by a Workflow.
type Draft struct {
	PatientID string `json:"patientId"`

	// Step 1: chief complaint and vitals.
	ChiefComplaint string `json:"chiefComplaint"`
	PainLevel      int    `json:"painLevel"`
	BloodPressure  string `json:"bloodPressure"`
	Temperature    string `json:"temperature"`
	Pulse          string `json:"pulse"`

	// Step 2: medical history. The glucose fields are shown only while
	// IsDiabetic is set but are kept when it is cleared.
	IsDiabetic         bool   `json:"isDiabetic"`
	HasAsthma          bool   `json:"hasAsthma"`
	HasCardiacIssues   bool   `json:"hasCardiacIssues"`
	IsPregnant         bool   `json:"isPregnant"`
	HbA1c              string `json:"hba1c"`
	FastingGlucose     string `json:"fastingGlucose"`
	PrandialGlucose    string `json:"prandialGlucose"`
	Allergies          string `json:"allergies"`
	CurrentMedications string `json:"currentMedications"`

	// Step 3: findings and images.
	OralExamination string  `json:"oralExamination"`
	AdditionalNotes string  `json:"additionalNotes"`
	Images          []Image `json:"images"`
}

// Clone returns a deep copy.
func (d Draft) Clone() Draft {
	out := d
	out.Images = make([]Image, len(d.Images))
	copy(out.Images, d.Images)
	return out
}

// CategoryCounts tallies images per category. Both categories are always
// present.
func (d Draft) CategoryCounts() map[Category]int {
	counts := map[Category]int{CategoryIntraoral: 0, CategoryXRay: 0}
	for _, img := range d.Images {
		counts[img.Type]++
	}
	return counts
}

// ImagesOf returns the images of one category in upload order.
func (d Draft) ImagesOf(c Category) []Image {
	var out []Image
	for _, img := range d.Images {
		if img.Type == c {
			out = append(out, img)
		}
	}
	return out
}

// Record is a committed examination as stored in the "examinations"
// collection: the draft fields plus an id and the commit time.
type Record struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Draft
}
