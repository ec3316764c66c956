package patient

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderUnset, GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Status string

const (
	StatusActive         Status = "Active"
	StatusUnderTreatment Status = "Under Treatment"
	StatusCompleted      Status = "Completed"
)

// Statuses lists every status in directory display order.
var Statuses = []Status{StatusActive, StatusUnderTreatment, StatusCompleted}

// Patient is one entry of the persisted patients collection.
type Patient struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Gender           Gender     `json:"gender"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	Age              *int       `json:"age"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	MedicalHistory   string     `json:"medicalHistory,omitempty"`
	RegistrationDate time.Time  `json:"registrationDate"`
	Status           Status     `json:"status"`
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// CreateInput carries the registration form. Age, id, registration date and
// status are derived by the registry.
type CreateInput struct {
	FirstName        string
	LastName         string
	Gender           Gender
	DateOfBirth      *time.Time
	Phone            string
	Email            string
	Address          string
	EmergencyContact string
	MedicalHistory   string
}
