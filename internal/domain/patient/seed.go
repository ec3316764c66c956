package patient

import "time"

// DemoPatients returns the four patients written on first use, registered
// 30, 15, 7 and 3 days before now.
func DemoPatients(now time.Time) []Patient {
	day := 24 * time.Hour
	age := func(n int) *int { return &n }

	return []Patient{
		{
			ID:               "PAT-001",
			FirstName:        "John",
			LastName:         "Doe",
			Gender:           GenderMale,
			Age:              age(35),
			Phone:            "+1-555-0123",
			Email:            "john.doe@email.com",
			RegistrationDate: now.Add(-30 * day),
			Status:           StatusActive,
		},
		{
			ID:               "PAT-002",
			FirstName:        "Sarah",
			LastName:         "Wilson",
			Gender:           GenderFemale,
			Age:              age(28),
			Phone:            "+1-555-0456",
			Email:            "sarah.wilson@email.com",
			RegistrationDate: now.Add(-15 * day),
			Status:           StatusActive,
		},
		{
			ID:               "PAT-003",
			FirstName:        "Mike",
			LastName:         "Johnson",
			Gender:           GenderMale,
			Age:              age(42),
			Phone:            "+1-555-0789",
			Email:            "mike.johnson@email.com",
			RegistrationDate: now.Add(-7 * day),
			Status:           StatusUnderTreatment,
		},
		{
			ID:               "PAT-004",
			FirstName:        "Emily",
			LastName:         "Davis",
			Gender:           GenderFemale,
			Age:              age(31),
			Phone:            "+1-555-0321",
			Email:            "emily.davis@email.com",
			RegistrationDate: now.Add(-3 * day),
			Status:           StatusCompleted,
		},
	}
}
