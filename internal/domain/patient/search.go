package patient

import (
	"strings"

	"github.com/frontdesk/clinic/pkg/pagination"
)

// Search keeps the patients whose first name, last name or id contains term
// case-insensitively, or whose phone contains term as typed. An empty term
// keeps everyone. Order is preserved.
func Search(patients []Patient, term string) []Patient {
	out := make([]Patient, 0, len(patients))
	if term == "" {
		return append(out, patients...)
	}
	lower := strings.ToLower(term)
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(strings.ToLower(p.ID), lower) ||
			strings.Contains(p.Phone, term) {
			out = append(out, p)
		}
	}
	return out
}

// Paginate returns the 1-indexed page of size pageSize. Pages past the end,
// page numbers below 1 and non-positive sizes yield an empty slice.
func Paginate(patients []Patient, pageNumber, pageSize int) []Patient {
	if pageNumber < 1 || pageSize <= 0 {
		return []Patient{}
	}
	start, end := pagination.Params{Page: pageNumber, PageSize: pageSize}.Bounds(len(patients))
	out := make([]Patient, end-start)
	copy(out, patients[start:end])
	return out
}

// PageCount is ceil(total / pageSize).
func PageCount(total, pageSize int) int {
	return pagination.PageCount(total, pageSize)
}

// CountByStatus tallies patients per status. Every known status is present,
// zero if unused.
func CountByStatus(patients []Patient) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, p := range patients {
		counts[p.Status]++
	}
	return counts
}
