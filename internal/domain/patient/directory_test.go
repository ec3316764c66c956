package patient

import (
	"math"
	"testing"

	"github.com/frontdesk/clinic/pkg/pagination"
)

func TestDirectory_SearchResetsPage(t *testing.T) {
	d := NewDirectory(makePatients(24), 10)

	if d.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", d.TotalPages())
	}
	d.SetPage(3)
	if d.CurrentPage() != 3 || len(d.Page()) != 4 {
		t.Fatalf("expected page 3 with 4 patients, got page %d with %d", d.CurrentPage(), len(d.Page()))
	}

	d.SetSearchTerm("zephyr")
	if d.CurrentPage() != 1 {
		t.Errorf("expected search to reset to page 1, got %d", d.CurrentPage())
	}
	if got := d.Page(); len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
	if d.TotalPages() != 1 {
		t.Errorf("expected 1 page of results, got %d", d.TotalPages())
	}
}

func TestDirectory_ClearingSearchRestoresAll(t *testing.T) {
	d := NewDirectory(makePatients(24), 10)
	d.SetSearchTerm("zephyr")
	d.SetSearchTerm("")

	if len(d.Filtered()) != 24 {
		t.Errorf("expected all 24 patients, got %d", len(d.Filtered()))
	}
	if d.Term() != "" {
		t.Errorf("expected empty term, got %q", d.Term())
	}
}

func TestDirectory_NextPreviousBounded(t *testing.T) {
	d := NewDirectory(makePatients(24), 10)

	d.PreviousPage()
	if d.CurrentPage() != 1 {
		t.Errorf("expected to stay on page 1, got %d", d.CurrentPage())
	}
	d.NextPage()
	d.NextPage()
	d.NextPage()
	if d.CurrentPage() != 3 {
		t.Errorf("expected to stop on last page 3, got %d", d.CurrentPage())
	}
	if d.Summary() != "Showing 21 to 24 of 24" {
		t.Errorf("unexpected summary %q", d.Summary())
	}
}

func TestDirectory_SetPatientsResetsPage(t *testing.T) {
	d := NewDirectory(makePatients(24), 10)
	d.SetPage(2)
	d.SetPatients(makePatients(25))
	if d.CurrentPage() != 1 {
		t.Errorf("expected page reset to 1, got %d", d.CurrentPage())
	}
	if d.TotalPages() != 3 {
		t.Errorf("expected 3 pages for 25 patients, got %d", d.TotalPages())
	}
}

func TestDirectory_DefaultPageSizeAndCounts(t *testing.T) {
	d := NewDirectory(DemoPatients(testNow), 0)
	if d.PageSize() != 10 {
		t.Errorf("expected default page size 10, got %d", d.PageSize())
	}
	d.SetSearchTerm("sarah")
	counts := d.Counts()
	if counts[StatusActive] != 2 {
		t.Errorf("expected counts over all patients regardless of search, got %v", counts)
	}
}

func TestDirectory_PageFarPastEnd(t *testing.T) {
	d := NewDirectory(makePatients(24), 10)
	d.SetPage(math.MaxInt)

	if got := d.Page(); len(got) != 0 {
		t.Errorf("expected empty page, got %d patients", len(got))
	}
	if d.Summary() != "Showing 0 of 24" {
		t.Errorf("unexpected summary %q", d.Summary())
	}
	d.NextPage()
	if d.CurrentPage() != math.MaxInt {
		t.Errorf("expected NextPage to stay put past the end, got %d", d.CurrentPage())
	}
	d.PreviousPage()
	if d.CurrentPage() != math.MaxInt-1 {
		t.Errorf("expected PreviousPage to step back, got %d", d.CurrentPage())
	}
}

func TestDirectory_PageSizeCapped(t *testing.T) {
	d := NewDirectory(makePatients(150), 500)
	if d.PageSize() != pagination.MaxPageSize {
		t.Fatalf("expected page size capped at %d, got %d", pagination.MaxPageSize, d.PageSize())
	}
	if d.TotalPages() != 2 || len(d.Page()) != pagination.MaxPageSize {
		t.Errorf("expected 2 pages of up to %d, got %d pages and %d on page 1",
			pagination.MaxPageSize, d.TotalPages(), len(d.Page()))
	}
}
