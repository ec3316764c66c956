package patient

import "github.com/frontdesk/clinic/pkg/pagination"

// Directory is the paginated, searchable patient list view state. Changing
// the search term or the underlying patients always returns to page 1.
type Directory struct {
	all      []Patient
	filtered []Patient
	term     string
	page     int
	pageSize int
}

// NewDirectory builds a directory on page 1. pageSize is normalized by
// pagination.New: zero or less means the default, and it is capped at
// pagination.MaxPageSize.
func NewDirectory(patients []Patient, pageSize int) *Directory {
	d := &Directory{pageSize: pagination.New(1, pageSize).PageSize}
	d.SetPatients(patients)
	return d
}

func (d *Directory) SetPatients(patients []Patient) {
	d.all = patients
	d.refilter()
}

func (d *Directory) SetSearchTerm(term string) {
	d.term = term
	d.refilter()
}

func (d *Directory) refilter() {
	d.filtered = Search(d.all, d.term)
	d.page = 1
}

// SetPage moves to page n. Values below 1 are treated as 1; pages past the
// end are allowed and show nothing.
func (d *Directory) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	d.page = n
}

// NextPage advances unless already on the last page.
func (d *Directory) NextPage() {
	if d.params().HasNext(len(d.filtered)) {
		d.page++
	}
}

// PreviousPage goes back unless already on page 1.
func (d *Directory) PreviousPage() {
	if d.params().HasPrevious() {
		d.page--
	}
}

func (d *Directory) params() pagination.Params {
	return pagination.Params{Page: d.page, PageSize: d.pageSize}
}

func (d *Directory) Term() string { return d.term }
func (d *Directory) CurrentPage() int { return d.page }
func (d *Directory) PageSize() int { return d.pageSize }
func (d *Directory) Filtered() []Patient { return d.filtered }
func (d *Directory) TotalPages() int { return PageCount(len(d.filtered), d.pageSize) }
func (d *Directory) Page() []Patient { return Paginate(d.filtered, d.page, d.pageSize) }
func (d *Directory) Counts() map[Status]int { return CountByStatus(d.all) }

// Summary renders the footer line for the current page.
func (d *Directory) Summary() string {
	return d.params().Summary(len(d.filtered))
}
