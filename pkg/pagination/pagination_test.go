package pagination

import (
	"math"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	p := New(0, 0)
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("expected default size %d, got %d", DefaultPageSize, p.PageSize)
	}
}

func TestNew_MaxPageSize(t *testing.T) {
	p := New(1, 500)
	if p.PageSize != MaxPageSize {
		t.Errorf("expected size capped at %d, got %d", MaxPageSize, p.PageSize)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		page, size, total int
		start, end        int
	}{
		{1, 10, 24, 0, 10},
		{2, 10, 24, 10, 20},
		{3, 10, 24, 20, 24},
		{4, 10, 24, 24, 24},
		{9, 10, 24, 24, 24},
		{1, 10, 0, 0, 0},
		{math.MaxInt, 10, 24, 24, 24},
		{math.MaxInt / 10, 10, 24, 24, 24},
		{3, MaxPageSize, 24, 24, 24},
	}
	for _, tt := range tests {
		start, end := New(tt.page, tt.size).Bounds(tt.total)
		if start != tt.start || end != tt.end {
			t.Errorf("page %d size %d total %d: expected [%d,%d), got [%d,%d)",
				tt.page, tt.size, tt.total, tt.start, tt.end, start, end)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct{ total, size, want int }{
		{24, 10, 3},
		{20, 10, 2},
		{1, 10, 1},
		{0, 10, 0},
		{5, 0, 0},
		{math.MaxInt, 10, math.MaxInt/10 + 1},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.size); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestHasNextHasPrevious(t *testing.T) {
	p := New(1, 10)
	if !p.HasNext(24) {
		t.Error("expected next page on page 1 of 24 items")
	}
	if p.HasPrevious() {
		t.Error("expected no previous page on page 1")
	}
	p = New(3, 10)
	if p.HasNext(24) {
		t.Error("expected no next page on last page")
	}
	if !p.HasPrevious() {
		t.Error("expected previous page on page 3")
	}
	if New(math.MaxInt, 10).HasNext(24) {
		t.Error("expected no next page far past the end")
	}
}

func TestSummary(t *testing.T) {
	if got := New(3, 10).Summary(24); got != "Showing 21 to 24 of 24" {
		t.Errorf("unexpected summary %q", got)
	}
	if got := New(5, 10).Summary(24); got != "Showing 0 of 24" {
		t.Errorf("unexpected summary %q", got)
	}
	if got := New(math.MaxInt, 10).Summary(24); got != "Showing 0 of 24" {
		t.Errorf("unexpected summary %q", got)
	}
}
