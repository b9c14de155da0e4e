package utils

import "testing"

func TestNewPage(t *testing.T) {
	cases := []struct {
		total    int64
		wantLast int
	}{
		{0, 1},
		{1, 1},
		{15, 1},
		{16, 2},
		{45, 3},
	}

	for _, tc := range cases {
		page := NewPage([]int{}, 1, tc.total)
		if page.LastPage != tc.wantLast {
			t.Errorf("NewPage(total=%d).LastPage = %d, want %d", tc.total, page.LastPage, tc.wantLast)
		}
		if page.PerPage != PerPage {
			t.Errorf("NewPage(total=%d).PerPage = %d, want %d", tc.total, page.PerPage, PerPage)
		}
	}
}

func TestPageOffset(t *testing.T) {
	if got := PageOffset(1); got != 0 {
		t.Errorf("PageOffset(1) = %d, want 0", got)
	}
	if got := PageOffset(3); got != 2*PerPage {
		t.Errorf("PageOffset(3) = %d, want %d", got, 2*PerPage)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-06-15"); err != nil {
		t.Errorf("ParseDate(valid) returned error: %v", err)
	}
	if _, err := ParseDate("15/06/2025"); err == nil {
		t.Error("ParseDate should reject non-ISO input")
	}
}
