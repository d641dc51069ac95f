package handler

import "testing"

func TestPageWindow(t *testing.T) {
	cases := []struct {
		total, page, limit                      int
		wantPage, wantLimit, wantStart, wantEnd int
	}{
		{120, 1, 50, 1, 50, 0, 50},
		{120, 2, 50, 2, 50, 50, 100},
		{120, 3, 50, 3, 50, 100, 120},
		{120, 4, 50, 4, 50, 120, 120},
		{120, 0, 0, 1, 50, 0, 50},
		{120, -2, -1, 1, 50, 0, 50},
		{0, 1, 50, 1, 50, 0, 0},
		{5, 1, 10, 1, 10, 0, 5},
	}
	for _, tc := range cases {
		page, limit, start, end := pageWindow(tc.total, tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit || start != tc.wantStart || end != tc.wantEnd {
			t.Errorf("pageWindow(%d, %d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tc.total, tc.page, tc.limit, page, limit, start, end,
				tc.wantPage, tc.wantLimit, tc.wantStart, tc.wantEnd)
		}
	}
}
