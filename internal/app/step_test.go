package app

import "testing"

func TestShouldAdvance(t *testing.T) {
	cases := []struct {
		name                            string
		complete, paused, due, tickOnce bool
		want                            bool
	}{
		{"running and due", false, false, true, false, true},
		{"running not due", false, false, false, false, false},
		{"paused", false, true, true, false, false},
		{"paused single step", false, true, false, true, true},
		{"complete", true, false, true, false, false},
		{"complete single step", true, true, false, true, false},
	}
	for _, tc := range cases {
		if got := shouldAdvance(tc.complete, tc.paused, tc.due, tc.tickOnce); got != tc.want {
			t.Fatalf("%s: shouldAdvance = %v, want %v", tc.name, got, tc.want)
		}
	}
}
