package input

import "testing"

func TestButtonSet(t *testing.T) {
	var s ButtonSet
	if s.Contains(MouseButtonLeft) {
		t.Fatal("empty set should contain nothing")
	}

	s = s.With(MouseButtonLeft).With(MouseButtonMiddle)
	if !s.Contains(MouseButtonLeft) || !s.Contains(MouseButtonMiddle) {
		t.Fatalf("set %b missing added buttons", s)
	}
	if s.Contains(MouseButtonRight) {
		t.Fatalf("set %b contains button that was never added", s)
	}

	if !s.ContainsAny([]MouseButton{MouseButtonRight, MouseButtonMiddle}) {
		t.Fatal("ContainsAny missed a held button")
	}
	if s.ContainsAny([]MouseButton{MouseButtonRight}) {
		t.Fatal("ContainsAny matched a button that is not held")
	}
	if s.ContainsAny(nil) {
		t.Fatal("ContainsAny on empty list should be false")
	}
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		name    string
		want    MouseButton
		wantErr bool
	}{
		{"left", MouseButtonLeft, false},
		{"right", MouseButtonRight, false},
		{"middle", MouseButtonMiddle, false},
		{"Left", 0, true},
		{"wheel", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMouseButton(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tc.name, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q = %v, want %v", tc.name, got, tc.want)
			}
			if got.String() != tc.name {
				t.Fatalf("round trip %q -> %q", tc.name, got.String())
			}
		})
	}
}
