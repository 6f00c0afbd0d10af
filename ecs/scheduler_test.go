package ecs

import (
	"reflect"
	"testing"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (s *recordSystem) Update(_ *World) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerOrdering(t *testing.T) {
	tests := []struct {
		name  string
		build func(log *[]string) *Scheduler
		want  []string
	}{
		{
			name: "registration_order",
			build: func(log *[]string) *Scheduler {
				s := NewScheduler()
				s.Add("a", &recordSystem{"a1", log}, &recordSystem{"a2", log})
				s.Add("b", &recordSystem{"b1", log})
				return s
			},
			want: []string{"a1", "a2", "b1"},
		},
		{
			name: "add_before_label",
			build: func(log *[]string) *Scheduler {
				s := NewScheduler()
				s.Add("camera", &recordSystem{"pan", log}, &recordSystem{"zoom", log})
				s.AddBefore("camera", "input", &recordSystem{"collect", log})
				return s
			},
			want: []string{"collect", "pan", "zoom"},
		},
		{
			name: "add_after_label_group",
			build: func(log *[]string) *Scheduler {
				s := NewScheduler()
				s.Add("camera", &recordSystem{"pan", log}, &recordSystem{"zoom", log})
				s.Add("render", &recordSystem{"draw", log})
				s.AddAfter("camera", "physics", &recordSystem{"step", log})
				return s
			},
			want: []string{"pan", "zoom", "step", "draw"},
		},
		{
			name: "missing_target_appends",
			build: func(log *[]string) *Scheduler {
				s := NewScheduler()
				s.Add("a", &recordSystem{"a1", log})
				s.AddBefore("nope", "b", &recordSystem{"b1", log})
				s.AddAfter("nope", "c", &recordSystem{"c1", log})
				return s
			},
			want: []string{"a1", "b1", "c1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			s := tc.build(&log)
			s.Update(NewWorld())
			if !reflect.DeepEqual(log, tc.want) {
				t.Fatalf("run order %v, want %v", log, tc.want)
			}
		})
	}
}

func TestSchedulerSkipsNilSystems(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Add("a", nil, &recordSystem{"a1", &log}, nil)
	s.Update(NewWorld())
	if !reflect.DeepEqual(log, []string{"a1"}) {
		t.Fatalf("run order %v, want [a1]", log)
	}
}

func TestSchedulerLabels(t *testing.T) {
	var log []string
	s := NewScheduler()
	s.Add("camera", &recordSystem{"pan", &log}, &recordSystem{"zoom", &log})
	s.Add("render", &recordSystem{"draw", &log})

	want := []Label{"camera", "camera", "render"}
	if got := s.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels %v, want %v", got, want)
	}
	if got := len(s.Systems()); got != 3 {
		t.Fatalf("expected 3 systems, got %d", got)
	}
}
