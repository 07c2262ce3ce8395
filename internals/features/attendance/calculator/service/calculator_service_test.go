package service

import (
	"math"
	"reflect"
	"testing"

	"github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/model"
)

func TestCalculatePercentage(t *testing.T) {
	cases := []struct {
		present, total int
		want           float64
	}{
		{0, 0, 0.0},
		{5, 0, 0.0},
		{75, 100, 75.0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{10, 10, 100.0},
		{0, 7, 0.0},
	}
	for _, tc := range cases {
		if got := CalculatePercentage(tc.present, tc.total); got != tc.want {
			t.Errorf("CalculatePercentage(%d, %d) = %v, want %v", tc.present, tc.total, got, tc.want)
		}
	}
}

func TestCalculateClassesNeeded(t *testing.T) {
	cases := []struct {
		name           string
		present, total int
		threshold      float64
		want           int
	}{
		{"no lectures", 0, 0, 75, 0},
		{"already at threshold", 75, 100, 75, 0},
		{"above threshold", 90, 100, 75, 0},
		{"half attended", 50, 100, 75, 100},
		{"rounds up", 2, 4, 75, 4},
		{"hundred percent threshold", 9, 10, 100, 0},
		{"nothing attended", 0, 10, 50, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateClassesNeeded(tc.present, tc.total, tc.threshold); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateClassesNeeded_ReachesThreshold(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for present := 0; present <= total; present++ {
			x := CalculateClassesNeeded(present, total, 75)
			p, tt := float64(present+x), float64(total+x)
			if p/tt*100 < 75-1e-9 {
				t.Fatalf("present=%d total=%d: %d classes leave %.4f%%", present, total, x, p/tt*100)
			}
			if x > 0 {
				p, tt = float64(present+x-1), float64(total+x-1)
				if p/tt*100 >= 75 {
					t.Fatalf("present=%d total=%d: %d classes is not minimal", present, total, x)
				}
			}
		}
	}
}

func TestCalculateSkippableClasses(t *testing.T) {
	cases := []struct {
		name           string
		present, total int
		threshold      float64
		want           int
	}{
		{"no lectures", 0, 0, 75, 0},
		{"below threshold", 50, 100, 75, 0},
		{"exactly at threshold", 75, 100, 75, 0},
		{"slack", 90, 100, 75, 20},
		{"floors", 10, 10, 75, 3},
		{"zero threshold", 4, 10, 0, 4},
		{"zero threshold nothing attended", 0, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateSkippableClasses(tc.present, tc.total, tc.threshold); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProcessSubjects(t *testing.T) {
	records := []model.SubjectRecord{
		{Subject: "TCS-401", Total: 100, Present: 75},
		{Subject: "bad", Total: 5, Present: 10},
		{Subject: "TCS-402", Total: 100, Present: 50},
		{Subject: "TCS-403", Total: 100, Present: 90},
		{Subject: "neg", Total: -1, Present: 0},
	}

	got := ProcessSubjects(records, 75)

	want := model.BatchResult{
		Subjects: []model.SubjectResult{
			{Subject: "TCS-401", Total: 100, Present: 75, Percentage: 75.0, Status: model.StatusSafe},
			{Subject: "TCS-402", Total: 100, Present: 50, Percentage: 50.0, Status: model.StatusDanger, ClassesNeeded: 100},
			{Subject: "TCS-403", Total: 100, Present: 90, Percentage: 90.0, Status: model.StatusSafe, CanSkip: 20},
		},
		Aggregate: model.AggregateResult{
			TotalPresent:  215,
			TotalLectures: 300,
			Percentage:    71.67,
			Status:        model.StatusDanger,
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ProcessSubjects mismatch\n got: %+v\nwant: %+v", got, want)
	}

	again := ProcessSubjects(records, 75)
	if !reflect.DeepEqual(got, again) {
		t.Fatal("ProcessSubjects is not deterministic for identical input")
	}
}

func TestProcessSubjects_AllInvalid(t *testing.T) {
	records := []model.SubjectRecord{{Subject: "x", Total: 5, Present: 10}}

	got := ProcessSubjects(records, 75)
	if got.Subjects == nil || len(got.Subjects) != 0 {
		t.Fatalf("expected empty non-nil subjects, got %#v", got.Subjects)
	}
	if got.Aggregate.Percentage != 0 || got.Aggregate.Status != model.StatusDanger {
		t.Errorf("unexpected aggregate %+v", got.Aggregate)
	}

	got = ProcessSubjects(records, 0)
	if got.Aggregate.Status != model.StatusSafe {
		t.Errorf("threshold 0 should be Safe, got %s", got.Aggregate.Status)
	}
}

func TestProcessSubjects_BoundaryIsSafe(t *testing.T) {
	got := ProcessSubjects([]model.SubjectRecord{{Subject: "a", Total: 4, Present: 3}}, 75)
	if got.Subjects[0].Status != model.StatusSafe {
		t.Errorf("75%% against threshold 75 should be Safe, got %s", got.Subjects[0].Status)
	}
}

func TestCalculateClassesNeeded_ClampsHugeResult(t *testing.T) {
	// 1 - f ~ 1e-10, jadi X ~ 2e19: tidak muat di int64
	got := CalculateClassesNeeded(0, 2_000_000_000, 99.99999999)
	if got != math.MaxInt {
		t.Errorf("got %d, want math.MaxInt", got)
	}
}

func TestClampCount(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{math.NaN(), 0},
		{42, 42},
		{math.Inf(1), math.MaxInt},
		{1e30, math.MaxInt},
	}
	for _, tc := range cases {
		if got := clampCount(tc.in); got != tc.want {
			t.Errorf("clampCount(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
