package service

import (
	"math"
	"strconv"

	"github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/model"
)

// DefaultThreshold dipakai bila request tidak mengirim threshold.
const DefaultThreshold = 75.0

// CalculatePercentage returns present/total*100 rounded to 2 decimals, 0 when total is 0.
func CalculatePercentage(present, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return round2((float64(present) / float64(total)) * 100)
}

// CalculateClassesNeeded returns the smallest X >= 0 with
// (present+X)/(total+X) >= threshold/100, assuming every extra class is attended.
//
// A 100% threshold returns 0 even with absences on record. Results that do not fit
// in an int are clamped to math.MaxInt.
func CalculateClassesNeeded(present, total int, threshold float64) int {
	fraction := threshold / 100

	if total == 0 {
		return 0
	}

	current := (float64(present) / float64(total)) * 100
	if current >= threshold {
		return 0
	}

	// (P + X) / (T + X) >= f  =>  X >= (f*T - P) / (1 - f)
	numerator := fraction*float64(total) - float64(present)
	denominator := 1 - fraction
	if denominator == 0 {
		return 0
	}

	return clampCount(math.Ceil(numerator / denominator))
}

// CalculateSkippableClasses returns the largest X >= 0 with (present-X)/total >= threshold/100.
// Total stays fixed; skipped classes are not added to it.
//
// A threshold of 0 has no divisor; the result is present, since (present-present)/total >= 0.
// Results that do not fit in an int are clamped to math.MaxInt.
func CalculateSkippableClasses(present, total int, threshold float64) int {
	if total == 0 {
		return 0
	}

	fraction := threshold / 100
	current := (float64(present) / float64(total)) * 100
	if current < threshold {
		return 0
	}

	numerator := float64(present) - fraction*float64(total)
	if numerator <= 0 {
		return 0
	}

	// threshold 0: semua kelas yang dihadiri boleh dilewati
	if fraction == 0 {
		return present
	}

	return clampCount(math.Floor(numerator / fraction))
}

// ProcessSubjects computes per-subject metrics in input order and the aggregate over
// valid records. Records with negative counts or present > total are skipped.
// Callers bound each count (the request DTO caps them at MaxInt32) so the sums cannot overflow.
func ProcessSubjects(records []model.SubjectRecord, threshold float64) model.BatchResult {
	results := make([]model.SubjectResult, 0, len(records))
	totalPresent := 0
	totalLectures := 0

	for _, r := range records {
		if !r.Valid() {
			continue
		}

		percentage := CalculatePercentage(r.Present, r.Total)
		results = append(results, model.SubjectResult{
			Subject:       r.Subject,
			Total:         r.Total,
			Present:       r.Present,
			Percentage:    percentage,
			Status:        model.StatusFor(percentage, threshold),
			ClassesNeeded: CalculateClassesNeeded(r.Present, r.Total, threshold),
			CanSkip:       CalculateSkippableClasses(r.Present, r.Total, threshold),
		})

		totalPresent += r.Present
		totalLectures += r.Total
	}

	aggregatePercentage := CalculatePercentage(totalPresent, totalLectures)

	return model.BatchResult{
		Subjects: results,
		Aggregate: model.AggregateResult{
			TotalPresent:  totalPresent,
			TotalLectures: totalLectures,
			Percentage:    aggregatePercentage,
			Status:        model.StatusFor(aggregatePercentage, threshold),
		},
	}
}

// clampCount converts a whole-valued float to a count in [0, math.MaxInt].
func clampCount(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	}
	return int(v)
}

// round2 rounds through decimal formatting so halves resolve on the exact binary value.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	return r
}
