package model

// Status menandai apakah persentase kehadiran sudah memenuhi threshold.
type Status string

const (
	StatusSafe   Status = "Safe"
	StatusDanger Status = "Danger"
)

// StatusFor returns Safe when percentage >= threshold.
func StatusFor(percentage, threshold float64) Status {
	if percentage >= threshold {
		return StatusSafe
	}
	return StatusDanger
}

// SubjectRecord is one subject's raw counts, after request defaults are applied.
type SubjectRecord struct {
	Subject string
	Total   int
	Present int
}

// Valid reports whether 0 <= Present <= Total.
func (r SubjectRecord) Valid() bool {
	return r.Total >= 0 && r.Present >= 0 && r.Present <= r.Total
}

type SubjectResult struct {
	Subject       string  `json:"subject"`
	Total         int     `json:"total"`
	Present       int     `json:"present"`
	Percentage    float64 `json:"percentage"`
	Status        Status  `json:"status"`
	ClassesNeeded int     `json:"classes_needed"`
	CanSkip       int     `json:"can_skip"`
}

type AggregateResult struct {
	TotalPresent  int     `json:"total_present"`
	TotalLectures int     `json:"total_lectures"`
	Percentage    float64 `json:"percentage"`
	Status        Status  `json:"status"`
}

type BatchResult struct {
	Subjects  []SubjectResult `json:"subjects"`
	Aggregate AggregateResult `json:"aggregate"`
}
