// file: internals/features/attendance/calculator/dto/calculate_dto.go
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/bytedance/sonic"

	"github.com/harshitbisht07/Attendance-Optimization-System/internals/features/attendance/calculator/model"
)

var (
	ErrInvalidSubjects = errors.New("Invalid subjects format")
	ErrMalformedRecord = errors.New("Invalid subject record")
)

// MaxCount adalah batas atas total/present per record.
// Dengan batas ini penjumlahan aggregate tidak bisa overflow int.
const MaxCount = math.MaxInt32

// key JSON dicocokkan persis (case-sensitive), bukan lewat tag struct
const (
	keySubjects  = "subjects"
	keyThreshold = "threshold"
	keySubject   = "subject"
	keyTotal     = "total"
	keyPresent   = "present"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// CalculateRequest: body POST /api/calculate.
// Subjects disimpan mentah supaya "bukan array" bisa dibedakan dari "record rusak".
type CalculateRequest struct {
	Subjects  json.RawMessage
	Threshold *float64 `validate:"omitempty,gte=0,lte=100"`
}

// ParseCalculateRequest decodes the request body. The body must be a JSON object;
// only the exact keys "subjects" and "threshold" are read.
func ParseCalculateRequest(body []byte) (CalculateRequest, error) {
	var fields map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &fields); err != nil {
		return CalculateRequest{}, err
	}
	if fields == nil {
		return CalculateRequest{}, errors.New("request body must be a JSON object")
	}

	req := CalculateRequest{Subjects: bytes.TrimSpace(fields[keySubjects])}

	if raw, ok := present(fields, keyThreshold); ok {
		var th float64
		if err := sonic.Unmarshal(raw, &th); err != nil {
			return CalculateRequest{}, fmt.Errorf("threshold: %w", err)
		}
		req.Threshold = &th
	}

	return req, nil
}

// ThresholdOr returns the requested threshold, or def when the field was absent or null.
func (r CalculateRequest) ThresholdOr(def float64) float64 {
	if r.Threshold == nil {
		return def
	}
	return *r.Threshold
}

// SubjectInput: semua field opsional, default diterapkan di ToRecord.
type SubjectInput struct {
	Subject *string
	Total   *int
	Present *int
}

// SubjectInputs decodes the subjects array. An absent field yields an empty slice;
// anything other than a JSON array returns ErrInvalidSubjects. Every element must be
// a JSON object, otherwise the error wraps ErrMalformedRecord.
func (r CalculateRequest) SubjectInputs() ([]SubjectInput, error) {
	if len(r.Subjects) == 0 {
		return []SubjectInput{}, nil
	}
	if r.Subjects[0] != '[' {
		return nil, ErrInvalidSubjects
	}

	var elems []json.RawMessage
	if err := sonic.Unmarshal(r.Subjects, &elems); err != nil {
		return nil, errors.Join(ErrMalformedRecord, err)
	}

	out := make([]SubjectInput, 0, len(elems))
	for i, raw := range elems {
		in, err := decodeSubjectInput(raw)
		if err != nil {
			return nil, errors.Join(ErrMalformedRecord, fmt.Errorf("subjects[%d]: %w", i, err))
		}
		out = append(out, in)
	}
	return out, nil
}

func decodeSubjectInput(raw json.RawMessage) (SubjectInput, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return SubjectInput{}, errors.New("record must be a JSON object")
	}

	var fields map[string]json.RawMessage
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return SubjectInput{}, err
	}

	var in SubjectInput
	if v, ok := present(fields, keySubject); ok {
		var name string
		if err := sonic.Unmarshal(v, &name); err != nil {
			return SubjectInput{}, fmt.Errorf("%s: %w", keySubject, err)
		}
		in.Subject = &name
	}

	var err error
	if in.Total, err = decodeCount(fields, keyTotal); err != nil {
		return SubjectInput{}, err
	}
	if in.Present, err = decodeCount(fields, keyPresent); err != nil {
		return SubjectInput{}, err
	}
	return in, nil
}

// decodeCount: absent → nil; null atau bukan integer → error; |n| > MaxCount → error.
func decodeCount(fields map[string]json.RawMessage, key string) (*int, error) {
	v, ok := fields[key]
	if !ok {
		return nil, nil
	}
	var n int64
	if err := sonic.Unmarshal(v, &n); err != nil || isNull(v) {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	if n > MaxCount || n < -MaxCount {
		return nil, fmt.Errorf("%s %d is out of range", key, n)
	}
	c := int(n)
	return &c, nil
}

// present returns the raw value for key when it exists and is not null.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := fields[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

func isNull(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

/* =========================================================
   MAPPING
========================================================= */

const DefaultSubjectName = "Unknown"

// ToRecord applies the defaults; the subject name is kept byte for byte.
func (in SubjectInput) ToRecord() model.SubjectRecord {
	rec := model.SubjectRecord{Subject: DefaultSubjectName}
	if in.Subject != nil {
		rec.Subject = *in.Subject
	}
	if in.Total != nil {
		rec.Total = *in.Total
	}
	if in.Present != nil {
		rec.Present = *in.Present
	}
	return rec
}

func ToRecords(in []SubjectInput) []model.SubjectRecord {
	out := make([]model.SubjectRecord, 0, len(in))
	for _, s := range in {
		out = append(out, s.ToRecord())
	}
	return out
}
