package dto

import (
	"errors"
	"testing"
)

func TestSubjectInputs(t *testing.T) {
	req, err := ParseCalculateRequest([]byte(`{"subjects": [{"subject": "A", "total": 3, "present": 2}, {}]}`))
	if err != nil {
		t.Fatalf("ParseCalculateRequest: %v", err)
	}

	inputs, err := req.SubjectInputs()
	if err != nil {
		t.Fatalf("SubjectInputs: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("want 2 inputs, got %d", len(inputs))
	}

	recs := ToRecords(inputs)
	if recs[0].Subject != "A" || recs[0].Total != 3 || recs[0].Present != 2 {
		t.Errorf("unexpected first record %+v", recs[0])
	}
	if recs[1].Subject != DefaultSubjectName || recs[1].Total != 0 || recs[1].Present != 0 {
		t.Errorf("defaults not applied: %+v", recs[1])
	}
}

func TestSubjectInputs_NotAnArray(t *testing.T) {
	for _, body := range []string{`{"subjects": "x"}`, `{"subjects": {}}`, `{"subjects": true}`} {
		req, err := ParseCalculateRequest([]byte(body))
		if err != nil {
			t.Fatalf("ParseCalculateRequest(%s): %v", body, err)
		}
		if _, err := req.SubjectInputs(); !errors.Is(err, ErrInvalidSubjects) {
			t.Errorf("%s: want ErrInvalidSubjects, got %v", body, err)
		}
	}
}

func TestSubjectInputs_Absent(t *testing.T) {
	req, err := ParseCalculateRequest([]byte(`{"threshold": 80}`))
	if err != nil {
		t.Fatalf("ParseCalculateRequest: %v", err)
	}
	inputs, err := req.SubjectInputs()
	if err != nil || len(inputs) != 0 {
		t.Fatalf("want empty inputs, got %v, %v", inputs, err)
	}
	if got := req.ThresholdOr(75); got != 80 {
		t.Errorf("ThresholdOr = %v, want 80", got)
	}
}

func TestThresholdOr_Default(t *testing.T) {
	var req CalculateRequest
	if got := req.ThresholdOr(75); got != 75 {
		t.Errorf("ThresholdOr = %v, want 75", got)
	}
}

func TestToRecord_KeepsNameBytes(t *testing.T) {
	decomposed := "Cafe\u0301"
	in := SubjectInput{Subject: &decomposed}
	if got := in.ToRecord().Subject; got != decomposed {
		t.Errorf("Subject = %q, want %q unchanged", got, decomposed)
	}
}

func TestSubjectInputs_RejectsNonObjectElements(t *testing.T) {
	for _, body := range []string{`{"subjects": [null]}`, `{"subjects": [1]}`, `{"subjects": [[]]}`, `{"subjects": ["a"]}`} {
		req, err := ParseCalculateRequest([]byte(body))
		if err != nil {
			t.Fatalf("ParseCalculateRequest(%s): %v", body, err)
		}
		if _, err := req.SubjectInputs(); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: want ErrMalformedRecord, got %v", body, err)
		}
	}
}

func TestSubjectInputs_CountBounds(t *testing.T) {
	req, err := ParseCalculateRequest([]byte(`{"subjects": [{"total": 2147483647, "present": 2147483647}]}`))
	if err != nil {
		t.Fatalf("ParseCalculateRequest: %v", err)
	}
	if _, err := req.SubjectInputs(); err != nil {
		t.Errorf("MaxCount must be accepted, got %v", err)
	}

	req, err = ParseCalculateRequest([]byte(`{"subjects": [{"total": 2147483648}]}`))
	if err != nil {
		t.Fatalf("ParseCalculateRequest: %v", err)
	}
	if _, err := req.SubjectInputs(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("count above MaxCount: want ErrMalformedRecord, got %v", err)
	}
}

func TestParseCalculateRequest_ExactKeys(t *testing.T) {
	req, err := ParseCalculateRequest([]byte(`{"Subjects": [{}], "THRESHOLD": 10}`))
	if err != nil {
		t.Fatalf("ParseCalculateRequest: %v", err)
	}
	if len(req.Subjects) != 0 || req.Threshold != nil {
		t.Errorf("mixed-case keys must be ignored, got %+v", req)
	}
}
