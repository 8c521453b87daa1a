// Package validation checks backup payloads field-by-field before any
// value is trusted. Import is all-or-nothing: a payload that fails here is
// rejected before any existing data is touched.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hard75/hard75/internal/constants"
	"github.com/hard75/hard75/internal/models"
)

// Payload is the structural manifest of an exported challenge
type Payload struct {
	Version       int              `json:"version" validate:"required,min=1"`
	ExportDate    string           `json:"exportDate" validate:"required"`
	AppVersion    string           `json:"appVersion" validate:"required"`
	ChallengeData models.Challenge `json:"challengeData"`
}

// Problem describes a single structural failure in a payload
type Problem struct {
	Field       string
	Description string
}

// Result is the tagged outcome of payload validation
type Result struct {
	Problems []Problem
}

// OK reports whether the payload passed every check
func (r *Result) OK() bool {
	return len(r.Problems) == 0
}

// FormatReport returns a human-readable report of all problems
func (r *Result) FormatReport() string {
	if r.OK() {
		return "Payload is valid."
	}
	report := "Invalid backup payload:\n"
	for _, p := range r.Problems {
		report += fmt.Sprintf("- %s: %s\n", p.Field, p.Description)
	}
	return report
}

func (r *Result) add(field, format string, args ...interface{}) {
	r.Problems = append(r.Problems, Problem{Field: field, Description: fmt.Sprintf(format, args...)})
}

// Validator validates backup payloads
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// ParsePayload decodes and validates raw payload bytes. Decoding into
// typed fields rejects non-numeric numerics up front; the returned Result
// carries every structural problem found after that.
func (v *Validator) ParsePayload(data []byte) (Payload, Result, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, Result{}, fmt.Errorf("malformed backup payload: %w", err)
	}
	return p, v.Check(p), nil
}

// Check runs every structural check against a decoded payload
func (v *Validator) Check(p Payload) Result {
	var res Result

	if err := v.validate.Struct(p); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				res.add(fe.Field(), "failed %q constraint", fe.Tag())
			}
		} else {
			res.add("payload", "%v", err)
		}
	}

	ch := p.ChallengeData
	if ch.StartDate.IsZero() {
		res.add("challengeData.startDate", "missing or unparseable")
	}
	if len(ch.Days) != constants.ChallengeDays {
		res.add("challengeData.days", "expected %d days, got %d", constants.ChallengeDays, len(ch.Days))
		return res
	}
	if ch.CurrentDayIndex < 1 || ch.CurrentDayIndex > constants.ChallengeDays {
		res.add("challengeData.currentDayIndex", "out of range: %d", ch.CurrentDayIndex)
	}

	for i, d := range ch.Days {
		field := fmt.Sprintf("challengeData.days[%d]", i)
		if d.Index != i+1 {
			res.add(field+".index", "expected %d, got %d", i+1, d.Index)
		}
		if d.Date == "" {
			res.add(field+".date", "missing")
		}
		if len(d.Attempts) == 0 {
			res.add(field+".attempts", "day has no attempts")
			continue
		}
		for j, a := range d.Attempts {
			if a.Number != j+1 {
				res.add(fmt.Sprintf("%s.attempts[%d].number", field, j), "expected %d, got %d", j+1, a.Number)
			}
			if a.Weight != nil && *a.Weight < 0 {
				res.add(fmt.Sprintf("%s.attempts[%d].weight", field, j), "negative weight: %v", *a.Weight)
			}
			if a.Completed && a.Timestamp == nil {
				res.add(fmt.Sprintf("%s.attempts[%d].timestamp", field, j), "completed attempt has no timestamp")
			}
			if !a.Completed && a.Timestamp != nil {
				res.add(fmt.Sprintf("%s.attempts[%d].timestamp", field, j), "timestamp on an uncompleted attempt")
			}
		}
	}

	return res
}
