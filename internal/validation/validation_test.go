package validation

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hard75/hard75/internal/models"
)

func validPayload() Payload {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	return Payload{
		Version:       1,
		ExportDate:    "2024-02-01T10:00:00Z",
		AppVersion:    "v0.1.0",
		ChallengeData: models.NewChallenge(start),
	}
}

func TestCheck_ValidPayload(t *testing.T) {
	v := New()
	res := v.Check(validPayload())
	if !res.OK() {
		t.Fatalf("valid payload rejected:\n%s", res.FormatReport())
	}
}

func TestCheck_Problems(t *testing.T) {
	w := -4.0

	tests := []struct {
		name   string
		mutate func(*Payload)
		field  string
	}{
		{
			"missing version",
			func(p *Payload) { p.Version = 0 },
			"Version",
		},
		{
			"missing export date",
			func(p *Payload) { p.ExportDate = "" },
			"ExportDate",
		},
		{
			"zero start date",
			func(p *Payload) { p.ChallengeData.StartDate = time.Time{} },
			"challengeData.startDate",
		},
		{
			"wrong day count",
			func(p *Payload) { p.ChallengeData.Days = p.ChallengeData.Days[:74] },
			"challengeData.days",
		},
		{
			"current index out of range",
			func(p *Payload) { p.ChallengeData.CurrentDayIndex = 76 },
			"challengeData.currentDayIndex",
		},
		{
			"broken index continuity",
			func(p *Payload) { p.ChallengeData.Days[9].Index = 99 },
			"challengeData.days[9].index",
		},
		{
			"missing date",
			func(p *Payload) { p.ChallengeData.Days[0].Date = "" },
			"challengeData.days[0].date",
		},
		{
			"day without attempts",
			func(p *Payload) { p.ChallengeData.Days[4].Attempts = nil },
			"challengeData.days[4].attempts",
		},
		{
			"broken attempt numbering",
			func(p *Payload) { p.ChallengeData.Days[2].Attempts[0].Number = 7 },
			"challengeData.days[2].attempts[0].number",
		},
		{
			"negative weight",
			func(p *Payload) { p.ChallengeData.Days[2].Attempts[0].Weight = &w },
			"challengeData.days[2].attempts[0].weight",
		},
		{
			"completed without timestamp",
			func(p *Payload) { p.ChallengeData.Days[6].Attempts[0].Completed = true },
			"challengeData.days[6].attempts[0].timestamp",
		},
		{
			"timestamp without completion",
			func(p *Payload) {
				ts := time.Date(2024, 1, 8, 20, 0, 0, 0, time.Local)
				p.ChallengeData.Days[6].Attempts[0].Timestamp = &ts
			},
			"challengeData.days[6].attempts[0].timestamp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			p := validPayload()
			tt.mutate(&p)
			res := v.Check(p)
			if res.OK() {
				t.Fatal("payload accepted despite the defect")
			}
			found := false
			for _, prob := range res.Problems {
				if prob.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("no problem for %q in:\n%s", tt.field, res.FormatReport())
			}
		})
	}
}

func TestCheck_ReportsMultipleProblemsAtOnce(t *testing.T) {
	v := New()
	p := validPayload()
	p.ExportDate = ""
	p.ChallengeData.CurrentDayIndex = 0
	p.ChallengeData.Days[0].Date = ""

	res := v.Check(p)
	if len(res.Problems) < 3 {
		t.Errorf("got %d problems, want all of them reported:\n%s", len(res.Problems), res.FormatReport())
	}
}

func TestParsePayload(t *testing.T) {
	v := New()

	data, err := json.Marshal(validPayload())
	if err != nil {
		t.Fatal(err)
	}
	p, res, err := v.ParsePayload(data)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if !res.OK() {
		t.Fatalf("valid payload rejected:\n%s", res.FormatReport())
	}
	if p.Version != 1 || len(p.ChallengeData.Days) != 75 {
		t.Errorf("parsed payload mangled: version=%d days=%d", p.Version, len(p.ChallengeData.Days))
	}

	if _, _, err := v.ParsePayload([]byte("{not json")); err == nil {
		t.Error("malformed JSON must be rejected at decode time")
	}

	// a typed field holding the wrong JSON kind fails at decode time too
	bad := strings.Replace(string(data), `"version": 1`, `"version": "one"`, 1)
	if bad == string(data) {
		bad = strings.Replace(string(data), `"version":1`, `"version":"one"`, 1)
	}
	if _, _, err := v.ParsePayload([]byte(bad)); err == nil {
		t.Error("non-numeric version must be rejected at decode time")
	}
}

func TestFormatReport(t *testing.T) {
	var res Result
	if got := res.FormatReport(); got != "Payload is valid." {
		t.Errorf("empty report = %q", got)
	}

	res.add("challengeData.days", "expected 75 days, got 3")
	got := res.FormatReport()
	if !strings.Contains(got, "challengeData.days") || !strings.Contains(got, "expected 75 days") {
		t.Errorf("report missing problem detail:\n%s", got)
	}
}
