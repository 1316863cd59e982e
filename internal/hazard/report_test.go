package hazard

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		level float64
		want  Status
	}{
		{1.0, StatusSafe},
		{2.79, StatusSafe},
		{2.8, StatusWarning},
		{3.99, StatusWarning},
		{4.0, StatusHighRisk},
		{7.5, StatusHighRisk},
	}
	for _, tc := range tests {
		if got := Classify(tc.level, 4.0); got != tc.want {
			t.Errorf("Classify(%v, 4) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		level float64
		want  Severity
		text  string
	}{
		{3.0, SeverityNone, "No intervention needed."},
		{4.0, SeverityNone, "No intervention needed."},
		{4.5, SeverityMinor, "sandbagging along the Ponte Ulla banks"},
		{5.0, SeverityMajor, "Evacuate low-lying areas"},
		{6.4, SeverityMajor, "mobile flood barriers"},
		{6.5, SeverityCatastrophic, "aerial evacuation"},
	}
	for _, tc := range tests {
		a := Advise("Ponte Ulla", tc.level, 4.0)
		if a.Severity != tc.want {
			t.Errorf("level %v: severity = %s, want %s", tc.level, a.Severity, tc.want)
		}
		if !strings.Contains(a.Recommendation, tc.text) {
			t.Errorf("level %v: recommendation %q lacks %q", tc.level, a.Recommendation, tc.text)
		}
	}
}

func TestAdviceString(t *testing.T) {
	a := Advise("Santiago", 4.5, 4.0)
	if got, want := a.String(), "Minor Breach (0.50m): "; !strings.HasPrefix(got, want) {
		t.Errorf("String() = %q, want prefix %q", got, want)
	}
	if got := Advise("Santiago", 1, 4).String(); got != "No intervention needed." {
		t.Errorf("String() = %q", got)
	}
}

func TestParseReadings(t *testing.T) {
	in := "date,station,level\n" +
		"2024-01-10, Santiago, 3.2\n" +
		"2024-01-10,Ponte Ulla,4.6\n"
	got, err := ParseReadings(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Reading{{"Santiago", 3.2}, {"Ponte Ulla", 4.6}}
	if len(got) != len(want) {
		t.Fatalf("got %d readings, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reading %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseReadingsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bad level", "station,level\nA,high\n"},
		{"short row", "station,level\nA\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseReadings(strings.NewReader(tc.in)); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := ParseReadings(strings.NewReader("station,height\nA,1\n"))
	var cerr *hydraulics.ConfigurationError
	if !errors.As(err, &cerr) || cerr.Field != "level" {
		t.Errorf("missing level column: err = %v", err)
	}
}

func TestBuildReport(t *testing.T) {
	readings := []Reading{{"A", 1.0}, {"B", 3.0}, {"C", 4.0}, {"D", 5.2}}
	rep, err := BuildReport(readings, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	if n := rep.Count(StatusSafe); n != 1 {
		t.Errorf("safe = %d, want 1", n)
	}
	if n := rep.Count(StatusWarning); n != 1 {
		t.Errorf("warning = %d, want 1", n)
	}
	if n := rep.Count(StatusHighRisk); n != 2 {
		t.Errorf("high risk = %d, want 2", n)
	}
	// A level equal to the threshold is high risk but not a breach.
	breaches := rep.Breaches()
	if len(breaches) != 1 || breaches[0].Station != "D" {
		t.Errorf("breaches = %+v, want only D", breaches)
	}
	if breaches[0].Advice.Severity != SeverityMajor {
		t.Errorf("D severity = %s", breaches[0].Advice.Severity)
	}

	var perr *hydraulics.InvalidParameterError
	if _, err := BuildReport(readings, 0); !errors.As(err, &perr) {
		t.Errorf("threshold 0: err = %v, want InvalidParameterError", err)
	}
}
