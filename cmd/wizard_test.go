package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

func TestPromptProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    hydraulics.Profile
		wantErr bool
	}{
		{
			name:  "defaults",
			input: "Ona River\n15\n0.0015\n\n\n\n",
			want:  hydraulics.Profile{BasinName: "Ona River", ChannelWidth: 15, Slope: 0.0015, ManningN: 0.035, SideSlope: 2, ThresholdHigh: 4.5},
		},
		{
			name:  "retry on blank and bad input",
			input: "\nTambre\nwide\n8\n0.002\n0.03\n1.5\n3",
			want:  hydraulics.Profile{BasinName: "Tambre", ChannelWidth: 8, Slope: 0.002, ManningN: 0.03, SideSlope: 1.5, ThresholdHigh: 3},
		},
		{
			name:    "input ends early",
			input:   "Ulla\n10\n",
			wantErr: true,
		},
		{
			name:    "invalid channel",
			input:   "Ulla\n-10\n0.001\n\n\n\n",
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := promptProfile(bufio.NewReader(strings.NewReader(tc.input)))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
