package output

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"kitcheck/core/evaluator"
	"kitcheck/core/types"
)

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name   string
		report evaluator.Report
		want   string
	}{
		{
			name:   "best build found",
			report: evaluator.Report{MaxScore: 1500, BestKit: "kit_A"},
			want:   "Maximum Score: 1500\nBest Build: kit_A\n",
		},
		{
			name:   "no valid build",
			report: evaluator.Report{MaxScore: 0, BestKit: types.NoBuild},
			want:   "Maximum Score: 0\nBest Build: NONE\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, TextFormatter{}.Render(&buf, tt.report))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestJSONFormatterGolden(t *testing.T) {
	report := evaluator.Report{
		MaxScore: 1500,
		BestKit:  "kit_A",
		Verdicts: []evaluator.Verdict{
			{
				KitID:    "kit_A",
				Accepted: true,
				Cost:     decimal.NewFromInt(1350),
				Score:    1500,
			},
			{
				KitID:      "kit_B",
				Reason:     evaluator.RejectIncompatible,
				Detail:     `RAM type "DDR5" not supported by motherboard ("DDR4")`,
				FailedRule: "memory_type_match",
				Cost:       decimal.NewFromInt(1280),
			},
		},
		ComponentsIndexed: 8,
		RowsDiscarded:     1,
	}

	var buf bytes.Buffer
	require.NoError(t, JSONFormatter{}.Render(&buf, report))

	g := goldie.New(t)
	g.Assert(t, "report", buf.Bytes())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	f, err := r.Get(FormatText)
	require.NoError(t, err)
	require.Equal(t, FormatText, f.Format())

	f, err = r.Get(FormatJSON)
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f.Format())

	_, err = r.Get(Format("yaml"))
	require.Error(t, err)
}
