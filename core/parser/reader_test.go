package parser

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"kitcheck/core/types"
	"kitcheck/internal/errors"
)

func decimalInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

const sampleInput = `1500
8
cpu_1 CPU 500 300 LGA1700 95
cpu_2 CPU 450 250 AM5 105
mobo_1 Motherboard 150 200 LGA1700 DDR5
mobo_2 Motherboard 140 180 AM5 DDR4
gpu_1 GPU 700 600 - 300
gpu_2 GPU 600 500 - 250
ram_1 RAM 100 150 DDR5 -
psu_1 PSU 50 100 750 -
3
kit_A cpu_1 mobo_1 gpu_1 ram_1 psu_1
kit_B cpu_2 mobo_2 gpu_1 ram_1 psu_1
kit_C cpu_1 mobo_1 gpu_2 ram_1 psu_1
`

func TestReadDocumentSample(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.True(t, doc.Budget.Equal(decimalInt(1500)))
	require.Len(t, doc.Components, 8)
	require.Len(t, doc.Kits, 3)
	require.Empty(t, doc.Discards)

	require.Equal(t, types.Component{
		ID:          "cpu_1",
		Category:    types.CategoryCPU,
		Performance: 500,
		Cost:        decimalInt(300),
		Spec1:       "LGA1700",
		Spec2:       "95",
	}, doc.Components[0])

	require.Equal(t, types.Kit{
		ID:            "kit_B",
		CPUID:         "cpu_2",
		MotherboardID: "mobo_2",
		GPUID:         "gpu_1",
		RAMID:         "ram_1",
		PSUID:         "psu_1",
	}, doc.Kits[1])
}

func TestReadDocumentHeaderAbort(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"blank lines only", "\n\n  \n"},
		{"non-numeric budget", "lots\n2\n"},
		{"missing component count", "1500\n"},
		{"non-numeric component count", "1500\nmany\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.input))
			require.Error(t, err)
			require.True(t, errors.IsType(err, errors.TypeInput))
		})
	}
}

func TestReadDocumentMalformedComponentRows(t *testing.T) {
	input := `1000
5
cpu_1 CPU 500 300 LGA1700 95
short row
cpu_2 CPU high 250 AM5 105
cpu_3 CPU 450 12.5 AM5 105
cpu_4 CPU 450 cheap AM5 105
0
`
	doc, err := ReadDocument(strings.NewReader(input))
	require.NoError(t, err)

	// 5 rows in, 1 valid row out.
	require.Len(t, doc.Components, 1)
	require.Equal(t, "cpu_1", doc.Components[0].ID)

	require.Len(t, doc.Discards, 4)
	for _, d := range doc.Discards {
		require.Equal(t, SectionComponent, d.Section)
	}
	require.Equal(t, "fewer than six fields", doc.Discards[0].Reason)
	require.Equal(t, "non-integer performance score", doc.Discards[1].Reason)
	require.Equal(t, "non-integer cost", doc.Discards[2].Reason)
	require.Equal(t, "non-integer cost", doc.Discards[3].Reason)
}

func TestReadDocumentMalformedKitRow(t *testing.T) {
	input := `1000
1
cpu_1 CPU 500 300 LGA1700 95
2
kit_A cpu_1 mobo_1 gpu_1 ram_1 psu_1
kit_B cpu_1 mobo_1
`
	doc, err := ReadDocument(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, doc.Kits, 1)
	require.Equal(t, "kit_A", doc.Kits[0].ID)
	require.Len(t, doc.Discards, 1)
	require.Equal(t, SectionKit, doc.Discards[0].Section)
}

func TestReadDocumentTruncatedSections(t *testing.T) {
	t.Run("short component section", func(t *testing.T) {
		input := "1000\n5\ncpu_1 CPU 500 300 LGA1700 95\n"
		doc, err := ReadDocument(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, doc.Components, 1)
		require.Empty(t, doc.Kits)
	})

	t.Run("missing kit count means no kits", func(t *testing.T) {
		input := "1000\n1\ncpu_1 CPU 500 300 LGA1700 95\n"
		doc, err := ReadDocument(strings.NewReader(input))
		require.NoError(t, err)
		require.Empty(t, doc.Kits)
	})

	t.Run("non-numeric kit count means no kits", func(t *testing.T) {
		input := "1000\n0\nsome\nkit_A a b c d e\n"
		doc, err := ReadDocument(strings.NewReader(input))
		require.NoError(t, err)
		require.Empty(t, doc.Kits)
	})

	t.Run("short kit section", func(t *testing.T) {
		input := "1000\n0\n3\nkit_A a b c d e\n"
		doc, err := ReadDocument(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, doc.Kits, 1)
	})
}

func TestReadDocumentIgnoresBlankLines(t *testing.T) {
	input := "\n1000\n\n1\n\ncpu_1 CPU 500 300 LGA1700 95\n\n1\n\nkit_A a b c d e\n\n"
	doc, err := ReadDocument(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, doc.Components, 1)
	require.Len(t, doc.Kits, 1)
}

func TestReadDocumentNegativeBudgetParses(t *testing.T) {
	// A signed budget is structurally valid; every costed kit simply
	// exceeds it downstream.
	doc, err := ReadDocument(strings.NewReader("-5\n0\n0\n"))
	require.NoError(t, err)
	require.True(t, doc.Budget.IsNegative())
}
