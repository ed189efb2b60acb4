package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSupervisionLevels(t *testing.T) {
	l1, ok := SupervisionLevel(1)
	require.True(t, ok)
	require.Equal(t, 98.0, l1.RequiredCompaction)
	require.Equal(t, 500, l1.TestFrequencyM3)

	l2, ok := SupervisionLevel(2)
	require.True(t, ok)
	require.Equal(t, 95.0, l2.RequiredCompaction)
	require.Equal(t, 1000, l2.TestFrequencyM3)

	l3, ok := SupervisionLevel(3)
	require.True(t, ok)
	require.Equal(t, 92.0, l3.RequiredCompaction)
	require.Equal(t, 2500, l3.TestFrequencyM3)

	_, ok = SupervisionLevel(4)
	require.False(t, ok)
}

func TestLookupStandardTolerantForms(t *testing.T) {
	for _, code := range []string{"AS_3798", "as_3798", "AS 3798", "as-3798", " AS 3798 "} {
		std, ok := LookupStandard(code)
		require.True(t, ok, "code %q should resolve", code)
		require.Equal(t, "AS_3798", std.Code)
		require.NotEmpty(t, std.Clauses)
	}

	_, ok := LookupStandard("AS_9999")
	require.False(t, ok)
}

func TestStandardCodesSorted(t *testing.T) {
	codes := StandardCodes()
	require.Equal(t, []string{"AS_2870", "AS_3600", "AS_3798", "AS_4678"}, codes)
}
