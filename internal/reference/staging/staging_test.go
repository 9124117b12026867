package staging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgmendoza/recaudo/internal/reffile"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("insert")
	require.NoError(t, err)
	assert.Equal(t, ModeInsert, m)

	m, err = ParseMode("upsert")
	require.NoError(t, err)
	assert.Equal(t, ModeUpsert, m)

	// Default mode is upsert.
	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeUpsert, m)

	_, err = ParseMode("merge")
	assert.Error(t, err)
}

func TestCopySource_TrimsAndNullsEmpties(t *testing.T) {
	src := copySource([]reffile.Row{
		{
			ClientID:       "  C001  ",
			Name:           "Maria",
			ManagementUnit: "   ",
			Product:        "",
			PaymentChannel: " Semanal",
		},
	})

	require.True(t, src.Next())

	values, err := src.Values()
	require.NoError(t, err)
	require.Len(t, values, 6)

	assert.Equal(t, "C001", values[0])
	assert.Equal(t, "Maria", values[1])
	assert.Nil(t, values[2], "blank field must coerce to NULL")
	assert.Nil(t, values[3], "empty field must coerce to NULL")
	assert.Equal(t, "Semanal", values[4])
	assert.Nil(t, values[5])

	assert.False(t, src.Next())
	assert.NoError(t, src.Err())
}

func TestSummary_String(t *testing.T) {
	s := &Summary{
		TotalStaged: 120,
		DedupCount:  100,
		NewCount:    30,
		Inserted:    30,
		Updated:     70,
		Elapsed:     1500 * time.Millisecond,
	}

	got := s.String()
	assert.Contains(t, got, "120")
	assert.Contains(t, got, "100")
	assert.Contains(t, got, "30 insertadas")
	assert.Contains(t, got, "70 actualizadas")
	assert.Contains(t, got, "1.50s")
}

func TestSummary_CountInvariants(t *testing.T) {
	// new <= dedup <= staged must hold for any applied summary; the
	// upsert arithmetic floors updated at zero.
	s := &Summary{TotalStaged: 10, DedupCount: 7, NewCount: 7}
	s.Inserted = s.NewCount
	s.Updated = max(s.DedupCount-s.NewCount, 0)

	assert.LessOrEqual(t, s.NewCount, s.DedupCount)
	assert.LessOrEqual(t, s.DedupCount, s.TotalStaged)
	assert.Equal(t, int64(0), s.Updated)
}
