package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hgmendoza/recaudo/internal/record"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "registros_semana_34.csv", Filename(34))
}

func TestService_WriteWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockRecordLister(ctrl)
	svc := NewService(lister)

	phone := "5512345678"
	week := 34
	initial := int64(123456)
	duration := 12
	notes := "Acordó pagar, en dos exhibiciones"

	created := time.Date(2025, 8, 20, 14, 30, 0, 0, time.UTC)

	lister.EXPECT().ListWeek(gomock.Any(), 34).Return([]*record.Record{
		{
			ID:                    7,
			ClientID:              "C001",
			NameSnap:              "María López",
			ManagementUnitSnap:    "GM1",
			ProductSnap:           "Credito",
			PaymentChannelSnap:    "Semanal",
			CollectionNotesSnap:   "Visita",
			PromiseDate:           time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
			Phone:                 &phone,
			Week:                  &week,
			InitialPaymentCents:   &initial,
			DurationWeeks:         &duration,
			Notes:                 &notes,
			CreatedAt:             created,
			CreatorUsername:       "maria",
			ArrangementTypeName:   "Convenio",
			CollectionChannelName: "Oficina",
		},
		{
			ID:          8,
			ClientID:    "C002",
			PromiseDate: time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC),
			CreatedAt:   created,
		},
	}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteWeek(context.Background(), &buf, 34))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}), "output must start with UTF-8 BOM")
	assert.Contains(t, buf.String(), "\r\n")

	r := csv.NewReader(bytes.NewReader(raw[3:]))

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, header, rows[0])

	got := rows[1]
	assert.Equal(t, "7", got[0])
	assert.Equal(t, "C001", got[1])
	assert.Equal(t, "María López", got[2])
	assert.Equal(t, "2025-08-25", got[7])
	assert.Equal(t, "5512345678", got[8])
	assert.Equal(t, "34", got[9])
	assert.Equal(t, "1234.56", got[10])
	assert.Equal(t, "", got[11], "missing weekly payment stays blank")
	assert.Equal(t, "12", got[12])
	assert.Equal(t, notes, got[13])
	assert.Equal(t, "maria", got[14])
	assert.Equal(t, "2025-08-20 14:30:00", got[15])
	assert.Equal(t, "Convenio", got[16])
	assert.Equal(t, "Oficina", got[17])

	// Optional fields of the sparse record are all blank.
	sparse := rows[2]
	assert.Equal(t, "8", sparse[0])
	for _, idx := range []int{8, 9, 10, 11, 12, 13} {
		assert.Empty(t, sparse[idx])
	}
}

func TestService_WriteWeek_EmptyWeekStillHasHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lister := NewMockRecordLister(ctrl)
	svc := NewService(lister)

	lister.EXPECT().ListWeek(gomock.Any(), 1).Return(nil, nil)

	var buf strings.Builder

	require.NoError(t, svc.WriteWeek(context.Background(), &buf, 1))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbfID,"))
	assert.Equal(t, 1, strings.Count(out, "\r\n"))
}
