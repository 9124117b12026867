package reference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hgmendoza/recaudo/internal/reference"
	"github.com/hgmendoza/recaudo/internal/reffile"
)

func row(clientID, name string) reffile.Row {
	return reffile.Row{
		ClientID:       clientID,
		Name:           name,
		ManagementUnit: "GM1",
		Product:        "Credito",
	}
}

func TestService_Load_CountsAddUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	tx := reference.NewMockLoadTx(ctrl)
	svc := reference.NewService(repo)

	ds := &reffile.Dataset{
		Rows: []reffile.Row{
			row("C001", "Maria"),  // new
			row("C002", "Juan"),   // existing
			row("   ", "NoKey"),   // skipped: blank after trim
			row(" C003 ", "Rosa"), // new, trimmed
		},
		Malformed: 1, // one unreadable row from the file
	}

	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)

	tx.EXPECT().Get(gomock.Any(), "C001").Return(nil, reference.ErrNotFound)
	tx.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *reference.Row) error {
			assert.Equal(t, "C001", r.ClientID)
			return nil
		})

	tx.EXPECT().Get(gomock.Any(), "C002").Return(&reference.Row{ID: 9, ClientID: "C002"}, nil)
	tx.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *reference.Row) error {
			assert.Equal(t, int64(9), r.ID)
			assert.Equal(t, "Juan", r.Name)
			return nil
		})

	tx.EXPECT().Get(gomock.Any(), "C003").Return(nil, reference.ErrNotFound)
	tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	stats, err := svc.Load(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Inserted)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, ds.TotalRows(), stats.Inserted+stats.Updated+stats.Skipped)
}

func TestService_Load_ReuploadIsAllUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	tx := reference.NewMockLoadTx(ctrl)
	svc := reference.NewService(repo)

	ds := &reffile.Dataset{Rows: []reffile.Row{row("C001", "Maria"), row("C002", "Juan")}}

	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Get(gomock.Any(), "C001").Return(&reference.Row{ID: 1, ClientID: "C001"}, nil)
	tx.EXPECT().Get(gomock.Any(), "C002").Return(&reference.Row{ID: 2, ClientID: "C002"}, nil)
	tx.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	stats, err := svc.Load(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Inserted)
	assert.Equal(t, 2, stats.Updated)
	assert.Equal(t, 0, stats.Skipped)
}

func TestService_Load_InFileDuplicatesNotCollapsed(t *testing.T) {
	// The direct variant runs one lookup-then-write per occurrence: the
	// first duplicate inserts, the second updates. The staging variant is
	// the one that collapses duplicates.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	tx := reference.NewMockLoadTx(ctrl)
	svc := reference.NewService(repo)

	ds := &reffile.Dataset{Rows: []reffile.Row{row("C001", "First"), row("C001", "Second")}}

	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)

	first := tx.EXPECT().Get(gomock.Any(), "C001").Return(nil, reference.ErrNotFound)
	tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Get(gomock.Any(), "C001").Return(&reference.Row{ID: 1, ClientID: "C001"}, nil).After(first)
	tx.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *reference.Row) error {
			assert.Equal(t, "Second", r.Name)
			return nil
		})

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	stats, err := svc.Load(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, stats.Updated)
}

func TestService_Load_RowErrorAbortsWithoutCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	tx := reference.NewMockLoadTx(ctrl)
	svc := reference.NewService(repo)

	ds := &reffile.Dataset{Rows: []reffile.Row{row("C001", "Maria")}}

	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Get(gomock.Any(), "C001").Return(nil, reference.ErrNotFound)
	tx.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Load(context.Background(), ds)
	assert.Error(t, err)
}

func TestService_Search_ShortTermReturnsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	svc := reference.NewService(repo)

	rows, err := svc.Search(context.Background(), "C")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestService_Search_DelegatesWithLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	svc := reference.NewService(repo)

	repo.EXPECT().
		SearchPrefix(gomock.Any(), "C0", 10).
		Return([]*reference.Row{{ClientID: "C001"}}, nil)

	rows, err := svc.Search(context.Background(), "  C0  ")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "C001", rows[0].ClientID)
}

func TestService_Lookup_EmptyKeyIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reference.NewMockRepository(ctrl)
	svc := reference.NewService(repo)

	_, err := svc.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, reference.ErrNotFound)
}
