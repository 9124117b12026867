package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hgmendoza/recaudo/internal/catalog"
)

func TestParseKind(t *testing.T) {
	k, err := catalog.ParseKind("arrangement_type")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindArrangementType, k)

	k, err = catalog.ParseKind("collection_channel")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindCollectionChannel, k)

	_, err = catalog.ParseKind("colour")
	assert.Error(t, err)
}

func TestService_Save_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().
		Upsert(gomock.Any(), catalog.KindArrangementType, "Convenio", true).
		Return(&catalog.Entry{ID: 1, Name: "Convenio", Active: true}, nil)

	entry, err := svc.Save(context.Background(), catalog.KindArrangementType, "  Convenio  ", true)
	require.NoError(t, err)
	assert.Equal(t, "Convenio", entry.Name)
}

func TestService_Save_EmptyNameRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	_, err := svc.Save(context.Background(), catalog.KindCollectionChannel, "   ", true)
	assert.ErrorIs(t, err, catalog.ErrEmptyName)
}

func TestService_Save_RetireKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().
		Upsert(gomock.Any(), catalog.KindCollectionChannel, "Oficina", false).
		Return(&catalog.Entry{ID: 4, Name: "Oficina", Active: false}, nil)

	entry, err := svc.Save(context.Background(), catalog.KindCollectionChannel, "Oficina", false)
	require.NoError(t, err)
	assert.False(t, entry.Active)
}

func TestService_ExistsDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)

	repo.EXPECT().Exists(gomock.Any(), catalog.KindArrangementType, int64(2)).Return(true, nil)
	repo.EXPECT().Exists(gomock.Any(), catalog.KindCollectionChannel, int64(5)).Return(false, nil)

	ok, err := svc.ArrangementTypeExists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CollectionChannelExists(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)
}
