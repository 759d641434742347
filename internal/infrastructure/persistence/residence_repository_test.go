package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/residence"
	"github.com/residence/backend/internal/domain/shared"
)

func TestGormResidenceRepository_CreateWithSettings(t *testing.T) {
	db := setupTestDB(t)
	residenceRepo := NewGormResidenceRepository(db)
	settingsRepo := NewGormSettingsRepository(db)
	ctx := context.Background()

	res := residence.NewResidence("Vila Aurora", "Rua das Flores 12", "Lisboa", "", "1200-192", "")
	require.NoError(t, residenceRepo.Create(ctx, res, residence.DefaultSettings(res)))

	found, err := residenceRepo.FindByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vila Aurora", found.Name)
	assert.False(t, found.CreatedAt.IsZero())
	assert.Nil(t, found.UpdatedAt)

	settings, err := settingsRepo.FindByResidence(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vila Aurora", settings.ResidenceName)
	assert.Equal(t, "Rua das Flores 12", settings.ResidencePlace)
	assert.True(t, settings.InitialBudget.IsZero())
}

func TestGormResidenceRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormResidenceRepository(db)
	ctx := context.Background()

	res := residence.NewResidence("Vila Aurora", "", "", "", "", "")
	require.NoError(t, repo.Create(ctx, res, residence.DefaultSettings(res)))

	require.NoError(t, repo.Delete(ctx, res.ID))

	_, err := repo.FindByID(ctx, res.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	exists, err := repo.Exists(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Missing ids are a silent no-op, same as the tenant repositories.
	assert.NoError(t, repo.Delete(ctx, res.ID))
}

func TestGormSettingsRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	residenceRepo := NewGormResidenceRepository(db)
	settingsRepo := NewGormSettingsRepository(db)
	ctx := context.Background()

	res := residence.NewResidence("Vila Aurora", "", "", "", "", "")
	require.NoError(t, residenceRepo.Create(ctx, res, residence.DefaultSettings(res)))

	settings, err := settingsRepo.FindByResidence(ctx, res.ID)
	require.NoError(t, err)

	settings.ResidenceName = "Vila Aurora II"
	require.NoError(t, settingsRepo.Update(ctx, settings))

	updated, err := settingsRepo.FindByResidence(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vila Aurora II", updated.ResidenceName)
	assert.NotNil(t, updated.UpdatedAt)
}
