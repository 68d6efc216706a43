package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypress-app/cypress-api/internal/models"
)

func TestReportStoreCreate(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db)
	reports := NewReportStore(db)
	ctx := context.Background()

	owner, err := users.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)

	before := time.Now().UTC()

	report := models.Report{
		UserID:      owner.ID,
		Title:       "Broken streetlight",
		Description: "Light on Elm St has been out for a week",
		Lat:         40.7128,
		Lng:         -74.0060,
	}
	require.NoError(t, reports.Create(ctx, &report))

	assert.Greater(t, report.ID, int64(0))
	assert.Equal(t, "Pending", report.Status)
	assert.Nil(t, report.ImageURL)
	assert.False(t, report.Time.Before(before))
	assert.False(t, report.Time.After(time.Now().UTC()))
}

func TestReportStoreList(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserStore(db)
	reports := NewReportStore(db)
	ctx := context.Background()

	owner, err := users.Create(ctx, "alice@example.com", "hash")
	require.NoError(t, err)

	listed, err := reports.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	imageURL := "https://img.example.com/pothole.jpg"
	first := models.Report{
		UserID:      owner.ID,
		Title:       "Pothole",
		Description: "Deep pothole near the crosswalk",
		ImageURL:    &imageURL,
		Lat:         40.73,
		Lng:         -73.99,
	}
	require.NoError(t, reports.Create(ctx, &first))

	second := models.Report{
		UserID:      owner.ID,
		Title:       "Graffiti",
		Description: "Tagging on the underpass wall",
		Lat:         40.74,
		Lng:         -73.98,
	}
	require.NoError(t, reports.Create(ctx, &second))

	listed, err = reports.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest first.
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	require.NotNil(t, listed[1].ImageURL)
	assert.Equal(t, imageURL, *listed[1].ImageURL)
	assert.Equal(t, owner.ID, listed[0].UserID)
	assert.Equal(t, "Pending", listed[0].Status)
}
