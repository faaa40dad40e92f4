//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/outage_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newMongoTestCollection(t *testing.T) *mongo.Collection {
	t.Helper()
	collection := testMongo.Database("outages_test").Collection(t.Name())
	require.NoError(t, collection.Drop(context.Background()))
	require.NoError(t, EnsureOutageIndexes(context.Background(), collection))
	return collection
}

func TestMongoOutageRepository_ListNewestFirst(t *testing.T) {
	collection := newMongoTestCollection(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	repo := NewMongoOutageRepository(collection, clock)
	ctx := context.Background()

	oldest := newReport("water", &mumbai)
	require.NoError(t, repo.Create(ctx, oldest))
	clock.Advance(time.Minute)
	middle := newReport("gas", nil)
	require.NoError(t, repo.Create(ctx, middle))
	clock.Advance(time.Minute)
	newest := newReport("water", &delhi)
	require.NoError(t, repo.Create(ctx, newest))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Nil(t, all[1].Location)
	assert.Equal(t, mumbai, *all[2].Location)
	assert.Equal(t, clock.Now(), all[0].ReportedAt)

	water, err := repo.ListByType(ctx, "water")
	require.NoError(t, err)
	require.Len(t, water, 2)
	assert.Equal(t, newest.ID, water[0].ID)
	assert.Equal(t, oldest.ID, water[1].ID)
}

func TestMongoOutageRepository_EmptyCollection(t *testing.T) {
	repo := NewMongoOutageRepository(newMongoTestCollection(t), clockwork.NewFakeClock())

	all, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMongoOutageRepository_GetAndUpdate(t *testing.T) {
	repo := NewMongoOutageRepository(newMongoTestCollection(t), clockwork.NewFakeClock())
	ctx := context.Background()

	r := newReport("electricity", &bangalore)
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.UpdateStatus(ctx, r.ID, models.StatusResolved))
	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
	assert.Equal(t, bangalore, *got.Location)
}

func TestMongoOutageRepository_NotFound(t *testing.T) {
	repo := NewMongoOutageRepository(newMongoTestCollection(t), clockwork.NewFakeClock())
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "665f1c2e9b1d4a3c5e7f8a90")
	assert.ErrorIs(t, err, models.ErrOutageNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrOutageNotFound)

	err = repo.UpdateStatus(ctx, "missing", models.StatusResolved)
	assert.ErrorIs(t, err, models.ErrOutageNotFound)
}

// Документ со строковым _id и без координат/статуса не ломает чтение коллекции
func TestMongoOutageRepository_ForeignDocument(t *testing.T) {
	collection := newMongoTestCollection(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	repo := NewMongoOutageRepository(collection, clock)
	ctx := context.Background()

	_, err := collection.InsertOne(ctx, bson.M{
		"_id":         "Xk2pQ9wLmN4rT7vB1cZe",
		"type":        "water",
		"description": "imported",
		"timestamp":   clock.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	ours := newReport("water", &delhi)
	require.NoError(t, repo.Create(ctx, ours))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ours.ID, all[0].ID)
	assert.Equal(t, "Xk2pQ9wLmN4rT7vB1cZe", all[1].ID)
	assert.Nil(t, all[1].Location)
	assert.Equal(t, models.StatusActive, all[1].Status)

	require.NoError(t, repo.UpdateStatus(ctx, "Xk2pQ9wLmN4rT7vB1cZe", models.StatusResolved))
	got, err := repo.GetByID(ctx, "Xk2pQ9wLmN4rT7vB1cZe")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
}
