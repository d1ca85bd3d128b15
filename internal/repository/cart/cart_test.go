package cart

import (
	"context"
	"os"
	"testing"
	"time"

	"yoga-marketplace/internal/db"
	"yoga-marketplace/internal/domain"
	"yoga-marketplace/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func runContract(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	classA := domain.NewID().Hex()
	classB := domain.NewID().Hex()

	for _, e := range []domain.CartEntry{
		{ClassID: classA, UserMail: "u@x.com"},
		{ClassID: classB, UserMail: "u@x.com"},
		{ClassID: classA, UserMail: "v@x.com"},
		{ClassID: classA, UserMail: "u@x.com"},
	} {
		res, err := repo.Insert(ctx, e)
		require.NoError(t, err)
		require.True(t, res.Acknowledged)
		_, err = domain.ParseID(res.InsertedID)
		require.NoError(t, err)
	}

	t.Run("find one projects class id", func(t *testing.T) {
		got, err := repo.FindOne(ctx, classB, "u@x.com")
		require.NoError(t, err)
		assert.Equal(t, classB, got.ClassID)
		assert.False(t, got.ID.IsZero())
		assert.Empty(t, got.UserMail)
		assert.Nil(t, got.Date)

		_, err = repo.FindOne(ctx, classB, "v@x.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("class ids in insertion order, duplicates kept", func(t *testing.T) {
		ids, err := repo.ClassIDs(ctx, "u@x.com")
		require.NoError(t, err)
		assert.Equal(t, []string{classA, classB, classA}, ids)

		ids, err = repo.ClassIDs(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("delete removes one match per call", func(t *testing.T) {
		res, err := repo.DeleteOne(ctx, classA, "v@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)

		res, err = repo.DeleteOne(ctx, classA, "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)

		ids, err := repo.ClassIDs(ctx, "u@x.com")
		require.NoError(t, err)
		assert.Len(t, ids, 2)

		res, err = repo.DeleteOne(ctx, domain.NewID().Hex(), "")
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.DeletedCount)
	})
}

func TestMemory_Contract(t *testing.T) {
	runContract(t, NewMemory())
}

func TestMongo_Contract(t *testing.T) {
	runContract(t, NewMongo(mongoDatabase(t, "yoga_test_cart")))
}

func TestMongo_UniqueIndexMapsToAlreadyExists(t *testing.T) {
	database := mongoDatabase(t, "yoga_test_cart_unique")
	ctx := context.Background()
	require.NoError(t, migrate.ApplyMongo(ctx, database, true))

	repo := NewMongo(database)
	entry := domain.CartEntry{ClassID: domain.NewID().Hex(), UserMail: "u@x.com"}
	_, err := repo.Insert(ctx, entry)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, entry)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestPostgres_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = migrate.Apply(ctx, pool)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE cart_items`)
	require.NoError(t, err)

	runContract(t, NewPostgres(pool))
}

func mongoDatabase(t *testing.T, name string) *mongo.Database {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx := context.Background()
	client, err := db.ConnectMongo(ctx, uri, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	database := client.Database(name)
	require.NoError(t, database.Drop(ctx))
	return database
}
