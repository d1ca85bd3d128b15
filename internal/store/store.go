// Package store opens the document backend selected by configuration and exposes the
// repositories every binary works with.
package store

import (
	"context"
	"fmt"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/db"
	cartrepo "yoga-marketplace/internal/repository/cart"
	classrepo "yoga-marketplace/internal/repository/class"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store bundles the repositories of one backend. Exactly one of Mongo and Pool is set for the
// external drivers; both are nil for the memory driver.
type Store struct {
	Driver  string
	Classes classrepo.Repository
	Cart    cartrepo.Repository

	Mongo *mongo.Database
	Pool  *pgxpool.Pool

	closeFn func(context.Context) error
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
		client, err := db.ConnectMongo(connectCtx, cfg.MongoURI, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.MongoDatabase)
		logger.Info("connected to mongo", zap.String("database", cfg.MongoDatabase))
		return &Store{
			Driver:  cfg.StoreDriver,
			Classes: classrepo.NewMongo(database),
			Cart:    cartrepo.NewMongo(database),
			Mongo:   database,
			closeFn: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
		defer cancel()
		pool, err := db.Connect(connectCtx, cfg.DBConnString, cfg.StoreTimeout)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres")
		return &Store{
			Driver:  cfg.StoreDriver,
			Classes: classrepo.NewPostgres(pool),
			Cart:    cartrepo.NewPostgres(pool),
			Pool:    pool,
			closeFn: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		return &Store{
			Driver:  cfg.StoreDriver,
			Classes: classrepo.NewMemory(),
			Cart:    cartrepo.NewMemory(),
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// Ping checks the backend connection. The memory store is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	switch {
	case s.Mongo != nil:
		return db.MongoPinger{Client: s.Mongo.Client()}.Ping(ctx)
	case s.Pool != nil:
		return s.Pool.Ping(ctx)
	}
	return nil
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
