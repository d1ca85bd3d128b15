package store

import (
	"context"
	"testing"

	"yoga-marketplace/internal/config"
	"yoga-marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.Config{StoreDriver: config.DriverMemory}, nil)
	require.NoError(t, err)
	defer s.Close(ctx)

	assert.NoError(t, s.Ping(ctx))
	assert.Nil(t, s.Mongo)
	assert.Nil(t, s.Pool)

	res, err := s.Classes.Insert(ctx, domain.Class{Name: "Yin", Status: domain.StatusApproved})
	require.NoError(t, err)
	_, err = s.Cart.Insert(ctx, domain.CartEntry{ClassID: res.InsertedID, UserMail: "u@yoga.test"})
	require.NoError(t, err)

	ids, err := s.Cart.ClassIDs(ctx, "u@yoga.test")
	require.NoError(t, err)
	assert.Equal(t, []string{res.InsertedID}, ids)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StoreDriver: "redis"}, nil)
	assert.Error(t, err)
}
