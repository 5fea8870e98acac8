package database

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/kvstore"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	uri := fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, net.JoinHostPort(host, port.Port()))

	db, err := Connect(Config{
		URI:               uri,
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func TestKVStore(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	t.Run("settings round trip and replace", func(t *testing.T) {
		store := NewSettingsStore(db)

		_, err := store.Get(ctx)
		require.ErrorIs(t, err, kvstore.ErrNotFound)

		require.NoError(t, store.Put(ctx, model.DefaultSettings()))

		replacement := &model.Settings{
			UploadPublic:  false,
			AccessPublic:  false,
			UploadLimit:   10,
			QuickWebsites: []model.Shortcut{{Name: "Docs", URL: "https://example.com", Icon: "fas fa-book"}},
		}
		require.NoError(t, store.Put(ctx, replacement))

		got, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, replacement, got)

		count, err := db.collection().CountDocuments(ctx, bson.M{"_id": DefaultSettingsKey})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("file records", func(t *testing.T) {
		writer := NewRecordWriter(db)
		retriever := NewRecordRetriever(db)

		record := model.NewFileRecord("BQACAgUAAx.mp4", "clip.mp4", 4096, time.UnixMilli(1700000000000))
		require.NoError(t, writer.Write(ctx, record))

		record.Metadata.Liked = true
		require.NoError(t, writer.Write(ctx, record))

		got, err := retriever.GetByKey(ctx, "BQACAgUAAx.mp4")
		require.NoError(t, err)
		assert.Equal(t, record, got)

		_, err = retriever.GetByKey(ctx, "nope.mp4")
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("validator rejects empty key", func(t *testing.T) {
		err := NewRecordWriter(db).Write(ctx, model.NewFileRecord("", "x", 1, time.Now()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Document failed validation")
	})
}
