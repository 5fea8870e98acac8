package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dezh-tech/immortal/pkg/logger"
)

const (
	KVCollection       = "kv"
	DefaultSettingsKey = "settings"
)

type Database struct {
	DBName       string
	SettingsKey  string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongo kv store", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	settingsKey := cfg.SettingsKey
	if settingsKey == "" {
		settingsKey = DefaultSettingsKey
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		SettingsKey:  settingsKey,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initKVCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initKVCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": KVCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "updated_at"},
			"properties": bson.M{
				"_id":        bson.M{"bsonType": "string", "minLength": 1},
				"value":      bson.M{"bsonType": "string"},
				"updated_at": bson.M{"bsonType": "date"},
				"metadata": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"TimeStamp": bson.M{"bsonType": "long"},
						"ListType":  bson.M{"bsonType": "string"},
						"Label":     bson.M{"bsonType": "string"},
						"liked":     bson.M{"bsonType": "bool"},
						"fileName":  bson.M{"bsonType": "string"},
						"fileSize":  bson.M{"bsonType": "long"},
					},
				},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, KVCollection, collOpts); err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(KVCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "metadata.TimeStamp", Value: -1}},
	})

	return err
}

func (db *Database) collection() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(KVCollection)
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
