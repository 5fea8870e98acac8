package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tgimg/internal/domain/model"
)

// kvDocument is one key of the store. Settings live in Value as JSON, file
// records carry an empty Value and their Metadata.
type kvDocument struct {
	Key       string              `bson:"_id"`
	Value     string              `bson:"value"`
	Metadata  *model.FileMetadata `bson:"metadata,omitempty"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

// put overwrites the document stored under doc.Key; the last writer wins.
func (db *Database) put(ctx context.Context, doc *kvDocument) error {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	_, err := db.collection().ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, options.Replace().SetUpsert(true))

	return err
}

func (db *Database) get(ctx context.Context, key string) (*kvDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, db.QueryTimeout)
	defer cancel()

	var doc kvDocument
	if err := db.collection().FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
