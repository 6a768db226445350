package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCollection = "counters"

// nextSequence returns the next value of the named counter, creating it on
// first use. The atomic $inc makes concurrently assigned ids unique.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	res := db.Collection(counterCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Value int64 `bson:"value"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Value, nil
}
