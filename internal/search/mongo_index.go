package search

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const textIndexName = "article_text"

// MongoIndex implements Index with a MongoDB text index. Title matches weigh
// twice as much as body matches.
type MongoIndex struct {
	collection *mongo.Collection
}

// NewMongoIndex creates an index over the given database and collection.
func NewMongoIndex(client *mongo.Client, database, collection string) *MongoIndex {
	return &MongoIndex{collection: client.Database(database).Collection(collection)}
}

// EnsureIndexes creates the weighted text index.
func (m *MongoIndex) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "content", Value: "text"},
			{Key: "category", Value: "text"},
			{Key: "tags", Value: "text"},
		},
		Options: options.Index().
			SetName(textIndexName).
			SetWeights(bson.D{
				{Key: "title", Value: 2},
				{Key: "content", Value: 1},
				{Key: "category", Value: 1},
				{Key: "tags", Value: 1},
			}),
	}
	if _, err := m.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create text index: %w", err)
	}
	return nil
}

// Upsert replaces the document keyed by its id.
func (m *MongoIndex) Upsert(ctx context.Context, doc Document) error {
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes the document with the given id.
func (m *MongoIndex) Delete(ctx context.Context, id string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// Search runs a $text query ranked by textScore.
func (m *MongoIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	score := bson.M{"$meta": "textScore"}
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "score": score}).
		SetSort(bson.D{{Key: "score", Value: score}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := m.collection.Find(ctx, bson.M{"$text": bson.M{"$search": query}}, opts)
	if err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	defer cursor.Close(ctx)

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var hit struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&hit); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		ids = append(ids, hit.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return ids, nil
}
