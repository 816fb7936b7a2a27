package repository

import (
	"context"
	"fmt"

	"github.com/dentalsite/backend/internal/isotime"
	"github.com/dentalsite/backend/internal/status"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo persists status checks in the status_checks collection. The
// timestamp is stored as ISO-8601 text; the Mongo _id stays internal and is
// projected away on reads.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, sc *status.StatusCheck) error {
	doc, err := isotime.EncodeRecord(sc, "timestamp")
	if err != nil {
		return err
	}
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (m *MongoRepo) List(ctx context.Context, limit int64) ([]*status.StatusCheck, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0}).SetLimit(limit)
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer cur.Close(ctx)

	out := []*status.StatusCheck{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var sc status.StatusCheck
		if err := isotime.DecodeRecord(raw, &sc, "timestamp"); err != nil {
			return nil, err
		}
		out = append(out, &sc)
	}
	return out, cur.Err()
}
