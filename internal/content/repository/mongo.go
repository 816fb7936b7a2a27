package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dentalsite/backend/internal/content"
	"github.com/dentalsite/backend/internal/isotime"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("site content not found")

// MongoRepo persists the singleton content document in the site_content
// collection. All writes are upserts on the fixed key, so concurrent
// first-reads converge to a single document.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Get(ctx context.Context) (*content.SiteContentDoc, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var raw bson.M
	err := m.col.FindOne(ctx, bson.M{"key": content.DefaultKey}, opts).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get site content: %w", err)
	}
	var doc content.SiteContentDoc
	if err := isotime.DecodeRecord(raw, &doc, "updated_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MongoRepo) Upsert(ctx context.Context, doc *content.SiteContentDoc) error {
	enc, err := isotime.EncodeRecord(doc, "updated_at")
	if err != nil {
		return err
	}
	opts := options.Update().SetUpsert(true)
	if _, err := m.col.UpdateOne(ctx, bson.M{"key": doc.Key}, bson.M{"$set": enc}, opts); err != nil {
		return fmt.Errorf("upsert site content: %w", err)
	}
	return nil
}
