// Package indexes creates the MongoDB indexes the stores rely on. Called
// once from the EnsureSchema hook during startup; index creation is
// idempotent.
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Ensure creates all collection indexes.
func Ensure(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{
			collection: "convenios",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "name_ci", Value: 1}}},
				{Keys: bson.D{{Key: "category", Value: 1}, {Key: "name_ci", Value: 1}}},
			},
		},
		{
			collection: "noticias",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "slug", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
				{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
				{Keys: bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}}},
			},
		},
		{
			collection: "council_members",
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "area_id", Value: 1}}},
				{Keys: bson.D{{Key: "full_name_ci", Value: 1}}},
			},
		},
		{
			collection: "users",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true),
				},
			},
		},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models); err != nil {
			logger.Error("index creation failed",
				zap.String("collection", spec.collection), zap.Error(err))
			return err
		}
	}

	logger.Info("mongo indexes ensured")
	return nil
}
