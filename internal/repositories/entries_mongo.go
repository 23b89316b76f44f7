package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/evn/budget_backendl/internal/models"
)

// MongoEntryRepository — документная реализация: коллекции incomes и
// expenses с индексом по user_id.
type MongoEntryRepository struct {
	incomes  *mongo.Collection
	expenses *mongo.Collection
}

func NewMongoEntryRepository(db *mongo.Database) *MongoEntryRepository {
	return &MongoEntryRepository{
		incomes:  db.Collection("incomes"),
		expenses: db.Collection("expenses"),
	}
}

// EnsureIndexes создаёт индексы по user_id в обеих коллекциях.
func (r *MongoEntryRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}}
	for _, coll := range []*mongo.Collection{r.incomes, r.expenses} {
		if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("mongo index error: %w", err)
		}
	}
	return nil
}

func (r *MongoEntryRepository) collection(kind models.EntryKind) *mongo.Collection {
	if kind == models.KindExpense {
		return r.expenses
	}
	return r.incomes
}

func (r *MongoEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if _, err := r.collection(entry.Kind).InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	return entry, nil
}

func (r *MongoEntryRepository) ListByUser(ctx context.Context, kind models.EntryKind, userID int) ([]models.Entry, error) {
	cursor, err := r.collection(kind).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("mongo error: %w", err)
	}
	for i := range entries {
		entries[i].Kind = kind
	}
	return entries, nil
}
