package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type preferenceDoc struct {
	Category string  `bson:"category"`
	Value    string  `bson:"value"`
	Weight   float64 `bson:"weight"`
}

type patternDoc struct {
	UserID      string          `bson:"_id"`
	Preferences []preferenceDoc `bson:"preferences"`
	LastUpdated int64           `bson:"lastUpdated"`
}

// MongoStore keeps feedback in MongoDB, one document per record and one
// pattern document per user.
type MongoStore struct {
	feedback *mongo.Collection
	patterns *mongo.Collection
}

// NewMongoStore creates a store in database dbName.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		feedback: db.Collection("feedback"),
		patterns: db.Collection("search_patterns"),
	}
}

// ConnectMongo connects to uri with any extra client options applied.
func ConnectMongo(ctx context.Context, uri string, extra ...*options.ClientOptions) (*mongo.Client, error) {
	opts := append([]*options.ClientOptions{options.Client().ApplyURI(uri)}, extra...)
	client, err := mongo.Connect(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the per-user feedback index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.feedback.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

func (s *MongoStore) InsertFeedback(ctx context.Context, rec *Record) error {
	if _, err := s.feedback.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (s *MongoStore) GetPattern(ctx context.Context, userID string) (*Pattern, error) {
	var doc patternDoc
	err := s.patterns.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pattern %s: %w", userID, err)
	}

	p := &Pattern{
		UserID:      doc.UserID,
		Preferences: NewWeights(),
		LastUpdated: time.UnixMilli(doc.LastUpdated).UTC(),
	}
	for _, pref := range doc.Preferences {
		if m := p.Preferences.Category(pref.Category); m != nil {
			m[pref.Value] = pref.Weight
		}
	}
	return p, nil
}

func (s *MongoStore) SavePattern(ctx context.Context, p *Pattern) error {
	doc := patternDoc{UserID: p.UserID, LastUpdated: p.LastUpdated.UnixMilli()}
	for _, category := range Categories {
		for value, weight := range p.Preferences.Category(category) {
			doc.Preferences = append(doc.Preferences, preferenceDoc{Category: category, Value: value, Weight: weight})
		}
	}

	_, err := s.patterns.ReplaceOne(ctx, bson.M{"_id": p.UserID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save pattern %s: %w", p.UserID, err)
	}
	return nil
}
