package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

const sessionCollection = "sessions"

// SessionRepository is the Mongo-backed single-slot session store, selected
// with SESSION_STORE=mongo. One document per session ID; the identity is kept
// as a JSON blob so both drivers share the exact serialization the session
// service round-trips on.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionCollection)}
}

type sessionDoc struct {
	ID        string `bson:"_id"`
	Identity  []byte `bson:"identity"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *SessionRepository) Load(ctx context.Context, sessionID string) (*domain.Identity, error) {
	var doc sessionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ports.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(doc.Identity, &identity); err != nil {
		return nil, ports.ErrSessionCorrupt
	}
	return &identity, nil
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, identity *domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	doc := sessionDoc{
		ID:        sessionID,
		Identity:  raw,
		UpdatedAt: time.Now().Unix(),
	}

	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": sessionID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
