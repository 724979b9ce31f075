package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

// BinRepository moves tasks between the tasks and bin collections.
//
// With transactions enabled (replica set required) each move runs in one transaction.
// Without them every step is an upsert keyed on the source document, so a move that
// died halfway can be repeated and never leaves two copies behind.
type BinRepository struct {
	client       *mongo.Client
	tasks        *mongo.Collection
	bin          *mongo.Collection
	transactions bool
}

var _ ports.BinRepository = (*BinRepository)(nil)

func NewBinRepository(database *mongo.Database, transactions bool) *BinRepository {
	return &BinRepository{
		client:       database.Client(),
		tasks:        database.Collection(tasksCollection),
		bin:          database.Collection(binCollection),
		transactions: transactions,
	}
}

func (r *BinRepository) MoveToBin(ctx context.Context, owner string, ids []string, deletedAt, expiresAt time.Time) (int, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}

	return r.run(ctx, func(ctx context.Context) (int, error) {
		cursor, err := r.tasks.Find(ctx, bson.M{"_id": bson.M{"$in": oids}, "email": owner})
		if err != nil {
			return 0, err
		}
		var docs []taskDocument
		if err := cursor.All(ctx, &docs); err != nil {
			return 0, err
		}

		moved := 0
		for _, doc := range docs {
			entry := binDocument{
				Email:           doc.Email,
				TaskName:        doc.TaskName,
				TaskDescription: doc.TaskDescription,
				TaskDueDate:     doc.TaskDueDate,
				TaskPriority:    doc.TaskPriority,
				Completed:       doc.Completed,
				OriginalID:      doc.ID,
				DeletedAt:       deletedAt,
				ExpiresAt:       expiresAt,
			}
			_, err := r.bin.UpdateOne(ctx,
				bson.M{"email": owner, "originalId": doc.ID},
				bson.M{"$setOnInsert": entry},
				options.Update().SetUpsert(true),
			)
			if err != nil {
				return moved, fmt.Errorf("insert bin entry: %w", err)
			}

			res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": doc.ID, "email": owner})
			if err != nil {
				return moved, fmt.Errorf("delete task: %w", err)
			}
			moved += int(res.DeletedCount)
		}
		return moved, nil
	})
}

func (r *BinRepository) PurgeExpired(ctx context.Context, owner string, now time.Time) (int64, error) {
	res, err := r.bin.DeleteMany(ctx, bson.M{"email": owner, "expiresAt": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *BinRepository) ListByOwner(ctx context.Context, owner string) ([]domain.BinEntry, error) {
	cursor, err := r.bin.Find(ctx, bson.M{"email": owner})
	if err != nil {
		return nil, err
	}
	var docs []binDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]domain.BinEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, mapBinDocumentToDomainEntry(doc))
	}
	return entries, nil
}

func (r *BinRepository) Restore(ctx context.Context, owner string, ids []string) (int, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}

	return r.run(ctx, func(ctx context.Context) (int, error) {
		cursor, err := r.bin.Find(ctx, bson.M{"_id": bson.M{"$in": oids}, "email": owner})
		if err != nil {
			return 0, err
		}
		var docs []binDocument
		if err := cursor.All(ctx, &docs); err != nil {
			return 0, err
		}

		restored := 0
		for _, doc := range docs {
			task := mapDomainTaskToDocument(mapBinDocumentToDomainEntry(doc).Restored())
			binID := doc.ID
			task.RestoredFrom = &binID

			_, err := r.tasks.UpdateOne(ctx,
				bson.M{"email": owner, "restoredFrom": doc.ID},
				bson.M{"$setOnInsert": task},
				options.Update().SetUpsert(true),
			)
			if err != nil {
				return restored, fmt.Errorf("insert restored task: %w", err)
			}

			res, err := r.bin.DeleteOne(ctx, bson.M{"_id": doc.ID, "email": owner})
			if err != nil {
				return restored, fmt.Errorf("delete bin entry: %w", err)
			}
			restored += int(res.DeletedCount)
		}
		return restored, nil
	})
}

func (r *BinRepository) Delete(ctx context.Context, owner string, ids []string) (int64, error) {
	oids, err := objectIDs(ids)
	if err != nil {
		return 0, err
	}
	res, err := r.bin.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}, "email": owner})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *BinRepository) run(ctx context.Context, fn func(ctx context.Context) (int, error)) (int, error) {
	if !r.transactions {
		return fn(ctx)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return fn(sc)
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}
