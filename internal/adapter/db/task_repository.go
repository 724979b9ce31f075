package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
	"github.com/n-smith-public/cs4241e25-final-project/internal/core/ports"
)

type TaskRepository struct {
	col *mongo.Collection
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{col: database.Collection(tasksCollection)}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	res, err := r.col.InsertOne(ctx, mapDomainTaskToDocument(task))
	if err != nil {
		return domain.Task{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Task{}, errors.New("unexpected inserted id type")
	}
	task.ID = oid.Hex()
	return task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Task, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": owner})
	if err != nil {
		return nil, err
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocumentToDomainTask(doc))
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, owner, id string, fields domain.TaskFields) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "email": owner},
		bson.M{"$set": bson.M{
			"taskName":        fields.Name,
			"taskDescription": fields.Description,
			"taskDueDate":     fields.DueDate,
			"taskPriority":    string(fields.Priority),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// SetCompletion toggles with an update pipeline so the flip happens inside the server.
func (r *TaskRepository) SetCompletion(ctx context.Context, owner, id string, intent domain.CompletionIntent) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	var update any
	switch intent {
	case domain.CompletionMarkDone:
		update = bson.M{"$set": bson.M{"completed": true}}
	case domain.CompletionMarkUndone:
		update = bson.M{"$set": bson.M{"completed": false}}
	case domain.CompletionToggle:
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.D{{Key: "completed", Value: bson.D{{Key: "$not", Value: bson.A{"$completed"}}}}}}},
		}
	default:
		return 0, domain.ErrValidation
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid, "email": owner}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
