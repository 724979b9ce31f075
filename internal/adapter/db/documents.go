package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/n-smith-public/cs4241e25-final-project/internal/core/domain"
)

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName"`
}

type taskDocument struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	Email           string              `bson:"email"`
	TaskName        string              `bson:"taskName"`
	TaskDescription string              `bson:"taskDescription"`
	TaskDueDate     string              `bson:"taskDueDate"`
	TaskPriority    string              `bson:"taskPriority"`
	Completed       bool                `bson:"completed"`
	RestoredFrom    *primitive.ObjectID `bson:"restoredFrom,omitempty"`
}

type binDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	TaskName        string             `bson:"taskName"`
	TaskDescription string             `bson:"taskDescription"`
	TaskDueDate     string             `bson:"taskDueDate"`
	TaskPriority    string             `bson:"taskPriority"`
	Completed       bool               `bson:"completed"`
	OriginalID      primitive.ObjectID `bson:"originalId"`
	DeletedAt       time.Time          `bson:"deletedAt"`
	ExpiresAt       time.Time          `bson:"expiresAt"`
}

func mapTaskDocumentToDomainTask(doc taskDocument) domain.Task {
	return domain.Task{
		ID:          doc.ID.Hex(),
		OwnerEmail:  doc.Email,
		Name:        doc.TaskName,
		Description: doc.TaskDescription,
		DueDate:     doc.TaskDueDate,
		Priority:    domain.Priority(doc.TaskPriority),
		Completed:   doc.Completed,
	}
}

func mapDomainTaskToDocument(task domain.Task) taskDocument {
	return taskDocument{
		Email:           task.OwnerEmail,
		TaskName:        task.Name,
		TaskDescription: task.Description,
		TaskDueDate:     task.DueDate,
		TaskPriority:    string(task.Priority),
		Completed:       task.Completed,
	}
}

func mapBinDocumentToDomainEntry(doc binDocument) domain.BinEntry {
	return domain.BinEntry{
		ID:         doc.ID.Hex(),
		OriginalID: doc.OriginalID.Hex(),
		Task: domain.Task{
			ID:          doc.OriginalID.Hex(),
			OwnerEmail:  doc.Email,
			Name:        doc.TaskName,
			Description: doc.TaskDescription,
			DueDate:     doc.TaskDueDate,
			Priority:    domain.Priority(doc.TaskPriority),
			Completed:   doc.Completed,
		},
		DeletedAt: doc.DeletedAt.UTC(),
		ExpiresAt: doc.ExpiresAt.UTC(),
	}
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		out = append(out, oid)
	}
	return out, nil
}
