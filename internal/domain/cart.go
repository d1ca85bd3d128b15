package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartEntry links a user to a class they intend to buy. ClassID is a weak reference to Class.ID.
type CartEntry struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	ClassID  string             `json:"classId" bson:"classId"`
	UserMail string             `json:"userMail,omitempty" bson:"userMail,omitempty"`
	Date     *time.Time         `json:"date,omitempty" bson:"date,omitempty"`
}
