package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Remaining collections. These are plain documents: handlers insert and
// return them as-is, so there is no behavior to model beyond the fields
// the routes filter on.

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID    string             `bson:"sessionId" json:"sessionId"`
	StudentName  string             `bson:"studentName,omitempty" json:"studentName,omitempty"`
	StudentEmail string             `bson:"studentEmail,omitempty" json:"studentEmail,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
}

type BookedSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID    string             `bson:"sessionId" json:"sessionId"`
	StudentEmail string             `bson:"studentEmail" json:"studentEmail"`
	TutorEmail   string             `bson:"tutorEmail,omitempty" json:"tutorEmail,omitempty"`
	SessionTitle string             `bson:"sessionTitle,omitempty" json:"sessionTitle,omitempty"`
	BookedAt     string             `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
}

type Note struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
}

type Material struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	TutorEmail string             `bson:"tutorEmail" json:"tutorEmail"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Link       string             `bson:"link,omitempty" json:"link,omitempty"`
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SessionID     string             `bson:"sessionId" json:"sessionId"`
	StudentEmail  string             `bson:"studentEmail" json:"studentEmail"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt        string             `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// UpdateCounts reports what a field-set update touched, in the document
// store's own terms. Handlers pass it straight back to the client.
type UpdateCounts struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
