package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Session status values. Transitions are unconditional field overwrites;
// the current status is never checked before a transition is applied.
type SessionStatus string

const (
	StatusPending  SessionStatus = "pending"
	StatusApproved SessionStatus = "approved"
	StatusRejected SessionStatus = "rejected"
)

// StudySession is a tutor-proposed session that admins approve or reject.
// RejectionReason and Feedback are pointers so clearing them writes an
// explicit null, which is what clients key off after a revert or approval.
type StudySession struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title             string             `bson:"sessionTitle" json:"sessionTitle"`
	TutorName         string             `bson:"tutorName" json:"tutorName"`
	TutorEmail        string             `bson:"tutorEmail" json:"tutorEmail"`
	Description       string             `bson:"sessionDescription" json:"sessionDescription"`
	RegistrationStart string             `bson:"registrationStartDate,omitempty" json:"registrationStartDate,omitempty"`
	RegistrationEnd   string             `bson:"registrationEndDate,omitempty" json:"registrationEndDate,omitempty"`
	ClassStart        string             `bson:"classStartDate,omitempty" json:"classStartDate,omitempty"`
	ClassEnd          string             `bson:"classEndDate,omitempty" json:"classEndDate,omitempty"`
	Duration          string             `bson:"sessionDuration,omitempty" json:"sessionDuration,omitempty"`
	RegistrationFee   float64            `bson:"registrationFee" json:"registrationFee"`
	Status            SessionStatus      `bson:"status" json:"status"`
	RejectionReason   *string            `bson:"rejectionReason" json:"rejectionReason"`
	Feedback          *string            `bson:"feedback" json:"feedback"`
}
