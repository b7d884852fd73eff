package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name" json:"name"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// EffectiveRole resolves the role used for authorization decisions.
// A user without an explicit role record is a student; absence never
// grants elevated access.
func (u User) EffectiveRole() string {
	if u.Role == "" {
		return string(RoleStudent)
	}
	return u.Role
}
