package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Creator   primitive.ObjectID   `bson:"creator" json:"creator"`
	Body      string               `bson:"body" json:"body"`
	Image     string               `bson:"image" json:"image"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments  []primitive.ObjectID `bson:"comments" json:"comments"`
	CreatedAt int64                `bson:"createdAt" json:"createdAt"`
}

// LikedBy reports whether the user id is in the post's like set.
func (p *Post) LikedBy(id primitive.ObjectID) bool {
	return containsID(p.Likes, id)
}
