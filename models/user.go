package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const DefaultProfilePhoto = "https://res.cloudinary.com/dgnuh0uyl/image/upload/v1749972285/profile_icon.jpg"

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FullName     string               `bson:"fullName" json:"fullName"`
	Email        string               `bson:"email" json:"email"`
	Password     string               `bson:"password" json:"-"`
	ProfilePhoto string               `bson:"profilePhoto" json:"profilePhoto"`
	Bio          string               `bson:"bio" json:"bio"`
	Followers    []primitive.ObjectID `bson:"followers" json:"followers"`
	Following    []primitive.ObjectID `bson:"following" json:"following"`
	Bookmarks    []primitive.ObjectID `bson:"bookmarks" json:"bookmarks"`
	Posts        []primitive.ObjectID `bson:"posts" json:"posts"`
	CreatedAt    int64                `bson:"createdAt" json:"createdAt"`
}

// IsFollowing reports whether id is in the user's following set.
func (u *User) IsFollowing(id primitive.ObjectID) bool {
	return containsID(u.Following, id)
}

// HasBookmarked reports whether the post id is in the user's bookmark set.
func (u *User) HasBookmarked(id primitive.ObjectID) bool {
	return containsID(u.Bookmarks, id)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
