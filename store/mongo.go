package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pratikdhikale87/Social-media/apperr"
	"github.com/pratikdhikale87/Social-media/database"
	"github.com/pratikdhikale87/Social-media/models"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// MongoUsers implements UserStore on the users collection.
type MongoUsers struct {
	coll *mongo.Collection
}

func NewMongoUsers(db *database.DB) *MongoUsers {
	return &MongoUsers{coll: db.Users}
}

func (s *MongoUsers) Insert(ctx context.Context, u *models.User) error {
	_, err := s.coll.InsertOne(ctx, u)
	return err
}

func (s *MongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) List(ctx context.Context, limit int64) ([]models.User, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUsers) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (s *MongoUsers) SetProfilePhoto(ctx context.Context, id primitive.ObjectID, url string) (*models.User, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"profilePhoto": url}})
}

func (s *MongoUsers) AddFollower(ctx context.Context, id, followerID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (s *MongoUsers) RemoveFollower(ctx context.Context, id, followerID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (s *MongoUsers) AddFollowing(ctx context.Context, id, targetID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$addToSet": bson.M{"following": targetID}})
}

func (s *MongoUsers) RemoveFollowing(ctx context.Context, id, targetID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$pull": bson.M{"following": targetID}})
}

func (s *MongoUsers) AddBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"bookmarks": postID}})
}

func (s *MongoUsers) RemoveBookmark(ctx context.Context, id, postID primitive.ObjectID) (*models.User, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$pull": bson.M{"bookmarks": postID}})
}

func (s *MongoUsers) AppendPost(ctx context.Context, id, postID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$push": bson.M{"posts": postID}})
}

func (s *MongoUsers) RemovePost(ctx context.Context, id, postID primitive.ObjectID) error {
	return s.updateSet(ctx, id, bson.M{"$pull": bson.M{"posts": postID}})
}

func (s *MongoUsers) SweepBookmarks(ctx context.Context, postID primitive.ObjectID) error {
	_, err := s.coll.UpdateMany(ctx,
		bson.M{"bookmarks": postID},
		bson.M{"$pull": bson.M{"bookmarks": postID}},
	)
	return err
}

func (s *MongoUsers) updateSet(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (s *MongoUsers) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// MongoPosts implements PostStore on the posts collection.
type MongoPosts struct {
	coll *mongo.Collection
}

func NewMongoPosts(db *database.DB) *MongoPosts {
	return &MongoPosts{coll: db.Posts}
}

func (s *MongoPosts) Insert(ctx context.Context, p *models.Post) error {
	_, err := s.coll.InsertOne(ctx, p)
	return err
}

func (s *MongoPosts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("post not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoPosts) FindAll(ctx context.Context) ([]models.Post, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoPosts) FindByCreators(ctx context.Context, creators []primitive.ObjectID) ([]models.Post, error) {
	if len(creators) == 0 {
		return []models.Post{}, nil
	}
	return s.find(ctx, bson.M{"creator": bson.M{"$in": creators}})
}

func (s *MongoPosts) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Post, error) {
	if len(ids) == 0 {
		return []models.Post{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *MongoPosts) UpdateBody(ctx context.Context, id primitive.ObjectID, body string) (*models.Post, error) {
	return s.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"body": body}})
}

func (s *MongoPosts) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("post not found")
	}
	return nil
}

func (s *MongoPosts) AddLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return s.findOneAndUpdate(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *MongoPosts) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	return s.findOneAndUpdate(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoPosts) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	opts := options.Find().SetSort(newestFirst)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoPosts) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Post
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("post not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
