package signup

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

type dbUser struct {
	ID              ID     `bson:"_id"`
	Username        string `bson:"username"`
	Email           string `bson:"email"`
	PasswordHash    string `bson:"passwordHash"`
	ActivationToken string `bson:"activationToken"`
	Inactive        bool   `bson:"inactive"`
}

// NewMongoUserRepository wires the repository to c and ensures the unique
// email index that backs duplicate detection under concurrent registration.
func NewMongoUserRepository(c *mongo.Collection) (Repository, error) {
	_, err := c.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &mongoUserRepository{collection: c}, nil
}

func (m *mongoUserRepository) FindByEmail(email string) (*User, error) {
	var u dbUser
	sr := m.collection.FindOne(context.TODO(), bson.M{"email": email})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&u); err != nil {
		return nil, err
	}

	nU := userFromDBUser(u)
	return &nU, nil
}

func (m *mongoUserRepository) Store(u *User) error {
	dbu := dbUserFromUser(u)
	_, err := m.collection.InsertOne(context.TODO(), &dbu)
	if mongo.IsDuplicateKeyError(err) {
		return ErrExistingEmail
	}
	return err
}

func (m *mongoUserRepository) Delete(id ID) error {
	_, err := m.collection.DeleteOne(context.TODO(), bson.M{"_id": string(id)})
	return err
}

func (m *mongoUserRepository) DeleteAll() error {
	_, err := m.collection.DeleteMany(context.TODO(), bson.M{})
	return err
}

func dbUserFromUser(u *User) dbUser {
	return dbUser{u.ID, u.Username, u.Email, u.PasswordHash, u.ActivationToken, u.Inactive}
}

func userFromDBUser(u dbUser) User {
	return User{u.ID, u.Username, u.Email, u.PasswordHash, u.ActivationToken, u.Inactive}
}
