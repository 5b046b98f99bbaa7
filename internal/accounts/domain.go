package accounts

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account represents a registered user. Only the bcrypt hash of the
// password is ever persisted; the plaintext never leaves the login and
// registration paths.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}
