package utils

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// GetErrorMessage turns a datastore error into the human-readable message
// returned to the client.
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if mongo.IsDuplicateKeyError(err) {
		return "Email already exists"
	}
	return err.Error()
}
