package repositories

import (
	"testing"

	"platzistore/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTagFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, tagFilter(nil))
	assert.Equal(t, bson.M{"tags": bson.M{"$in": []string{"x", "y"}}}, tagFilter([]string{"x", "y"}))
}

func TestObjectID(t *testing.T) {
	oid, err := objectID("5e8f8f8f8f8f8f8f8f8f8f8f")
	assert.NoError(t, err)
	assert.Equal(t, "5e8f8f8f8f8f8f8f8f8f8f8f", oid.Hex())

	_, err = objectID("not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductDocumentToModel(t *testing.T) {
	oid, _ := objectID("5e8f8f8f8f8f8f8f8f8f8f8f")
	doc := productDocument{ID: oid, Title: "Pin", Price: 4, Tags: []string{"small"}}
	p := doc.toModel()
	assert.Equal(t, "5e8f8f8f8f8f8f8f8f8f8f8f", p.ID)
	assert.Equal(t, "Pin", p.Title)
	assert.Equal(t, []string{"small"}, p.Tags)
}
