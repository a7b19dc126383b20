package usecase

import (
	"testing"
	"time"

	"travel-explorer-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStringifyID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), StringifyID(oid))
	assert.Equal(t, "abc", StringifyID("abc"))
	assert.Equal(t, "42", StringifyID(42))
	assert.Equal(t, "", StringifyID(nil))
}

func TestMaterializeConvertsAndOrders(t *testing.T) {
	oid := primitive.NewObjectID()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	records := []entity.Document{
		{"_id": oid, "type": "flights", "created_at": base},
		{"_id": "uuid-2", "type": "hotels", "created_at": primitive.NewDateTimeFromTime(base.Add(time.Hour))},
		{"_id": "uuid-3", "type": "trains"},
		{"_id": "uuid-4", "type": "trains", "created_at": base.Add(500 * time.Millisecond)},
	}

	out := Materialize(records)
	require.Len(t, out, 4)

	assert.Equal(t, "uuid-2", out[0]["_id"])
	assert.Equal(t, "2024-05-01T11:00:00.000000Z", out[0]["created_at"])
	assert.Equal(t, "uuid-4", out[1]["_id"])
	assert.Equal(t, "2024-05-01T10:00:00.500000Z", out[1]["created_at"])
	assert.Equal(t, oid.Hex(), out[2]["_id"])
	assert.Equal(t, "2024-05-01T10:00:00.000000Z", out[2]["created_at"])
	assert.Equal(t, "uuid-3", out[3]["_id"], "records without created_at sort last")

	for i := 0; i+1 < len(out); i++ {
		a, _ := out[i]["created_at"].(string)
		b, _ := out[i+1]["created_at"].(string)
		assert.GreaterOrEqual(t, a, b)
	}

	_, ok := records[0]["_id"].(primitive.ObjectID)
	assert.True(t, ok, "input records must not be modified")
}

func TestMaterializeIsStableOnTies(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []entity.Document{
		{"_id": "a", "created_at": ts},
		{"_id": "b", "created_at": ts},
		{"_id": "c", "created_at": ts},
	}

	out := Materialize(records)
	assert.Equal(t, "a", out[0]["_id"])
	assert.Equal(t, "b", out[1]["_id"])
	assert.Equal(t, "c", out[2]["_id"])
}

func TestMaterializeLeavesOtherFieldsAndStringTimestamps(t *testing.T) {
	records := []entity.Document{
		{"_id": "x", "created_at": "2024-01-01T00:00:00.000000Z", "meta": map[string]interface{}{"k": 1}},
	}
	out := Materialize(records)
	assert.Equal(t, "2024-01-01T00:00:00.000000Z", out[0]["created_at"])
	assert.Equal(t, map[string]interface{}{"k": 1}, out[0]["meta"])

	assert.Empty(t, Materialize(nil))
}
