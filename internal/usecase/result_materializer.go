package usecase

import (
	"fmt"
	"sort"
	"time"

	"travel-explorer-service/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimestampLayout is ISO-8601 with fixed microsecond precision, so that
// formatted timestamps order lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// StringifyID converts a storage-native identifier into a plain string
func StringifyID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Materialize makes stored records transport-safe: ids become strings, structured
// created_at values become ISO-8601 strings, and the result is stably ordered
// newest first. Records without a string created_at sort last. Input records are
// not modified.
func Materialize(records []entity.Document) []entity.Document {
	out := make([]entity.Document, 0, len(records))
	for _, rec := range records {
		doc := rec.Copy()
		if id, ok := doc[entity.FieldID]; ok {
			doc[entity.FieldID] = StringifyID(id)
		}
		if ts, ok := doc[entity.FieldCreatedAt]; ok {
			doc[entity.FieldCreatedAt] = formatTimestamp(ts)
		}
		out = append(out, doc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) > sortKey(out[j])
	})
	return out
}

func formatTimestamp(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(TimestampLayout)
	case *time.Time:
		if t == nil {
			return v
		}
		return t.UTC().Format(TimestampLayout)
	case primitive.DateTime:
		return t.Time().UTC().Format(TimestampLayout)
	default:
		return v
	}
}

func sortKey(doc entity.Document) string {
	s, _ := doc[entity.FieldCreatedAt].(string)
	return s
}
