package usecase

import (
	"fmt"
	"time"

	"travel-explorer-service/internal/domain/entity"
	"travel-explorer-service/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentCodec turns typed records or loose mappings into storable documents
type DocumentCodec struct {
	now func() time.Time
}

// NewDocumentCodec creates a codec reading the clock from now (time.Now when nil)
func NewDocumentCodec(now func() time.Time) *DocumentCodec {
	if now == nil {
		now = time.Now
	}
	return &DocumentCodec{now: now}
}

// Normalize returns a fresh document holding every field of payload plus created_at.
// Structs are encoded through their bson tags; maps are copied. Any created_at
// in the payload is replaced. The payload itself is never modified.
func (c *DocumentCodec) Normalize(payload interface{}) (entity.Document, error) {
	var doc entity.Document

	switch p := payload.(type) {
	case nil:
		return nil, apperr.New(apperr.KindValidation, "payload is required")
	case entity.Document:
		doc = p.Copy()
	case map[string]interface{}:
		doc = entity.Document(p).Copy()
	case bson.M:
		doc = entity.Document(p).Copy()
	default:
		raw, err := bson.Marshal(payload)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "normalize", fmt.Sprintf("cannot encode %T", payload), err)
		}
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "normalize", fmt.Sprintf("cannot decode %T", payload), err)
		}
		doc = entity.Document(m)
	}

	// BSON dates carry millisecond precision; truncate so every store sees the same value.
	doc[entity.FieldCreatedAt] = c.now().UTC().Truncate(time.Millisecond)
	return doc, nil
}
