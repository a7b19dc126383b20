package entity

// Document is a schema-less record as stored in, or read from, a collection.
type Document map[string]interface{}

// Well-known document keys.
const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
)

// Copy returns a shallow copy of d.
func (d Document) Copy() Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}
