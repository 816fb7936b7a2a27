package isotime

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Layout is the on-disk timestamp format: ISO-8601 in UTC with a fixed
// six-digit fractional second, so the textual order of two timestamps matches
// their chronological order (list endpoints sort on the stored text).
const Layout = "2006-01-02T15:04:05.000000Z07:00"

// Encode returns a copy of doc with each named field rewritten from a native
// datetime value to its ISO-8601 text form. Fields that are absent or already
// text are left unchanged, so Encode is idempotent.
func Encode(doc bson.M, fields ...string) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	for _, f := range fields {
		switch v := out[f].(type) {
		case time.Time:
			out[f] = v.UTC().Format(Layout)
		case primitive.DateTime:
			out[f] = v.Time().UTC().Format(Layout)
		}
	}
	return out
}

// Decode returns a copy of doc with each named field parsed from ISO-8601 text
// into a time.Time. Fields that are absent or not text are left unchanged.
// Malformed text is a hard error: stored timestamps are always written through
// Encode, so a parse failure means the document was corrupted out of band.
func Decode(doc bson.M, fields ...string) (bson.M, error) {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	for _, f := range fields {
		s, ok := out[f].(string)
		if !ok {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", f, err)
		}
		out[f] = t
	}
	return out, nil
}

// EncodeRecord marshals a domain record into a document ready for insertion,
// with the named datetime fields rewritten to their text form.
func EncodeRecord(v interface{}, fields ...string) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return Encode(doc, fields...), nil
}

// DecodeRecord parses the named text fields of a stored document and
// unmarshals the result into out. Fields the record does not declare are
// dropped, so reads stay forward compatible with newer stored documents.
func DecodeRecord(doc bson.M, out interface{}, fields ...string) error {
	dec, err := Decode(doc, fields...)
	if err != nil {
		return err
	}
	b, err := bson.Marshal(dec)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if err := bson.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}
