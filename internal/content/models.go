package content

import "time"

// DefaultKey identifies the singleton content document. There is never more
// than one: writes go through an upsert on this key.
const DefaultKey = "default"

// SiteContentDoc is the single editable content document behind the public
// website. Content is an opaque caller-owned tree; the API only requires it to
// be a JSON object.
type SiteContentDoc struct {
	Key       string                 `json:"key" bson:"key"`
	Content   map[string]interface{} `json:"content" bson:"content"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}

// SiteContentUpdate is the PUT payload. The stored content is replaced
// wholesale; there is no merge or partial update.
type SiteContentUpdate struct {
	Content map[string]interface{} `json:"content" binding:"required"`
}
