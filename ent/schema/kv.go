package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KVEntry is a small string setting such as the completed lesson set or
// the theme preference.
type KVEntry struct {
	ent.Schema
}

func (KVEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "kv"}}
}

func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").Unique().NotEmpty(),
		field.Text("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
