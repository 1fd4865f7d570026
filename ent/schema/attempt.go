package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one graded query. Attempts never affect progress.
type Attempt struct {
	ent.Schema
}

func (Attempt) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "attempts"}}
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("lesson_id").NotEmpty(),
		field.Bool("passed"),
		field.Text("query"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
	}
}
