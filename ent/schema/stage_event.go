package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvent records a stage transition, including the compounding cost
// charged on entry.
type StageEvent struct {
	ent.Schema
}

func (StageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Assessment that advanced"),
		field.Int("stage").
			Comment("Stage number that was entered"),
		field.Float("compounding_cost").
			Default(0).
			Comment("Capital lost to deferred mistake penalties on entry"),
	}
}

func (StageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
	}
}
