package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MistakeEvent records a critical mistake the moment it is detected.
type MistakeEvent struct {
	ent.Schema
}

func (MistakeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MistakeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Assessment this mistake occurred in"),
		field.String("code").
			NotEmpty().
			Comment("Mistake code, e.g. no-market-research"),
		field.String("question_id").
			NotEmpty().
			Comment("Question whose answer triggered the mistake"),
		field.Int("stage").
			Comment("Stage number the mistake was made in"),
		field.Float("immediate_cost").
			Default(0).
			Comment("Capital lost to the immediate penalty"),
	}
}

func (MistakeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("code"),
	}
}
