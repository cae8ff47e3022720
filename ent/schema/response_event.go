package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answered question within an assessment.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Assessment this response belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that was answered"),
		field.Int("stage").
			Comment("Stage number the question belongs to"),
		field.String("response_data").
			Comment("The submitted answer payload as JSON"),
		field.Float("points_awarded").
			Default(0).
			Comment("Points this answer earned"),
		field.Bool("needs_review").
			Default(false).
			Comment("Whether the score is a fallback pending human review"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("question_id"),
		index.Fields("stage"),
	}
}
