// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/venturelab/venturesim/ent/llmrequestevent"
	"github.com/venturelab/venturesim/ent/mistakeevent"
	"github.com/venturelab/venturesim/ent/responseevent"
	"github.com/venturelab/venturesim/ent/schema"
	"github.com/venturelab/venturesim/ent/snapshot"
	"github.com/venturelab/venturesim/ent/stageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mistakeeventMixin := schema.MistakeEvent{}.Mixin()
	mistakeeventMixinFields0 := mistakeeventMixin[0].Fields()
	_ = mistakeeventMixinFields0
	mistakeeventFields := schema.MistakeEvent{}.Fields()
	_ = mistakeeventFields
	// mistakeeventDescTimestamp is the schema descriptor for timestamp field.
	mistakeeventDescTimestamp := mistakeeventMixinFields0[1].Descriptor()
	// mistakeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mistakeevent.DefaultTimestamp = mistakeeventDescTimestamp.Default.(func() time.Time)
	// mistakeeventDescAssessmentID is the schema descriptor for assessment_id field.
	mistakeeventDescAssessmentID := mistakeeventFields[0].Descriptor()
	// mistakeevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	mistakeevent.AssessmentIDValidator = mistakeeventDescAssessmentID.Validators[0].(func(string) error)
	// mistakeeventDescCode is the schema descriptor for code field.
	mistakeeventDescCode := mistakeeventFields[1].Descriptor()
	// mistakeevent.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	mistakeevent.CodeValidator = mistakeeventDescCode.Validators[0].(func(string) error)
	// mistakeeventDescQuestionID is the schema descriptor for question_id field.
	mistakeeventDescQuestionID := mistakeeventFields[2].Descriptor()
	// mistakeevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	mistakeevent.QuestionIDValidator = mistakeeventDescQuestionID.Validators[0].(func(string) error)
	// mistakeeventDescImmediateCost is the schema descriptor for immediate_cost field.
	mistakeeventDescImmediateCost := mistakeeventFields[4].Descriptor()
	// mistakeevent.DefaultImmediateCost holds the default value on creation for the immediate_cost field.
	mistakeevent.DefaultImmediateCost = mistakeeventDescImmediateCost.Default.(float64)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescAssessmentID is the schema descriptor for assessment_id field.
	responseeventDescAssessmentID := responseeventFields[0].Descriptor()
	// responseevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	responseevent.AssessmentIDValidator = responseeventDescAssessmentID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[1].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(string) error)
	// responseeventDescPointsAwarded is the schema descriptor for points_awarded field.
	responseeventDescPointsAwarded := responseeventFields[4].Descriptor()
	// responseevent.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	responseevent.DefaultPointsAwarded = responseeventDescPointsAwarded.Default.(float64)
	// responseeventDescNeedsReview is the schema descriptor for needs_review field.
	responseeventDescNeedsReview := responseeventFields[5].Descriptor()
	// responseevent.DefaultNeedsReview holds the default value on creation for the needs_review field.
	responseevent.DefaultNeedsReview = responseeventDescNeedsReview.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescAssessmentID is the schema descriptor for assessment_id field.
	snapshotDescAssessmentID := snapshotFields[0].Descriptor()
	// snapshot.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	snapshot.AssessmentIDValidator = snapshotDescAssessmentID.Validators[0].(func(string) error)
	// snapshotDescStatus is the schema descriptor for status field.
	snapshotDescStatus := snapshotFields[1].Descriptor()
	// snapshot.DefaultStatus holds the default value on creation for the status field.
	snapshot.DefaultStatus = snapshotDescStatus.Default.(string)
	// snapshotDescStage is the schema descriptor for stage field.
	snapshotDescStage := snapshotFields[2].Descriptor()
	// snapshot.DefaultStage holds the default value on creation for the stage field.
	snapshot.DefaultStage = snapshotDescStage.Default.(int)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[4].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescTimestamp is the schema descriptor for timestamp field.
	stageeventDescTimestamp := stageeventMixinFields0[1].Descriptor()
	// stageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stageevent.DefaultTimestamp = stageeventDescTimestamp.Default.(func() time.Time)
	// stageeventDescAssessmentID is the schema descriptor for assessment_id field.
	stageeventDescAssessmentID := stageeventFields[0].Descriptor()
	// stageevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	stageevent.AssessmentIDValidator = stageeventDescAssessmentID.Validators[0].(func(string) error)
	// stageeventDescCompoundingCost is the schema descriptor for compounding_cost field.
	stageeventDescCompoundingCost := stageeventFields[2].Descriptor()
	// stageevent.DefaultCompoundingCost holds the default value on creation for the compounding_cost field.
	stageevent.DefaultCompoundingCost = stageeventDescCompoundingCost.Default.(float64)
}
