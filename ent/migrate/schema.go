// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MistakeEventsColumns holds the columns for the "mistake_events" table.
	MistakeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "code", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt},
		{Name: "immediate_cost", Type: field.TypeFloat64, Default: 0},
	}
	// MistakeEventsTable holds the schema information for the "mistake_events" table.
	MistakeEventsTable = &schema.Table{
		Name:       "mistake_events",
		Columns:    MistakeEventsColumns,
		PrimaryKey: []*schema.Column{MistakeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistakeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[1]},
			},
			{
				Name:    "mistakeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[2]},
			},
			{
				Name:    "mistakeevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[3]},
			},
			{
				Name:    "mistakeevent_code",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[4]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt},
		{Name: "response_data", Type: field.TypeString},
		{Name: "points_awarded", Type: field.TypeFloat64, Default: 0},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_stage",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "in-progress"},
		{Name: "stage", Type: field.TypeInt, Default: 0},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[5]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[4]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt},
		{Name: "compounding_cost", Type: field.TypeFloat64, Default: 0},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[1]},
			},
			{
				Name:    "stageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[2]},
			},
			{
				Name:    "stageevent_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MistakeEventsTable,
		ResponseEventsTable,
		SnapshotsTable,
		StageEventsTable,
	}
)

func init() {
}
