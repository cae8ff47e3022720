package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Snapshot is a point-in-time capture of one assessment's full state.
// Data holds the serialized assessment; the assessment package owns its shape.
type Snapshot struct {
	ID           int
	AssessmentID string
	Status       string
	Stage        int
	Sequence     int64
	Timestamp    time.Time
	Data         json.RawMessage
}

// SnapshotRepo manages assessment state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, stamping it with the next global
	// sequence number.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot across all assessments,
	// or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// LatestFor returns the most recent snapshot for one assessment,
	// or nil if none exist.
	LatestFor(ctx context.Context, assessmentID string) (*Snapshot, error)

	// AssessmentIDs lists the assessments with at least one snapshot,
	// most recently updated first.
	AssessmentIDs(ctx context.Context) ([]string, error)

	// Prune deletes all but the N most recent snapshots of one assessment.
	Prune(ctx context.Context, assessmentID string, keep int) error
}

// ResponseEventData captures the data for a single answered question.
type ResponseEventData struct {
	AssessmentID  string
	QuestionID    string
	Stage         int
	ResponseJSON  string
	PointsAwarded float64
	NeedsReview   bool
}

// ResponseEventRecord is a stored response event.
type ResponseEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResponseEventData
}

// MistakeEventData captures the data for a detected critical mistake.
type MistakeEventData struct {
	AssessmentID  string
	Code          string
	QuestionID    string
	Stage         int
	ImmediateCost float64
}

// MistakeEventRecord is a stored mistake event.
type MistakeEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	MistakeEventData
}

// StageEventData captures the data for a stage transition.
type StageEventData struct {
	AssessmentID    string
	Stage           int
	CompoundingCost float64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResponse records an answered question.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// QueryResponses returns one assessment's response events in
	// sequence order.
	QueryResponses(ctx context.Context, assessmentID string) ([]ResponseEventRecord, error)

	// AppendMistake records a detected critical mistake.
	AppendMistake(ctx context.Context, data MistakeEventData) error

	// QueryMistakes returns one assessment's mistake events in
	// sequence order.
	QueryMistakes(ctx context.Context, assessmentID string) ([]MistakeEventRecord, error)

	// AppendStage records a stage transition.
	AppendStage(ctx context.Context, data StageEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
