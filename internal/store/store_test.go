package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, &Snapshot{
		AssessmentID: "a-1",
		Status:       "in-progress",
		Stage:        0,
		Data:         json.RawMessage(`{"id":"a-1","stageNumber":0}`),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.AssessmentID != "a-1" {
		t.Errorf("assessment ID = %q, want a-1", snap.AssessmentID)
	}
	if snap.Sequence == 0 {
		t.Error("snapshot was not stamped with a sequence number")
	}

	var data map[string]any
	if err := json.Unmarshal(snap.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data["id"] != "a-1" {
		t.Errorf("data.id = %v, want a-1", data["id"])
	}
}

func TestSnapshotLatestForReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			AssessmentID: "a-1",
			Status:       "in-progress",
			Stage:        i,
			Data:         json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// A second assessment must not shadow the first.
	err := repo.Save(ctx, &Snapshot{
		AssessmentID: "a-2",
		Status:       "in-progress",
		Stage:        0,
		Data:         json.RawMessage(`{}`),
	})
	if err != nil {
		t.Fatalf("save other: %v", err)
	}

	snap, err := repo.LatestFor(ctx, "a-1")
	if err != nil {
		t.Fatalf("latest for: %v", err)
	}
	if snap.Stage != 2 {
		t.Errorf("stage = %d, want 2", snap.Stage)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.AssessmentID != "a-2" {
		t.Errorf("overall latest = %q, want a-2", snap.AssessmentID)
	}
}

func TestSnapshotAssessmentIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for _, id := range []string{"a-1", "a-2", "a-1", "a-3"} {
		err := repo.Save(ctx, &Snapshot{
			AssessmentID: id,
			Status:       "in-progress",
			Data:         json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	ids, err := repo.AssessmentIDs(ctx)
	if err != nil {
		t.Fatalf("assessment IDs: %v", err)
	}
	want := []string{"a-3", "a-1", "a-2"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			AssessmentID: "a-1",
			Status:       "in-progress",
			Stage:        i,
			Data:         json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "a-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be the last saved.
	snap, err := repo.LatestFor(ctx, "a-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Stage != 6 {
		t.Errorf("latest stage = %d, want 6", snap.Stage)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			AssessmentID: "a-1",
			Status:       "in-progress",
			Data:         json.RawMessage(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "a-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestAppendAndQueryResponses(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	responses := []ResponseEventData{
		{AssessmentID: "a-1", QuestionID: "mindset-motivation", Stage: -2, ResponseJSON: `{"selectedOption":"solve-problem"}`, PointsAwarded: 10},
		{AssessmentID: "a-1", QuestionID: "mindset-risk-appetite", Stage: -2, ResponseJSON: `{"value":45}`, PointsAwarded: 10},
		{AssessmentID: "a-2", QuestionID: "mindset-motivation", Stage: -2, ResponseJSON: `{"selectedOption":"get-rich"}`, PointsAwarded: 4},
	}
	for i, data := range responses {
		if err := repo.AppendResponse(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryResponses(ctx, "a-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].QuestionID != "mindset-motivation" || records[1].QuestionID != "mindset-risk-appetite" {
		t.Errorf("wrong order: %q, %q", records[0].QuestionID, records[1].QuestionID)
	}
	if records[0].Sequence >= records[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", records[0].Sequence, records[1].Sequence)
	}
	if records[0].PointsAwarded != 10 {
		t.Errorf("points = %v, want 10", records[0].PointsAwarded)
	}
}

func TestAppendAndQueryMistakes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMistake(ctx, MistakeEventData{
		AssessmentID:  "a-1",
		Code:          "no-market-research",
		QuestionID:    "ideation-first-step",
		Stage:         -1,
		ImmediateCost: 0,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryMistakes(ctx, "a-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Code != "no-market-research" {
		t.Errorf("code = %q", records[0].Code)
	}

	records, err = repo.QueryMistakes(ctx, "a-2")
	if err != nil {
		t.Fatalf("query other: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records for other assessment = %d, want 0", len(records))
	}
}

func TestAppendLLMRequestAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku",
			Purpose:      "answer-grading",
			InputTokens:  100,
			OutputTokens: 20,
			LatencyMs:    int64(200 + i),
			Success:      true,
			RequestBody:  "[user]\ngrade this",
			ResponseBody: `{"score":0.8}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("not newest first: %d, %d", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"score":0.8}` {
		t.Errorf("event = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "answer-grading", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "answer-grading", InputTokens: 200, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "pitch-feedback", InputTokens: 50, OutputTokens: 10, LatencyMs: 150, Success: true},
	}
	for i, data := range calls {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d, want 2", len(stats))
	}
	for _, st := range stats {
		switch st.Purpose {
		case "answer-grading":
			if st.Calls != 2 || st.InputTokens != 300 || st.OutputTokens != 60 {
				t.Errorf("grading stats = %+v", st)
			}
			if st.AvgLatencyMs != 200 {
				t.Errorf("avg latency = %d, want 200", st.AvgLatencyMs)
			}
		case "pitch-feedback":
			if st.Calls != 1 || st.InputTokens != 50 {
				t.Errorf("feedback stats = %+v", st)
			}
		default:
			t.Errorf("unexpected purpose %q", st.Purpose)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage = %d, want 2", len(usage))
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendResponse(ctx, ResponseEventData{AssessmentID: "a-1", QuestionID: "q", Stage: 0, ResponseJSON: `{}`}); err != nil {
		t.Fatalf("append response: %v", err)
	}
	if err := repo.AppendMistake(ctx, MistakeEventData{AssessmentID: "a-1", Code: "c", QuestionID: "q", Stage: 0}); err != nil {
		t.Fatalf("append mistake: %v", err)
	}
	if err := repo.AppendStage(ctx, StageEventData{AssessmentID: "a-1", Stage: 1, CompoundingCost: 2000}); err != nil {
		t.Fatalf("append stage: %v", err)
	}

	responses, err := repo.QueryResponses(ctx, "a-1")
	if err != nil {
		t.Fatalf("query responses: %v", err)
	}
	mistakes, err := repo.QueryMistakes(ctx, "a-1")
	if err != nil {
		t.Fatalf("query mistakes: %v", err)
	}
	if responses[0].Sequence >= mistakes[0].Sequence {
		t.Errorf("cross-type ordering broken: response %d, mistake %d",
			responses[0].Sequence, mistakes[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "response_events", "mistake_events", "stage_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
		}
	}
}
