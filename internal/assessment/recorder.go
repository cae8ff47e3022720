package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/mistake"
	"github.com/venturelab/venturesim/internal/store"
)

// snapshotsToKeep bounds per-assessment snapshot history; older snapshots
// add nothing once a newer full-state capture exists.
const snapshotsToKeep = 20

// StoreRecorder persists assessment progress as events and snapshots.
type StoreRecorder struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
}

// NewStoreRecorder builds a StoreRecorder over an open store.
func NewStoreRecorder(s *store.Store) *StoreRecorder {
	return &StoreRecorder{
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
	}
}

func (r *StoreRecorder) RecordResponse(ctx context.Context, assessmentID string, resp catalog.Response) error {
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal response data: %w", err)
	}
	return r.Events.AppendResponse(ctx, store.ResponseEventData{
		AssessmentID:  assessmentID,
		QuestionID:    resp.QuestionID,
		Stage:         int(resp.Stage),
		ResponseJSON:  string(raw),
		PointsAwarded: resp.PointsAwarded,
		NeedsReview:   resp.NeedsReview,
	})
}

func (r *StoreRecorder) RecordMistake(ctx context.Context, assessmentID string, rec mistake.Record) error {
	return r.Events.AppendMistake(ctx, store.MistakeEventData{
		AssessmentID:  assessmentID,
		Code:          string(rec.Code),
		QuestionID:    rec.QuestionID,
		Stage:         int(rec.Stage),
		ImmediateCost: rec.ImmediateCost,
	})
}

func (r *StoreRecorder) RecordStage(ctx context.Context, assessmentID string, entered catalog.Stage, compoundingCost float64) error {
	return r.Events.AppendStage(ctx, store.StageEventData{
		AssessmentID:    assessmentID,
		Stage:           int(entered),
		CompoundingCost: compoundingCost,
	})
}

func (r *StoreRecorder) SaveSnapshot(ctx context.Context, a *Assessment) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	snap := &store.Snapshot{
		AssessmentID: a.ID,
		Status:       string(a.Status),
		Stage:        int(a.Stage),
		Timestamp:    a.UpdatedAt,
		Data:         raw,
	}
	if err := r.Snapshots.Save(ctx, snap); err != nil {
		return err
	}
	return r.Snapshots.Prune(ctx, a.ID, snapshotsToKeep)
}

// LoadLatest restores the most recently saved assessment, or nil when the
// store holds none.
func (r *StoreRecorder) LoadLatest(ctx context.Context) (*Assessment, error) {
	snap, err := r.Snapshots.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return restore(snap)
}

// Load restores one assessment by ID, or nil when it has no snapshot.
func (r *StoreRecorder) Load(ctx context.Context, assessmentID string) (*Assessment, error) {
	snap, err := r.Snapshots.LatestFor(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return restore(snap)
}

// List returns the IDs of all persisted assessments, most recent first.
func (r *StoreRecorder) List(ctx context.Context) ([]string, error) {
	return r.Snapshots.AssessmentIDs(ctx)
}

func restore(snap *store.Snapshot) (*Assessment, error) {
	if snap == nil {
		return nil, nil
	}
	var a Assessment
	if err := json.Unmarshal(snap.Data, &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment snapshot: %w", err)
	}
	return &a, nil
}
