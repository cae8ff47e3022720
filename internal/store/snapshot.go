package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/venturelab/venturesim/ent"
	"github.com/venturelab/venturesim/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	snap.Sequence = seqNum

	dataMap, err := rawToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	builder := r.client.Snapshot.Create().
		SetAssessmentID(snap.AssessmentID).
		SetStatus(snap.Status).
		SetStage(snap.Stage).
		SetSequence(snap.Sequence).
		SetData(dataMap)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	return r.latest(ctx, r.client.Snapshot.Query())
}

func (r *snapshotRepo) LatestFor(ctx context.Context, assessmentID string) (*Snapshot, error) {
	return r.latest(ctx, r.client.Snapshot.Query().
		Where(snapshot.AssessmentID(assessmentID)))
}

func (r *snapshotRepo) latest(ctx context.Context, query *ent.SnapshotQuery) (*Snapshot, error) {
	s, err := query.
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToSnapshot(s)
}

func (r *snapshotRepo) AssessmentIDs(ctx context.Context) ([]string, error) {
	snaps, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, s := range snaps {
		if seen[s.AssessmentID] {
			continue
		}
		seen[s.AssessmentID] = true
		ids = append(ids, s.AssessmentID)
	}
	return ids, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, assessmentID string, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.AssessmentID(assessmentID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Sequence
	_, err = r.client.Snapshot.Delete().
		Where(
			snapshot.AssessmentID(assessmentID),
			snapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// rawToMap converts serialized JSON to map[string]any for ent JSON storage.
func rawToMap(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent Snapshot to a store Snapshot.
func entSnapshotToSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:           s.ID,
		AssessmentID: s.AssessmentID,
		Status:       s.Status,
		Stage:        s.Stage,
		Sequence:     s.Sequence,
		Timestamp:    s.Timestamp,
		Data:         raw,
	}, nil
}
