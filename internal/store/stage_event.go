package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendStage(ctx context.Context, data StageEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StageEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetStage(data.Stage).
		SetCompoundingCost(data.CompoundingCost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stage event: %w", err)
	}
	return nil
}
