package store

import (
	"context"
	"fmt"

	"github.com/venturelab/venturesim/ent"
	"github.com/venturelab/venturesim/ent/responseevent"
)

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetQuestionID(data.QuestionID).
		SetStage(data.Stage).
		SetResponseData(data.ResponseJSON).
		SetPointsAwarded(data.PointsAwarded).
		SetNeedsReview(data.NeedsReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryResponses(ctx context.Context, assessmentID string) ([]ResponseEventRecord, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.AssessmentID(assessmentID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query response events: %w", err)
	}

	records := make([]ResponseEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ResponseEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ResponseEventData: ResponseEventData{
				AssessmentID:  e.AssessmentID,
				QuestionID:    e.QuestionID,
				Stage:         e.Stage,
				ResponseJSON:  e.ResponseData,
				PointsAwarded: e.PointsAwarded,
				NeedsReview:   e.NeedsReview,
			},
		})
	}
	return records, nil
}
