package store

import (
	"context"
	"fmt"

	"github.com/venturelab/venturesim/ent"
	"github.com/venturelab/venturesim/ent/mistakeevent"
)

func (r *eventRepo) AppendMistake(ctx context.Context, data MistakeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MistakeEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetCode(data.Code).
		SetQuestionID(data.QuestionID).
		SetStage(data.Stage).
		SetImmediateCost(data.ImmediateCost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mistake event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryMistakes(ctx context.Context, assessmentID string) ([]MistakeEventRecord, error) {
	events, err := r.client.MistakeEvent.Query().
		Where(mistakeevent.AssessmentID(assessmentID)).
		Order(ent.Asc(mistakeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistake events: %w", err)
	}

	records := make([]MistakeEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, MistakeEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			MistakeEventData: MistakeEventData{
				AssessmentID:  e.AssessmentID,
				Code:          e.Code,
				QuestionID:    e.QuestionID,
				Stage:         e.Stage,
				ImmediateCost: e.ImmediateCost,
			},
		})
	}
	return records, nil
}
