package store

import (
	"context"
	"fmt"

	"github.com/venturelab/venturesim/ent"
	"github.com/venturelab/venturesim/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMRequestEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, llmEventToRecord(e))
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := llmEventToRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	latency := make(map[string]int64)
	var order []string
	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	stats := make([]LLMUsageStats, 0, len(order))
	for _, purpose := range order {
		st := byPurpose[purpose]
		st.AvgLatencyMs = latency[purpose] / int64(st.Calls)
		stats = append(stats, *st)
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM model usage: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, e := range events {
		mu, ok := byModel[e.Model]
		if !ok {
			mu = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			order = append(order, e.Model)
		}
		mu.Calls++
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
	}

	usage := make([]LLMModelUsage, 0, len(order))
	for _, model := range order {
		usage = append(usage, *byModel[model])
	}
	return usage, nil
}

func llmEventToRecord(e *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
