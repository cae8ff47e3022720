package assessment

import (
	"context"
	"testing"

	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/store"
)

func openTestRecorder(t *testing.T) *StoreRecorder {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewStoreRecorder(s)
}

func TestRecorderRoundTrip(t *testing.T) {
	rec := openTestRecorder(t)
	svc := &Service{Repo: rec}
	ctx := context.Background()

	a := New()
	if _, err := svc.Submit(ctx, a, choice("solve-problem")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(ctx, a, catalog.ResponseData{Type: catalog.TypeSlider, Value: 45}); err != nil {
		t.Fatalf("submit slider: %v", err)
	}

	restored, err := rec.Load(ctx, a.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if restored == nil {
		t.Fatal("no snapshot found")
	}
	if restored.ID != a.ID || restored.CurrentQuestionID != a.CurrentQuestionID {
		t.Errorf("restored = %+v", restored)
	}
	if len(restored.Responses) != 2 {
		t.Errorf("responses = %d, want 2", len(restored.Responses))
	}
	if restored.State.Financial.Capital != a.State.Financial.Capital {
		t.Errorf("capital = %v, want %v", restored.State.Financial.Capital, a.State.Financial.Capital)
	}

	events, err := rec.Events.QueryResponses(ctx, a.ID)
	if err != nil {
		t.Fatalf("query responses: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("response events = %d, want 2", len(events))
	}
}

func TestRecorderPersistsMistakes(t *testing.T) {
	rec := openTestRecorder(t)
	svc := &Service{Repo: rec}
	ctx := context.Background()

	a := New()
	a.Stage = catalog.StageIdeation
	a.CurrentQuestionID = "ideation-first-step"

	if _, err := svc.Submit(ctx, a, choice("build-first")); err != nil {
		t.Fatalf("submit: %v", err)
	}

	mistakes, err := rec.Events.QueryMistakes(ctx, a.ID)
	if err != nil {
		t.Fatalf("query mistakes: %v", err)
	}
	if len(mistakes) != 1 || mistakes[0].Code != "no-market-research" {
		t.Errorf("mistakes = %+v", mistakes)
	}
}

func TestLoadLatestEmpty(t *testing.T) {
	rec := openTestRecorder(t)

	a, err := rec.LoadLatest(context.Background())
	if err != nil {
		t.Fatalf("load latest: %v", err)
	}
	if a != nil {
		t.Errorf("expected nil assessment, got %+v", a)
	}
}

func TestList(t *testing.T) {
	rec := openTestRecorder(t)
	svc := &Service{Repo: rec}
	ctx := context.Background()

	first := New()
	if _, err := svc.Submit(ctx, first, choice("solve-problem")); err != nil {
		t.Fatalf("submit first: %v", err)
	}
	second := New()
	if _, err := svc.Submit(ctx, second, choice("be-own-boss")); err != nil {
		t.Fatalf("submit second: %v", err)
	}

	ids, err := rec.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 || ids[0] != second.ID || ids[1] != first.ID {
		t.Errorf("ids = %v, want [%s %s]", ids, second.ID, first.ID)
	}
}
