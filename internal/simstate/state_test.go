package simstate

import (
	"math"
	"reflect"
	"testing"
)

func TestNewInitialState_Runway(t *testing.T) {
	s := NewInitialState()
	if s.Financial.Capital != 50_000 {
		t.Errorf("Capital = %v, want 50000", s.Financial.Capital)
	}
	if s.Financial.BurnRate != 4_000 {
		t.Errorf("BurnRate = %v, want 4000", s.Financial.BurnRate)
	}
	if s.Financial.RunwayMonths != 12.5 {
		t.Errorf("RunwayMonths = %v, want 12.5", s.Financial.RunwayMonths)
	}
}

func TestNewInitialState_Deterministic(t *testing.T) {
	a, b := NewInitialState(), NewInitialState()
	if !reflect.DeepEqual(a, b) {
		t.Error("two initial states differ")
	}
}

func TestApplyConsequence_Accumulates(t *testing.T) {
	s := NewInitialState()
	s = ApplyConsequence(s, Delta{Capital: 1000})
	s = ApplyConsequence(s, Delta{Capital: 1000})
	if s.Financial.Capital != 52_000 {
		t.Errorf("Capital = %v, want 52000 (additive, not overwrite)", s.Financial.Capital)
	}
}

func TestApplyConsequence_RunwayRederived(t *testing.T) {
	s := NewInitialState()
	s = ApplyConsequence(s, Delta{BurnRate: -2000})
	if s.Financial.RunwayMonths != 25.0 {
		t.Errorf("RunwayMonths = %v, want 25.0", s.Financial.RunwayMonths)
	}

	s = ApplyConsequence(s, Delta{BurnRate: -2000})
	if !math.IsInf(s.Financial.RunwayMonths, 1) {
		t.Errorf("RunwayMonths = %v, want +Inf at zero burn", s.Financial.RunwayMonths)
	}
}

func TestApplyConsequence_PercentClamp(t *testing.T) {
	s := NewInitialState()

	s = ApplyConsequence(s, Delta{TeamSatisfaction: 60})
	if s.Team.Satisfaction != 100 {
		t.Errorf("Satisfaction = %v, want clamped to 100", s.Team.Satisfaction)
	}

	s = ApplyConsequence(s, Delta{TeamSatisfaction: -250})
	if s.Team.Satisfaction != 0 {
		t.Errorf("Satisfaction = %v, want clamped to 0", s.Team.Satisfaction)
	}
}

func TestApplyConsequence_CapitalNeverClamped(t *testing.T) {
	s := NewInitialState()
	s = ApplyConsequence(s, Delta{Capital: -80_000})
	if s.Financial.Capital != -30_000 {
		t.Errorf("Capital = %v, want -30000 (insolvency is representable)", s.Financial.Capital)
	}
}

func TestApplyConsequence_NonFiniteFieldsIgnored(t *testing.T) {
	s := NewInitialState()
	next := ApplyConsequence(s, Delta{
		Capital:          math.NaN(),
		TeamSatisfaction: math.Inf(1),
		MarketAwareness:  5,
	})
	if next.Financial.Capital != s.Financial.Capital {
		t.Errorf("NaN capital delta applied: %v", next.Financial.Capital)
	}
	if next.Team.Satisfaction != s.Team.Satisfaction {
		t.Errorf("Inf satisfaction delta applied: %v", next.Team.Satisfaction)
	}
	if next.Market.Awareness != 5 {
		t.Errorf("valid field dropped alongside invalid ones: %v", next.Market.Awareness)
	}
}

func TestApplyConsequence_InputUntouched(t *testing.T) {
	s := NewInitialState()
	_ = ApplyConsequence(s, Delta{Capital: -500, Customers: 3})
	if s.Financial.Capital != 50_000 || s.Customers.Total != 0 {
		t.Error("ApplyConsequence mutated its input")
	}
}

func TestTriggerMistake_Idempotent(t *testing.T) {
	s := NewInitialState()
	s, added := TriggerMistake(s, "premature-hiring")
	if !added {
		t.Fatal("first trigger not added")
	}
	s, added = TriggerMistake(s, "premature-hiring")
	if added {
		t.Error("second trigger reported as added")
	}
	if len(s.MistakesTriggered) != 1 {
		t.Errorf("MistakesTriggered = %v, want single entry", s.MistakesTriggered)
	}
}

func TestLogDecision_AppendOnly(t *testing.T) {
	s := NewInitialState()
	s = LogDecision(s, Decision{Stage: -2, QuestionID: "q1", Summary: "a"})
	snapshot := s
	s = LogDecision(s, Decision{Stage: -2, QuestionID: "q2", Summary: "b"})

	if len(snapshot.DecisionLog) != 1 {
		t.Errorf("earlier snapshot grew to %d entries", len(snapshot.DecisionLog))
	}
	if len(s.DecisionLog) != 2 || s.DecisionLog[0].QuestionID != "q1" {
		t.Errorf("DecisionLog = %+v, want ordered append", s.DecisionLog)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	s := NewInitialState()
	s = ApplyConsequence(s, Delta{Capital: -12_345.67, Customers: 9, MarketAwareness: 33.3})
	s, _ = TriggerMistake(s, "no-market-research")
	s = LogDecision(s, Decision{Stage: 0, QuestionID: "q7", Summary: "chose cheap option"})
	s = AddCompoundedLoss(s, 2500)

	b, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestSerialize_RoundTripInfiniteRunway(t *testing.T) {
	s := NewInitialState()
	s = ApplyConsequence(s, Delta{BurnRate: -4000})

	b, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal with +Inf runway: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !math.IsInf(got.Financial.RunwayMonths, 1) {
		t.Errorf("RunwayMonths = %v, want +Inf rebuilt on load", got.Financial.RunwayMonths)
	}
}
