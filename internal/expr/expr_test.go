package expr

import (
	"math"
	"testing"
)

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		src  string
		vars map[string]float64
		want float64
	}{
		{"1 + 2 * 3", nil, 7},
		{"(1 + 2) * 3", nil, 9},
		{"10 / 4", nil, 2.5},
		{"-5 + 3", nil, -2},
		{"--4", nil, 4},
		{"capital / burn", map[string]float64{"capital": 50_000, "burn": 4_000}, 12.5},
		{"population * adoption * price", map[string]float64{"population": 200_000, "adoption": 0.02, "price": 120}, 480_000},
		{"cac / (arpu * margin)", map[string]float64{"cac": 900, "arpu": 150, "margin": 0.6}, 10},
		{"raise / (premoney + raise) * 100", map[string]float64{"raise": 2_000_000, "premoney": 8_000_000}, 20},
		{"1_000 + 500", nil, 1500},
	}
	for _, tt := range tests {
		got, err := Eval(tt.src, tt.vars)
		if err != nil {
			t.Errorf("Eval(%q): %v", tt.src, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		vars map[string]float64
	}{
		{"unknown variable", "a + b", map[string]float64{"a": 1}},
		{"division by zero", "1 / 0", nil},
		{"division by zero variable", "x / y", map[string]float64{"x": 1, "y": 0}},
		{"trailing garbage", "1 + 2 zzz", nil},
		{"unclosed paren", "(1 + 2", nil},
		{"empty", "", nil},
		{"function call rejected", "pow(2, 3)", nil},
		{"comparison rejected", "1 < 2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Eval(tt.src, tt.vars); err == nil {
				t.Errorf("Eval(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestEval_NonFiniteInputRejected(t *testing.T) {
	if _, err := Eval("x * 2", map[string]float64{"x": math.Inf(1)}); err == nil {
		t.Error("infinite result accepted")
	}
}

func TestParse_Variables(t *testing.T) {
	e, err := Parse("cac / (arpu * margin) + cac")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vars := e.Variables()
	if len(vars) != 3 {
		t.Errorf("Variables() = %v, want 3 unique names", vars)
	}
}
