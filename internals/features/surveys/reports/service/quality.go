package service

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// QualityRule: label dipakai bila ekspresi (atas variabel `average`) bernilai true.
type QualityRule struct {
	Label string
	When  string
}

// DefaultQualityRules diurutkan dari band tertinggi; rule terakhir = fallback.
var DefaultQualityRules = []QualityRule{
	{Label: "Excellent", When: "average >= 4.5"},
	{Label: "Very Good", When: "average >= 4.0"},
	{Label: "Good", When: "average >= 3.5"},
	{Label: "Average", When: "average >= 3.0"},
	{Label: "Poor", When: "true"},
}

type compiledRule struct {
	label   string
	program *vm.Program
}

type QualityGrader struct {
	rules []compiledRule
}

// NewQualityGrader meng-compile seluruh rule sekali di awal.
func NewQualityGrader(rules []QualityRule) (*QualityGrader, error) {
	env := map[string]any{"average": 0.0}
	g := &QualityGrader{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		program, err := expr.Compile(r.When, expr.Env(env), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("quality rule %q: %w", r.Label, err)
		}
		g.rules = append(g.rules, compiledRule{label: r.Label, program: program})
	}
	return g, nil
}

// MustDefaultGrader untuk rule bawaan (selalu valid).
func MustDefaultGrader() *QualityGrader {
	g, err := NewQualityGrader(DefaultQualityRules)
	if err != nil {
		panic(err)
	}
	return g
}

// Grade mengembalikan label pertama yang cocok; "" bila tidak ada.
func (g *QualityGrader) Grade(average float64) string {
	env := map[string]any{"average": average}
	for _, r := range g.rules {
		out, err := expr.Run(r.program, env)
		if err != nil {
			continue
		}
		if ok, _ := out.(bool); ok {
			return r.label
		}
	}
	return ""
}
