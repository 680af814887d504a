// Package evaluator resolves candidate kits against inventory, applies
// the structural, budget and compatibility checks, and selects the
// highest-scoring valid build across all candidates.
package evaluator

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"kitcheck/core/inventory"
	"kitcheck/core/parser"
	"kitcheck/core/rules"
	"kitcheck/core/types"
	"kitcheck/internal/logging"
)

// RejectReason classifies why a kit was excluded
type RejectReason string

const (
	// RejectMissingComponent - a referenced identifier is absent from inventory
	RejectMissingComponent RejectReason = "missing_component"

	// RejectCategoryMismatch - a resolved component's category does not
	// match its slot
	RejectCategoryMismatch RejectReason = "category_mismatch"

	// RejectOverBudget - total cost exceeds the budget
	RejectOverBudget RejectReason = "over_budget"

	// RejectIncompatible - a compatibility rule failed
	RejectIncompatible RejectReason = "incompatible"
)

// Verdict is the evaluation outcome for a single kit
type Verdict struct {
	// KitID is the kit that was evaluated
	KitID string `json:"kit_id"`

	// Accepted indicates the kit resolved to a valid, compatible build
	Accepted bool `json:"accepted"`

	// Reason classifies the rejection (empty when accepted)
	Reason RejectReason `json:"reason,omitempty"`

	// Detail is a human-readable explanation of the rejection
	Detail string `json:"detail,omitempty"`

	// FailedRule names the compatibility rule that rejected the kit
	FailedRule string `json:"failed_rule,omitempty"`

	// Cost is the build's total cost, present once resolution succeeds
	Cost decimal.Decimal `json:"cost"`

	// Score is the build's performance score, present when accepted
	Score int `json:"score"`
}

// Report is the outcome of evaluating every candidate kit
type Report struct {
	// MaxScore is the highest score among accepted kits, 0 when none
	MaxScore int `json:"max_score"`

	// BestKit is the first kit to reach MaxScore, or types.NoBuild
	BestKit string `json:"best_kit"`

	// Verdicts holds the per-kit outcomes in input order
	Verdicts []Verdict `json:"verdicts,omitempty"`

	// ComponentsIndexed is the number of distinct inventory entries
	ComponentsIndexed int `json:"components_indexed"`

	// RowsDiscarded is the number of input rows dropped during parsing
	RowsDiscarded int `json:"rows_discarded"`
}

// Evaluator checks kits against a fixed inventory and budget
type Evaluator struct {
	inv    *inventory.Inventory
	budget decimal.Decimal
	chain  []rules.Rule
}

// New creates an evaluator over an inventory with a spending limit
// and PSU power margin
func New(inv *inventory.Inventory, budget decimal.Decimal, marginWatts int64) *Evaluator {
	return &Evaluator{
		inv:    inv,
		budget: budget,
		chain:  rules.StandardChain(marginWatts),
	}
}

// Resolve looks up a kit's five references against inventory and
// checks each resolved component against its slot. It returns a
// rejection verdict when any reference is absent or miscategorized.
func (e *Evaluator) Resolve(kit types.Kit) (types.Build, *Verdict) {
	build := types.Build{KitID: kit.ID}

	for _, slot := range types.Slots() {
		id := kit.Ref(slot)
		c, ok := e.inv.Lookup(id)
		if !ok {
			return build, &Verdict{
				KitID:  kit.ID,
				Reason: RejectMissingComponent,
				Detail: fmt.Sprintf("%s slot references unknown component %q", slot, id),
			}
		}
		if c.Category != slot {
			return build, &Verdict{
				KitID:  kit.ID,
				Reason: RejectCategoryMismatch,
				Detail: fmt.Sprintf("%s slot references %q which is a %s", slot, id, c.Category),
			}
		}

		switch slot {
		case types.CategoryCPU:
			build.CPU = c
		case types.CategoryMotherboard:
			build.Motherboard = c
		case types.CategoryGPU:
			build.GPU = c
		case types.CategoryRAM:
			build.RAM = c
		case types.CategoryPSU:
			build.PSU = c
		}
	}

	return build, nil
}

// Evaluate runs the full check sequence for one kit: resolution,
// budget, then the compatibility chain. Score is computed only for
// accepted kits.
func (e *Evaluator) Evaluate(kit types.Kit) Verdict {
	build, rejected := e.Resolve(kit)
	if rejected != nil {
		return *rejected
	}

	cost := build.TotalCost()
	if cost.GreaterThan(e.budget) {
		return Verdict{
			KitID:  kit.ID,
			Reason: RejectOverBudget,
			Detail: fmt.Sprintf("total cost %s exceeds budget %s", cost, e.budget),
			Cost:   cost,
		}
	}

	if result := rules.EvaluateChain(e.chain, build); !result.Passed {
		return Verdict{
			KitID:      kit.ID,
			Reason:     RejectIncompatible,
			Detail:     result.Message,
			FailedRule: result.RuleName,
			Cost:       cost,
		}
	}

	return Verdict{
		KitID:    kit.ID,
		Accepted: true,
		Cost:     cost,
		Score:    build.Score(),
	}
}

// Run indexes a document's components, evaluates its kits in input
// order and selects the best build. A kit replaces the current best
// only on a strictly greater score, so ties keep the earlier kit and
// a score of exactly 0 never displaces the no-build sentinel.
func Run(doc *parser.Document, marginWatts int64) Report {
	inv := inventory.New()
	for _, c := range doc.Components {
		inv.Insert(c)
	}

	e := New(inv, doc.Budget, marginWatts)
	report := Report{
		BestKit:           types.NoBuild,
		ComponentsIndexed: inv.Len(),
		RowsDiscarded:     len(doc.Discards),
	}

	for _, kit := range doc.Kits {
		verdict := e.Evaluate(kit)
		report.Verdicts = append(report.Verdicts, verdict)

		if !verdict.Accepted {
			logging.Debug("kit rejected",
				zap.String("kit", kit.ID),
				zap.String("reason", string(verdict.Reason)),
				zap.String("detail", verdict.Detail))
			continue
		}

		if verdict.Score > report.MaxScore {
			report.MaxScore = verdict.Score
			report.BestKit = kit.ID
		}
	}

	return report
}
