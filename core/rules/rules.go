// Package rules provides the compatibility rule chain for resolved
// builds. Rules run in a fixed order and the chain stops at the first
// failure. A failed rule is a normal rejection outcome, never an error.
package rules

import (
	"fmt"
	"strconv"

	"kitcheck/core/types"
)

// Rule defines a single compatibility rule
type Rule interface {
	// Name returns the rule identifier
	Name() string

	// Description returns a human-readable description
	Description() string

	// Evaluate checks the rule against a resolved build
	Evaluate(build types.Build) RuleResult
}

// RuleResult contains the evaluation output for a single rule
type RuleResult struct {
	// RuleName is the rule that was evaluated
	RuleName string `json:"rule_name"`

	// Passed indicates if the rule passed
	Passed bool `json:"passed"`

	// Message is a human-readable result message
	Message string `json:"message,omitempty"`
}

// StandardChain returns the compatibility rules in evaluation order.
// marginWatts is the PSU headroom added to combined TDP.
func StandardChain(marginWatts int64) []Rule {
	return []Rule{
		socketMatch{},
		memoryTypeMatch{},
		powerBudget{margin: marginWatts},
	}
}

// EvaluateChain runs rules in order, short-circuiting on the first
// failure. It returns the failing result, or a passing result naming
// the last rule when every rule passes.
func EvaluateChain(chain []Rule, build types.Build) RuleResult {
	result := RuleResult{Passed: true}
	for _, rule := range chain {
		result = rule.Evaluate(build)
		if !result.Passed {
			return result
		}
	}
	return result
}

// socketMatch requires the CPU and motherboard sockets to be equal,
// compared as exact case-sensitive strings
type socketMatch struct{}

func (socketMatch) Name() string        { return "socket_match" }
func (socketMatch) Description() string { return "CPU socket must match motherboard socket" }

func (r socketMatch) Evaluate(build types.Build) RuleResult {
	cpuSocket := build.CPU.Spec1
	moboSocket := build.Motherboard.Spec1
	if cpuSocket != moboSocket {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("CPU socket %q does not match motherboard socket %q", cpuSocket, moboSocket),
		}
	}
	return RuleResult{RuleName: r.Name(), Passed: true}
}

// memoryTypeMatch requires the RAM memory type to equal the
// motherboard's supported memory type, exact case-sensitive
type memoryTypeMatch struct{}

func (memoryTypeMatch) Name() string { return "memory_type_match" }
func (memoryTypeMatch) Description() string {
	return "RAM memory type must match motherboard supported type"
}

func (r memoryTypeMatch) Evaluate(build types.Build) RuleResult {
	ramType := build.RAM.Spec1
	moboType := build.Motherboard.Spec2
	if ramType != moboType {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("RAM type %q not supported by motherboard (%q)", ramType, moboType),
		}
	}
	return RuleResult{RuleName: r.Name(), Passed: true}
}

// powerBudget requires the PSU wattage to cover combined CPU and GPU
// TDP plus the safety margin. The wattage and TDP attributes are
// stringly typed; a value that does not parse as a base-10 integer
// fails the rule rather than raising an error.
type powerBudget struct {
	margin int64
}

func (powerBudget) Name() string { return "power_budget" }
func (r powerBudget) Description() string {
	return fmt.Sprintf("PSU wattage must cover CPU+GPU TDP plus %d watts", r.margin)
}

func (r powerBudget) Evaluate(build types.Build) RuleResult {
	cpuTDP, err := strconv.ParseInt(build.CPU.Spec2, 10, 64)
	if err != nil {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("CPU TDP %q is not an integer", build.CPU.Spec2),
		}
	}

	gpuTDP, err := strconv.ParseInt(build.GPU.Spec2, 10, 64)
	if err != nil {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("GPU TDP %q is not an integer", build.GPU.Spec2),
		}
	}

	wattage, err := strconv.ParseInt(build.PSU.Spec1, 10, 64)
	if err != nil {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("PSU wattage %q is not an integer", build.PSU.Spec1),
		}
	}

	required := cpuTDP + gpuTDP + r.margin
	if wattage < required {
		return RuleResult{
			RuleName: r.Name(),
			Message:  fmt.Sprintf("PSU wattage %d below required %d", wattage, required),
		}
	}
	return RuleResult{RuleName: r.Name(), Passed: true}
}
