// Package types defines the core data model for kit evaluation.
package types

import "github.com/shopspring/decimal"

// Category classifies a hardware component
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryMotherboard Category = "Motherboard"
	CategoryGPU         Category = "GPU"
	CategoryRAM         Category = "RAM"
	CategoryPSU         Category = "PSU"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Slots returns the five required categories in canonical order.
// Every kit references exactly one component per slot.
func Slots() []Category {
	return []Category{
		CategoryCPU,
		CategoryMotherboard,
		CategoryGPU,
		CategoryRAM,
		CategoryPSU,
	}
}

// Component is a single inventory part.
// Spec1 and Spec2 are free-form attributes whose meaning depends on
// the category:
//
//	CPU:         Spec1 = socket, Spec2 = TDP in watts
//	Motherboard: Spec1 = socket, Spec2 = supported memory type
//	GPU:         Spec1 = unused, Spec2 = TDP in watts
//	RAM:         Spec1 = memory type, Spec2 = unused
//	PSU:         Spec1 = wattage, Spec2 = unused
//
// Unused attributes are carried verbatim and never validated.
type Component struct {
	// ID uniquely identifies the component within the inventory
	ID string `json:"id"`

	// Category is the component category
	Category Category `json:"category"`

	// Performance is the component's performance score
	Performance int `json:"performance"`

	// Cost is the component price
	Cost decimal.Decimal `json:"cost"`

	// Spec1 is the first category-dependent attribute
	Spec1 string `json:"spec1"`

	// Spec2 is the second category-dependent attribute
	Spec2 string `json:"spec2"`
}

// Kit is a named candidate selection of five component identifiers,
// one per required slot. Kits are declared in the input; they are not
// generated from inventory.
type Kit struct {
	// ID is the kit identifier
	ID string `json:"id"`

	// CPUID references the CPU slot component
	CPUID string `json:"cpu_id"`

	// MotherboardID references the Motherboard slot component
	MotherboardID string `json:"motherboard_id"`

	// GPUID references the GPU slot component
	GPUID string `json:"gpu_id"`

	// RAMID references the RAM slot component
	RAMID string `json:"ram_id"`

	// PSUID references the PSU slot component
	PSUID string `json:"psu_id"`
}

// Ref returns the component identifier the kit declares for a slot
func (k Kit) Ref(slot Category) string {
	switch slot {
	case CategoryCPU:
		return k.CPUID
	case CategoryMotherboard:
		return k.MotherboardID
	case CategoryGPU:
		return k.GPUID
	case CategoryRAM:
		return k.RAMID
	case CategoryPSU:
		return k.PSUID
	default:
		return ""
	}
}

// Build is a kit resolved against inventory. The five slots are named
// fields rather than a map so a constructed Build always has all five
// components present. Builds are transient: constructed, checked,
// scored and discarded per kit.
type Build struct {
	// KitID is the kit this build was resolved from
	KitID string `json:"kit_id"`

	CPU         Component `json:"cpu"`
	Motherboard Component `json:"motherboard"`
	GPU         Component `json:"gpu"`
	RAM         Component `json:"ram"`
	PSU         Component `json:"psu"`
}

// Components returns the five resolved components in slot order
func (b Build) Components() []Component {
	return []Component{b.CPU, b.Motherboard, b.GPU, b.RAM, b.PSU}
}

// TotalCost returns the sum of the five component costs
func (b Build) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Components() {
		total = total.Add(c.Cost)
	}
	return total
}

// Score returns the sum of the five performance scores
func (b Build) Score() int {
	score := 0
	for _, c := range b.Components() {
		score += c.Performance
	}
	return score
}

// NoBuild is the sentinel kit identifier reported when no valid
// build exists
const NoBuild = "NONE"
