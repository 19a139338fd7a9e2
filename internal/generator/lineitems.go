package generator

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restoration-financials/internal/domain"
)

var lineItemDescriptions = map[domain.LineItemCategory][]string{
	domain.CategoryLabor: {
		"Technician Labor", "Senior Technician Labor", "Removal Services",
		"Cleanup Labor", "Restoration Work", "Remediation Labor", "Assessment Labor",
	},
	domain.CategoryMaterials: {
		"Cleaning Supplies", "Replacement Materials", "Construction Materials",
		"Sanitizing Agents", "Deodorizers", "Filters", "Protective Barriers",
		"Paint & Supplies", "Sealants", "Restoration Materials",
	},
	domain.CategoryEquipment: {
		"Dehumidifier Rental", "Air Scrubber Rental", "Fans Rental",
		"Water Extraction Equipment", "Moisture Meters", "Thermal Imaging Camera",
		"HEPA Vacuum", "Pressure Washer", "Ozone Generator",
	},
	domain.CategoryMisc: {
		"Disposal Fees", "Permit Fees", "Inspection Fees", "Storage Fees",
		"Transportation", "Specialized Testing", "Documentation Services",
	},
}

// GenerateLineItems spreads baseAmount over the four categories using the
// job type's cost split. Every item satisfies total == round(qty*unitPrice, 2).
func (g *Generator) GenerateLineItems(jobType domain.JobType, baseAmount float64) []domain.LineItem {
	split, ok := g.cfg.CostSplits[jobType]
	if !ok {
		split = g.cfg.CostSplits[domain.JobTypeOther]
	}
	allocations := []struct {
		category domain.LineItemCategory
		amount   float64
	}{
		{domain.CategoryLabor, baseAmount * split.Labor},
		{domain.CategoryMaterials, baseAmount * split.Materials},
		{domain.CategoryEquipment, baseAmount * split.Equipment},
		{domain.CategoryMisc, baseAmount * split.Misc},
	}

	var items []domain.LineItem
	for _, alloc := range allocations {
		count := 1
		if alloc.category != domain.CategoryMisc {
			count = intBetween(g.rng, 1, 3)
		}
		perItem := alloc.amount / float64(count)
		for i := 0; i < count; i++ {
			amount := perItem * floatBetween(g.rng, 0.8, 1.2)
			items = append(items, g.lineItem(alloc.category, amount))
		}
	}
	return items
}

func (g *Generator) lineItem(category domain.LineItemCategory, amount float64) domain.LineItem {
	quantity := 1
	unitPrice := amount
	switch category {
	case domain.CategoryLabor:
		// hours at an hourly rate
		quantity = intBetween(g.rng, 4, 40)
		unitPrice = floatBetween(g.rng, 45, 95)
	case domain.CategoryMaterials:
		quantity = intBetween(g.rng, 1, 20)
		unitPrice = amount / float64(quantity)
	case domain.CategoryEquipment:
		quantity = intBetween(g.rng, 1, 5)
		unitPrice = amount / float64(quantity)
	}
	description := pick(g.rng, lineItemDescriptions[category])

	price := decimal.NewFromFloat(unitPrice).Round(2)
	total := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	markup := decimal.NewFromFloat(floatBetween(g.rng, 0.2, 0.6))
	internalCost := total.Mul(decimal.NewFromInt(1).Sub(markup)).Round(2)

	return domain.LineItem{
		ID:           g.newID(),
		Description:  description,
		Quantity:     quantity,
		UnitPrice:    price.InexactFloat64(),
		InternalCost: internalCost.InexactFloat64(),
		Total:        total.InexactFloat64(),
		Category:     category,
	}
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.ids)
	if err != nil {
		// idReader never fails
		return uuid.NewString()
	}
	return id.String()
}

// Totals is the tax breakdown derived from a job's line items.
type Totals struct {
	Labor     float64
	Materials float64
	Equipment float64
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ComputeTotals sums items per category and applies taxRate, rounding each
// figure to cents.
func ComputeTotals(items []domain.LineItem, taxRate float64) Totals {
	sums := map[domain.LineItemCategory]decimal.Decimal{}
	subtotal := decimal.Zero
	for _, it := range items {
		v := decimal.NewFromFloat(it.Total)
		sums[it.Category] = sums[it.Category].Add(v)
		subtotal = subtotal.Add(v)
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)

	return Totals{
		Labor:     sums[domain.CategoryLabor].Round(2).InexactFloat64(),
		Materials: sums[domain.CategoryMaterials].Round(2).InexactFloat64(),
		Equipment: sums[domain.CategoryEquipment].Round(2).InexactFloat64(),
		Subtotal:  subtotal.InexactFloat64(),
		TaxAmount: tax.InexactFloat64(),
		Total:     subtotal.Add(tax).Round(2).InexactFloat64(),
	}
}
