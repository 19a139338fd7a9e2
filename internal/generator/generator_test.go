package generator

import (
	"encoding/json"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restoration-financials/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestGenerator(seed uint64) *Generator {
	return NewSeeded(DefaultConfig(), seed, fixedClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)), nil)
}

func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func TestWeightedChoice_Distribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	items := []Weighted[string]{{Value: "a", Weight: 0.9}, {Value: "b", Weight: 0.1}}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		v, ok := WeightedChoice(rng, items)
		require.True(t, ok)
		counts[v]++
	}
	assert.InDelta(t, 9000, counts["a"], 400)
	assert.InDelta(t, 1000, counts["b"], 400)
}

func TestWeightedChoice_ZeroWeightsFallBackToFirst(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	items := []Weighted[string]{{Value: "first", Weight: 0}, {Value: "second", Weight: 0}}

	v, ok := WeightedChoice(rng, items)
	require.True(t, ok)
	// r starts at 0 so the first item is taken by the loop itself
	assert.Equal(t, "first", v)

	neg := []Weighted[string]{{Value: "first", Weight: -1}, {Value: "second", Weight: -1}}
	v, ok = WeightedChoice(rng, neg)
	require.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestWeightedChoice_Empty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	v, ok := WeightedChoice[string](rng, nil)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestIsBusinessName(t *testing.T) {
	cases := map[string]bool{
		"Riverside Mall":           true,
		"Downtown Office Center":   true,
		"Parkview Office Building": true,
		"Smith Family Residence":   false,
		"Jones Estate":             false,
		"Williams Home":            true, // substring match also flags homes
	}
	for name, want := range cases {
		assert.Equal(t, want, IsBusinessName(name), name)
	}
}

func TestGenerateCustomer_Shape(t *testing.T) {
	g := newTestGenerator(7)
	phone := regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

	for i := 1; i <= 50; i++ {
		c := g.GenerateCustomer(i)
		require.Equal(t, "customer-"+strconv.Itoa(i), c.ID)
		require.True(t, c.IsActive)
		require.Regexp(t, phone, c.Phone)
		require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), c.CreatedAt)
		if IsBusinessName(c.Name) {
			require.NotEmpty(t, c.ContactPerson)
			require.NotContains(t, c.Email, ".residence@")
		} else {
			require.Empty(t, c.ContactPerson)
			require.Contains(t, c.Email, ".residence@example.com")
		}
		require.NotEmpty(t, c.PrimaryAddress.Zip)
	}
}

func TestGenerateLineItems_TotalsReconcile(t *testing.T) {
	g := newTestGenerator(11)

	for _, jt := range []domain.JobType{domain.JobTypeWater, domain.JobTypeFire, domain.JobTypeMold, domain.JobTypeSmoke, domain.JobTypeStorm, domain.JobTypeOther} {
		items := g.GenerateLineItems(jt, 5000)
		perCategory := map[domain.LineItemCategory]int{}
		for _, it := range items {
			perCategory[it.Category]++
			want := decimal.NewFromInt(int64(it.Quantity)).Mul(cents(it.UnitPrice)).Round(2)
			require.True(t, want.Equal(cents(it.Total)), "%s: %d x %v != %v", it.Description, it.Quantity, it.UnitPrice, it.Total)
			require.Less(t, it.InternalCost, it.Total)
			require.NotEmpty(t, it.ID)
		}
		require.Equal(t, 1, perCategory[domain.CategoryMisc])
		for _, cat := range []domain.LineItemCategory{domain.CategoryLabor, domain.CategoryMaterials, domain.CategoryEquipment} {
			require.GreaterOrEqual(t, perCategory[cat], 1)
			require.LessOrEqual(t, perCategory[cat], 3)
		}
	}
}

func TestGenerate_DatasetInvariants(t *testing.T) {
	g := newTestGenerator(2024)
	ds := g.Generate()

	require.Len(t, ds.Customers, 25)
	require.Len(t, ds.Jobs, 300)

	customerIDs := map[string]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}

	jobNumber := regexp.MustCompile(`^J-24\d{2}-\d{4}$`)
	invoiceNumber := regexp.MustCompile(`^INV-2024-\d{4}$`)

	for _, j := range ds.Jobs {
		require.True(t, customerIDs[j.CustomerID], "unknown customer %s", j.CustomerID)
		require.Regexp(t, jobNumber, j.JobNumber)
		require.Equal(t, []string{"tech-01"}, j.AssignedUserIDs)

		subtotal := decimal.Zero
		for _, it := range j.LineItems {
			subtotal = subtotal.Add(cents(it.Total))
			require.True(t, decimal.NewFromInt(int64(it.Quantity)).Mul(cents(it.UnitPrice)).Round(2).Equal(cents(it.Total)))
		}
		subtotal = subtotal.Round(2)
		tax := subtotal.Mul(decimal.NewFromFloat(j.TaxRate)).Round(2)
		require.True(t, tax.Equal(cents(j.TaxAmount)), "job %s tax", j.JobNumber)
		require.True(t, subtotal.Add(tax).Round(2).Equal(cents(j.Total)), "job %s total", j.JobNumber)

		if j.Status.IsBilled() {
			require.NotNil(t, j.InvoiceDate)
			require.NotNil(t, j.InvoiceDueDate)
			require.Regexp(t, invoiceNumber, *j.InvoiceNumber)
			require.Equal(t, j.InvoiceDate.AddDate(0, 0, 30), *j.InvoiceDueDate)
			require.True(t, j.InvoiceDate.After(*j.CompletedDate))
		} else {
			require.Nil(t, j.InvoiceDate)
			require.Nil(t, j.InvoiceDueDate)
			require.Nil(t, j.InvoiceNumber)
		}
		if j.Status == domain.StatusPaid {
			require.NotNil(t, j.Payment)
			require.True(t, j.Payment.Date.After(*j.InvoiceDate))
		} else {
			require.Nil(t, j.Payment)
		}
		if j.Status.IsFinished() {
			require.NotNil(t, j.CompletedDate)
		} else {
			require.Nil(t, j.CompletedDate)
		}
		if j.Status == domain.StatusNew {
			require.Nil(t, j.ScheduledStartDate)
			require.Nil(t, j.CompletionTasks)
		} else {
			require.NotNil(t, j.ScheduledStartDate)
			require.True(t, j.CreatedAt.Before(*j.ScheduledStartDate))
		}
		if j.Status == domain.StatusCancelled {
			require.Regexp(t, `^CANCELLED - `, j.Title)
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, err := json.Marshal(newTestGenerator(99).Generate())
	require.NoError(t, err)
	b, err := json.Marshal(newTestGenerator(99).Generate())
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))

	c, err := json.Marshal(newTestGenerator(100).Generate())
	require.NoError(t, err)
	require.NotEqual(t, string(a), string(c))
}

func TestReportYear(t *testing.T) {
	cfg := DefaultConfig()
	early := NewSeeded(cfg, 1, fixedClock(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)), nil)
	late := NewSeeded(cfg, 1, fixedClock(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)), nil)

	assert.Equal(t, 2024, early.ReportYear())
	assert.Equal(t, 2025, late.ReportYear())
}

func TestCompletionProbability(t *testing.T) {
	assert.Equal(t, 0.95, CompletionProbability(4))
	assert.Equal(t, 0.7, CompletionProbability(3))
	assert.Equal(t, 0.7, CompletionProbability(2))
	assert.Equal(t, 0.3, CompletionProbability(1))
	assert.Equal(t, 0.3, CompletionProbability(-2))
}

func TestConfig_TotalJobs(t *testing.T) {
	assert.Equal(t, 300, DefaultConfig().TotalJobs())
}

func TestGenerate_NoCustomers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomerCount = 0
	g := NewSeeded(cfg, 3, fixedClock(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)), nil)

	var ds domain.Dataset
	require.NotPanics(t, func() { ds = g.Generate() })
	assert.Empty(t, ds.Customers)
	assert.NotNil(t, ds.Jobs)
	assert.Empty(t, ds.Jobs)
}
