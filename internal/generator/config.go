package generator

import "restoration-financials/internal/domain"

// PriceRange bounds the pre-tax base amount drawn for a job type.
type PriceRange struct {
	Min float64
	Max float64
}

// CostSplit is the share of a job's base amount allocated to each line-item
// category. Shares sum to 1.
type CostSplit struct {
	Labor     float64
	Materials float64
	Equipment float64
	Misc      float64
}

// City is a pool entry for generated addresses.
type City struct {
	Name  string
	State string
	Zips  []string
}

// Config carries every table the generator draws from.
type Config struct {
	// JobsPerMonth is indexed by zero-based month and encodes seasonality.
	JobsPerMonth   [12]int
	TaxRate        float64
	StartingYear   int
	CustomerCount  int
	TechnicianID   string
	JobTypes       []Weighted[domain.JobType]
	PriceRanges    map[domain.JobType]PriceRange
	CostSplits     map[domain.JobType]CostSplit
	PaymentMethods []Weighted[string]
	CustomerNames  []string
	Cities         []City
	Streets        []string
}

// TotalJobs is the number of jobs a full run produces.
func (c Config) TotalJobs() int {
	total := 0
	for _, n := range c.JobsPerMonth {
		total += n
	}
	return total
}

// DefaultConfig returns the seasonal restoration-business tables.
func DefaultConfig() Config {
	return Config{
		// busier in spring storm season and summer
		JobsPerMonth:  [12]int{15, 10, 20, 25, 30, 35, 40, 45, 30, 25, 15, 10},
		TaxRate:       0.0875,
		StartingYear:  2024,
		CustomerCount: 25,
		TechnicianID:  "tech-01",
		JobTypes: []Weighted[domain.JobType]{
			{Value: domain.JobTypeWater, Weight: 0.35},
			{Value: domain.JobTypeFire, Weight: 0.15},
			{Value: domain.JobTypeMold, Weight: 0.25},
			{Value: domain.JobTypeSmoke, Weight: 0.10},
			{Value: domain.JobTypeStorm, Weight: 0.10},
			{Value: domain.JobTypeOther, Weight: 0.05},
		},
		PriceRanges: map[domain.JobType]PriceRange{
			domain.JobTypeWater: {Min: 1500, Max: 8000},
			domain.JobTypeFire:  {Min: 5000, Max: 20000},
			domain.JobTypeMold:  {Min: 2000, Max: 10000},
			domain.JobTypeSmoke: {Min: 1500, Max: 7000},
			domain.JobTypeStorm: {Min: 3000, Max: 15000},
			domain.JobTypeOther: {Min: 1000, Max: 5000},
		},
		CostSplits: map[domain.JobType]CostSplit{
			domain.JobTypeWater: {Labor: 0.40, Materials: 0.30, Equipment: 0.25, Misc: 0.05},
			domain.JobTypeFire:  {Labor: 0.45, Materials: 0.35, Equipment: 0.15, Misc: 0.05},
			domain.JobTypeMold:  {Labor: 0.35, Materials: 0.40, Equipment: 0.20, Misc: 0.05},
			domain.JobTypeSmoke: {Labor: 0.50, Materials: 0.30, Equipment: 0.15, Misc: 0.05},
			domain.JobTypeStorm: {Labor: 0.40, Materials: 0.35, Equipment: 0.20, Misc: 0.05},
			domain.JobTypeOther: {Labor: 0.45, Materials: 0.25, Equipment: 0.20, Misc: 0.10},
		},
		PaymentMethods: []Weighted[string]{
			{Value: "CREDIT_CARD", Weight: 0.45},
			{Value: "CHECK", Weight: 0.30},
			{Value: "BANK_TRANSFER", Weight: 0.20},
			{Value: "CASH", Weight: 0.05},
		},
		CustomerNames: []string{
			"Smith Family Residence", "Johnson Property", "Williams Home", "Brown Residence", "Jones Estate",
			"Garcia Family Home", "Miller Property", "Davis Residence", "Rodriguez Estate", "Martinez Home",
			"Hernandez Property", "Lopez Residence", "Gonzalez Home", "Wilson Property", "Anderson Residence",
			"Mountain View Apartments", "Oakwood Condominiums", "Riverside Mall", "Downtown Office Center",
			"Clearwater Hospital", "Lakeside Hotel", "Green Valley School", "Sunset Restaurant", "Pioneer Bank",
			"Metro Fitness Center", "Harbor View Clinic", "Willow Creek Church", "Eastside Retail Plaza",
			"Golden Age Retirement Home", "Stonebridge Corporate Center", "Magnolia Apartments", "Cedar Ridge Condos",
			"Parkview Office Building", "Grand Central Hotel", "Valley Medical Center", "Westfield Mall",
		},
		Cities: []City{
			{Name: "Springfield", State: "IL", Zips: []string{"62701", "62702", "62703", "62704", "62705"}},
			{Name: "Riverdale", State: "CA", Zips: []string{"90001", "90002", "90003", "90004"}},
			{Name: "Oakdale", State: "WA", Zips: []string{"98001", "98002", "98003"}},
			{Name: "Lakeside", State: "TX", Zips: []string{"75001", "75002", "75003", "75004"}},
			{Name: "Hillcrest", State: "NY", Zips: []string{"10001", "10002", "10003"}},
		},
		Streets: []string{
			"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine Rd", "Elm St", "Washington Ave",
			"Park Blvd", "Lake Dr", "River Rd", "Mountain View", "Sunset Blvd", "Valley Way",
		},
	}
}
