package generator

import (
	"fmt"
	"math"
	"time"

	"restoration-financials/internal/domain"
)

var jobTitles = map[domain.JobType]string{
	domain.JobTypeWater: "Water Damage Restoration",
	domain.JobTypeFire:  "Fire Damage Restoration",
	domain.JobTypeMold:  "Mold Remediation",
	domain.JobTypeSmoke: "Smoke Damage Cleanup",
	domain.JobTypeStorm: "Storm Damage Repair",
	domain.JobTypeOther: "General Restoration",
}

var jobDescriptions = map[domain.JobType]string{
	domain.JobTypeWater: "Water damage restoration services including extraction, drying, and repairs.",
	domain.JobTypeFire:  "Fire damage restoration including smoke removal, cleaning, and structural repairs.",
	domain.JobTypeMold:  "Comprehensive mold remediation including inspection, containment, removal, and prevention.",
	domain.JobTypeSmoke: "Smoke damage cleanup including odor removal, surface cleaning, and air purification.",
	domain.JobTypeStorm: "Storm damage repair including debris removal, water extraction, and structural repairs.",
	domain.JobTypeOther: "General restoration services tailored to customer needs.",
}

var inProgressStatuses = []domain.JobStatus{
	domain.StatusNew,
	domain.StatusScheduled,
	domain.StatusInProgress,
	domain.StatusOnHold,
	domain.StatusPendingCompletion,
}

// CompletionProbability is the chance a job started monthsAgo months ago is
// finished.
func CompletionProbability(monthsAgo int) float64 {
	switch {
	case monthsAgo > 3:
		return 0.95
	case monthsAgo > 1:
		return 0.7
	default:
		return 0.3
	}
}

// pickStatus layers the status draws: cancellation first, then completion by
// age, then billing stage or progress stage.
func (g *Generator) pickStatus(monthsAgo int) domain.JobStatus {
	if chance(g.rng, 0.05) {
		return domain.StatusCancelled
	}
	if chance(g.rng, CompletionProbability(monthsAgo)) {
		switch {
		case chance(g.rng, 0.85):
			return domain.StatusPaid
		case chance(g.rng, 0.7):
			return domain.StatusInvoiced
		case chance(g.rng, 0.7):
			return domain.StatusInvoiceApproval
		default:
			return domain.StatusCompleted
		}
	}
	return inProgressStatuses[int(g.rng.Float64()*float64(len(inProgressStatuses)))]
}

// GenerateJob fabricates job number index started in the zero-based month of
// year for a random customer.
func (g *Generator) GenerateJob(index, year, month int, customers []domain.Customer, technicianID string) domain.Job {
	now := g.now()
	monthsAgo := (now.Year()-year)*12 + (int(now.Month()) - 1 - month)
	status := g.pickStatus(monthsAgo)

	customer := pick(g.rng, customers)
	start := time.Date(year, time.Month(month+1), intBetween(g.rng, 1, 28), 0, 0, 0, 0, time.UTC)

	jobType, _ := WeightedChoice(g.rng, g.cfg.JobTypes)
	priceRange := g.cfg.PriceRanges[jobType]
	baseAmount := floatBetween(g.rng, priceRange.Min, priceRange.Max)

	created := start.AddDate(0, 0, -intBetween(g.rng, 1, 14))

	job := domain.Job{
		ID:              g.newID(),
		JobNumber:       fmt.Sprintf("J-%02d%02d-%04d", year%100, month+1, index),
		Title:           jobTitles[jobType] + " - " + customer.Name,
		Status:          status,
		Type:            jobType,
		Description:     jobDescriptions[jobType],
		CustomerID:      customer.ID,
		Location:        customer.PrimaryAddress,
		AssignedUserIDs: []string{technicianID},
		CreatedAt:       &created,
		EquipmentIDs:    []string{},
		Tags:            []string{string(jobType)},
		AccountOwnerID:  technicianID,
		HasBeforePhotos: status != domain.StatusNew,
		TaxRate:         g.cfg.TaxRate,
	}
	if status == domain.StatusCancelled {
		job.Title = "CANCELLED - " + job.Title
	}

	if status != domain.StatusNew {
		scheduled := start
		estimated := start.AddDate(0, 0, intBetween(g.rng, 3, 30))
		job.ScheduledStartDate = &scheduled
		job.EstimatedCompletionDate = &estimated
	}

	if status.IsFinished() {
		completed := start.AddDate(0, 0, intBetween(g.rng, 2, 25))
		job.CompletedDate = &completed
	}

	if status.IsBilled() {
		invoiced := job.CompletedDate.AddDate(0, 0, intBetween(g.rng, 1, 7))
		due := invoiced.AddDate(0, 0, 30)
		number := fmt.Sprintf("INV-%d-%04d", year, index)
		job.InvoiceDate = &invoiced
		job.InvoiceDueDate = &due
		job.InvoiceNumber = &number
	}

	if status == domain.StatusPaid {
		job.Payment = g.payment(baseAmount, *job.InvoiceDate)
	}

	job.LineItems = g.GenerateLineItems(jobType, baseAmount)
	totals := ComputeTotals(job.LineItems, g.cfg.TaxRate)
	job.LaborCost = totals.Labor
	job.MaterialsCost = totals.Materials
	job.EquipmentCost = totals.Equipment
	job.TaxAmount = totals.TaxAmount
	job.Total = totals.Total

	job.Priority = intBetween(g.rng, 1, 5)
	job.EstimatedCost = math.Round(baseAmount * 0.8)
	if chance(g.rng, 0.3) {
		job.AccessInstructions = "Contact customer before arrival"
	}
	job.CompletionTasks = g.completionTasks(status)
	if status != domain.StatusNew && status != domain.StatusScheduled {
		job.FinalNotes = "Job completed according to specifications."
	}
	return job
}

func (g *Generator) payment(amount float64, invoiceDate time.Time) *domain.Payment {
	var days int
	if chance(g.rng, 0.7) {
		days = intBetween(g.rng, 2, 25)
	} else {
		days = intBetween(g.rng, 26, 60)
	}
	paid := invoiceDate.AddDate(0, 0, days)
	method, _ := WeightedChoice(g.rng, g.cfg.PaymentMethods)

	p := &domain.Payment{
		Amount:          amount,
		Date:            paid,
		Method:          method,
		ReferenceNumber: fmt.Sprintf("PAY-%d", intBetween(g.rng, 10000, 99999)),
		Timestamp:       paid,
	}
	if chance(g.rng, 0.2) {
		note := "Payment received with thanks"
		p.Notes = &note
	}
	return p
}

func (g *Generator) completionTasks(status domain.JobStatus) *domain.CompletionTasks {
	switch status {
	case domain.StatusNew, domain.StatusScheduled:
		return nil
	case domain.StatusPendingCompletion:
		return &domain.CompletionTasks{
			FinalReadingsLogged: chance(g.rng, 0.5),
			AfterPhotosTaken:    chance(g.rng, 0.5),
			MarkReadyForReview:  chance(g.rng, 0.5),
		}
	default:
		return &domain.CompletionTasks{FinalReadingsLogged: true, AfterPhotosTaken: true, MarkReadyForReview: true}
	}
}
