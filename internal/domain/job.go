package domain

import "time"

// JobStatus is the lifecycle stage of a job.
type JobStatus string

const (
	StatusNew               JobStatus = "NEW"
	StatusScheduled         JobStatus = "SCHEDULED"
	StatusInProgress        JobStatus = "IN_PROGRESS"
	StatusOnHold            JobStatus = "ON_HOLD"
	StatusPendingCompletion JobStatus = "PENDING_COMPLETION"
	StatusCompleted         JobStatus = "COMPLETED"
	StatusInvoiceApproval   JobStatus = "INVOICE_APPROVAL"
	StatusInvoiced          JobStatus = "INVOICED"
	StatusPaid              JobStatus = "PAID"
	StatusCancelled         JobStatus = "CANCELLED"
)

// IsFinished reports whether the work on the job is done (invoiced or not).
func (s JobStatus) IsFinished() bool {
	switch s {
	case StatusCompleted, StatusInvoiceApproval, StatusInvoiced, StatusPaid:
		return true
	}
	return false
}

// IsBilled reports whether an invoice has been issued for the job.
func (s JobStatus) IsBilled() bool {
	return s == StatusInvoiced || s == StatusPaid
}

// JobType classifies the kind of restoration work.
type JobType string

const (
	JobTypeWater JobType = "WATER"
	JobTypeFire  JobType = "FIRE"
	JobTypeMold  JobType = "MOLD"
	JobTypeSmoke JobType = "SMOKE"
	JobTypeStorm JobType = "STORM"
	JobTypeOther JobType = "OTHER"
)

// LineItemCategory groups billable entries for cost tracking.
type LineItemCategory string

const (
	CategoryLabor     LineItemCategory = "LABOR"
	CategoryMaterials LineItemCategory = "MATERIALS"
	CategoryEquipment LineItemCategory = "EQUIPMENT"
	CategoryMisc      LineItemCategory = "MISC"
)

// LineItem is a single billable entry within a job.
type LineItem struct {
	ID           string           `json:"id"`
	Description  string           `json:"description"`
	Quantity     int              `json:"quantity"`
	UnitPrice    float64          `json:"unitPrice"`
	InternalCost float64          `json:"internalCost"`
	Total        float64          `json:"total"`
	Category     LineItemCategory `json:"category"`
}

// Payment records money received against an invoice.
type Payment struct {
	Amount          float64   `json:"amount"`
	Date            time.Time `json:"date"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"referenceNumber"`
	Notes           *string   `json:"notes"`
	Timestamp       time.Time `json:"timestamp"`
}

// CompletionTasks is the close-out checklist for a job.
type CompletionTasks struct {
	FinalReadingsLogged bool `json:"finalReadingsLogged"`
	AfterPhotosTaken    bool `json:"afterPhotosTaken"`
	MarkReadyForReview  bool `json:"mark_ready_for_review"`
}

// Job is a unit of restoration work with its billing lifecycle. Nullable
// timestamps stay nil until the status implies them.
type Job struct {
	ID                      string           `json:"id"`
	JobNumber               string           `json:"jobNumber"`
	Title                   string           `json:"title"`
	Status                  JobStatus        `json:"status"`
	Type                    JobType          `json:"type"`
	Description             string           `json:"description"`
	CustomerID              string           `json:"customerId"`
	Location                Address          `json:"location"`
	AssignedUserIDs         []string         `json:"assignedUserIds"`
	CreatedAt               *time.Time       `json:"createdAt"`
	ScheduledStartDate      *time.Time       `json:"scheduledStartDate"`
	EstimatedCompletionDate *time.Time       `json:"estimatedCompletionDate"`
	CompletedDate           *time.Time       `json:"completedDate"`
	EquipmentIDs            []string         `json:"equipmentIds"`
	Priority                int              `json:"priority"`
	EstimatedCost           float64          `json:"estimatedCost"`
	AccessInstructions      string           `json:"accessInstructions,omitempty"`
	Tags                    []string         `json:"tags"`
	OriginatingQuoteID      *string          `json:"originatingQuoteId"`
	AccountOwnerID          string           `json:"accountOwnerId"`
	CompletionTasks         *CompletionTasks `json:"completionTasks,omitempty"`
	HasBeforePhotos         bool             `json:"hasBeforePhotos"`
	LaborCost               float64          `json:"laborCost"`
	MaterialsCost           float64          `json:"materialsCost"`
	EquipmentCost           float64          `json:"equipmentCost"`
	LineItems               []LineItem       `json:"lineItems"`
	FinalNotes              string           `json:"finalNotes,omitempty"`
	InvoiceNumber           *string          `json:"invoiceNumber"`
	InvoiceDate             *time.Time       `json:"invoiceDate"`
	InvoiceDueDate          *time.Time       `json:"invoiceDueDate"`
	Total                   float64          `json:"total"`
	Payment                 *Payment         `json:"payment"`
	TaxAmount               float64          `json:"taxAmount"`
	TaxRate                 float64          `json:"taxRate"`
}

// DirectCost is the sum of the tracked labor, materials and equipment costs.
func (j Job) DirectCost() float64 {
	return j.LaborCost + j.MaterialsCost + j.EquipmentCost
}

// Dataset is the full generated fixture set.
type Dataset struct {
	Customers []Customer
	Jobs      []Job
}
