package domain

import "time"

// Status is the payment-tracking stage of a roster record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusAccredited Status = "accredited"
	StatusPaid       Status = "paid"
)

// Valid reports whether s is one of the four tracking stages. Any status may
// follow any other; there is no transition graph.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusAccredited, StatusPaid:
		return true
	}
	return false
}

// Roster is one uploaded payroll file: its metadata, the parsed rows, and
// the computed monetary total.
type Roster struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	Contractor     string    `json:"contractor"`     // uploading account's username
	ContractorName string    `json:"contractorName"` // uploading account's display name
	UploadedAt     time.Time `json:"uploadedAt"`
	Status         Status    `json:"status"`
	TotalAmount    float64   `json:"totalAmount"`
	RowCount       int       `json:"rowCount"`
	Rows           []Row     `json:"rows"`

	// Supplementary payment fields, set by the administrator after the fact.
	OperationNumber string `json:"operationNumber,omitempty"`
	ReceivedAmount  string `json:"receivedAmount,omitempty"` // decimal kept as text
	ReceiptNumber   string `json:"receiptNumber,omitempty"`
}
