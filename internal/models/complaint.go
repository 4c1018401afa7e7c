package models

import "time"

const (
	ComplaintPending  = "pending"
	ComplaintResolved = "resolved"
	ComplaintRejected = "rejected"
)

const (
	ComplaintReasonFraud     = "fraud"
	ComplaintReasonWrongInfo = "wrong_info"
	ComplaintReasonSpam      = "spam"
	ComplaintReasonOther     = "other"
)

func IsValidComplaintReason(r string) bool {
	switch r {
	case ComplaintReasonFraud, ComplaintReasonWrongInfo, ComplaintReasonSpam, ComplaintReasonOther:
		return true
	}
	return false
}

func IsValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintPending, ComplaintResolved, ComplaintRejected:
		return true
	}
	return false
}

type Complaint struct {
	ID          int       `json:"id"`
	PropertyID  int       `json:"property_id"`
	UserID      int       `json:"user_id"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	User        struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Phone   string `json:"phone,omitempty"`
	} `json:"user"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}
