package response

import (
	"time"

	"nagrik_seva/internal/domain/entities"
)

type DocumentResponse struct {
	Name        string `json:"name"`
	LocationRef string `json:"location_ref"`
}

type PaymentDetailsResponse struct {
	OfficialFee    int64      `json:"official_fee"`
	ServiceFee     int64      `json:"service_fee"`
	Discount       int64      `json:"discount"`
	TotalAmount    int64      `json:"total_amount"`
	CouponCode     string     `json:"coupon_code,omitempty"`
	IsPaid         bool       `json:"is_paid"`
	TransactionRef string     `json:"transaction_ref,omitempty"`
	ProofRef       string     `json:"proof_ref,omitempty"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
}

// ServiceRequestResponse is the staff view of a request. The user view is
// the same shape minus internal fields; FromServiceRequestUserView strips
// them.
type ServiceRequestResponse struct {
	ID                     string                 `json:"id"`
	TrackingCode           string                 `json:"tracking_code"`
	UserID                 string                 `json:"user_id"`
	ServiceType            string                 `json:"service_type"`
	TargetID               string                 `json:"target_id"`
	TargetName             string                 `json:"target_name"`
	Category               string                 `json:"category"`
	Status                 string                 `json:"status"`
	AssignedAgentID        string                 `json:"assigned_agent_id,omitempty"`
	ApplicationData        map[string]string      `json:"application_data,omitempty"`
	Payment                PaymentDetailsResponse `json:"payment"`
	Documents              []DocumentResponse     `json:"documents,omitempty"`
	ResultRef              string                 `json:"result_ref,omitempty"`
	RejectionReason        string                 `json:"rejection_reason,omitempty"`
	PaymentRejectionReason string                 `json:"payment_rejection_reason,omitempty"`
	AgentNotes             string                 `json:"agent_notes,omitempty"`
	ChatOpen               bool                   `json:"chat_open"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	resp := ServiceRequestResponse{
		ID:              r.ID,
		TrackingCode:    r.TrackingCode,
		UserID:          r.UserID,
		ServiceType:     r.ServiceType,
		TargetID:        r.TargetID,
		TargetName:      r.TargetName,
		Category:        r.Category,
		Status:          string(r.Status),
		AssignedAgentID: r.AssignedAgentID,
		ApplicationData: r.ApplicationData,
		Payment: PaymentDetailsResponse{
			OfficialFee:    r.PaymentDetails.OfficialFee,
			ServiceFee:     r.PaymentDetails.ServiceFee,
			Discount:       r.PaymentDetails.Discount,
			TotalAmount:    r.PaymentDetails.TotalAmount,
			CouponCode:     r.PaymentDetails.CouponCode,
			IsPaid:         r.PaymentDetails.IsPaid,
			TransactionRef: r.PaymentDetails.TransactionRef,
			ProofRef:       r.PaymentDetails.ProofRef,
			PaymentDate:    r.PaymentDetails.PaymentDate,
		},
		ResultRef:              r.ResultRef,
		RejectionReason:        r.RejectionReason,
		PaymentRejectionReason: r.PaymentRejectionReason,
		AgentNotes:             r.AgentNotes,
		ChatOpen:               r.ChatOpen(),
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
	for _, d := range r.UploadedDocuments {
		resp.Documents = append(resp.Documents, DocumentResponse{Name: d.Name, LocationRef: d.LocationRef})
	}
	return resp
}

// FromServiceRequestUserView hides internal staff fields from end users.
func FromServiceRequestUserView(r entities.ServiceRequest) ServiceRequestResponse {
	resp := FromServiceRequest(r)
	resp.AgentNotes = ""
	resp.AssignedAgentID = ""
	return resp
}

type PaymentReceiptResponse struct {
	Request    ServiceRequestResponse `json:"request"`
	Discount   int64                  `json:"discount"`
	AmountPaid int64                  `json:"amount_paid"`
	NewBalance int64                  `json:"new_balance"`
}
