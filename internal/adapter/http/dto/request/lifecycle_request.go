package request

// CreateServiceRequest is the submission payload for a new service request.
// Answers carry the dynamic application form keyed by declared field name.
type CreateServiceRequest struct {
	ServiceType    string            `json:"service_type" binding:"required"`
	TargetID       string            `json:"target_id" binding:"required"`
	Answers        map[string]string `json:"answers"`
	IdempotencyKey string            `json:"idempotency_key"`
}

type AttachDocumentRequest struct {
	Name        string `json:"name" binding:"required"`
	LocationRef string `json:"location_ref" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type CompleteRequest struct {
	ResultRef string `json:"result_ref" binding:"required"`
}

type ReassignRequest struct {
	// AgentID empty means unassign.
	AgentID string `json:"agent_id"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}
