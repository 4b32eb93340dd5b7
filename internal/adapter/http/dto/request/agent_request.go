package request

type CreateAgentRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Role            string   `json:"role" binding:"required"`
	Specializations []string `json:"specializations"`
	MaxCapacity     int      `json:"max_capacity" binding:"required"`
}

type BlockAgentRequest struct {
	Blocked bool `json:"blocked"`
}

type HeartbeatRequest struct {
	Online bool `json:"online"`
}
