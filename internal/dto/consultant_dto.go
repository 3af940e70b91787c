package dto

type ConsultantMessageRequest struct {
	Message string `json:"message" form:"message" validate:"max=4000"`
}

type ConsultantMessageDTO struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ConsultantResponse struct {
	Accepted bool                   `json:"accepted"`
	State    string                 `json:"state"`
	Messages []ConsultantMessageDTO `json:"messages"`
}
