package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AssistantRequest pregunta al asistente.
type AssistantRequest struct {
	Prompt string `query:"prompt" json:"prompt"`
}
