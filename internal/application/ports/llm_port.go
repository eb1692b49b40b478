package ports

import "context"

// LLMService puerto de salida hacia el modelo de lenguaje del asistente.
// Cualquier adaptador (Anthropic, mock) implementa esta interfaz.
type LLMService interface {
	// StreamAnswer envía prompt al modelo y llama onChunk por cada fragmento de texto recibido.
	// Si onChunk devuelve error se corta el stream y se propaga ese error.
	StreamAnswer(ctx context.Context, system, prompt string, onChunk func(string) error) error
}
