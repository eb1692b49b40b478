package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

const (
	assistantMaxPrompt = 2000
	assistantTimeout   = 30 * time.Second

	assistantSystemPrompt = `Eres el asistente de La Cazuela Chapina, un negocio guatemalteco de tamales y bebidas de maíz.
Responde en español, de forma breve y práctica. Ayudas al personal con recetas, combos,
control de insumos y atención al cliente. Si no sabes algo, dilo.`
)

// AssistantUseCase orquesta las consultas al asistente con streaming.
type AssistantUseCase struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewAssistantUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAssistantUseCase(llm ports.LLMService, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{llm: llm, log: log}
}

// ValidatePrompt normaliza el prompt; vacío o mayor a 2000 caracteres es ErrInvalidInput.
func ValidatePrompt(prompt string) (string, error) {
	p := strings.TrimSpace(prompt)
	if p == "" || utf8.RuneCountInString(p) > assistantMaxPrompt {
		return "", domain.ErrInvalidInput
	}
	return p, nil
}

// Stream envía el prompt al modelo y reenvía cada fragmento a onChunk.
// Aplica un timeout de 30 s sobre todo el stream.
func (uc *AssistantUseCase) Stream(ctx context.Context, prompt string, onChunk func(string) error) error {
	p, err := ValidatePrompt(prompt)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, assistantTimeout)
	defer cancel()

	if err := uc.llm.StreamAnswer(ctx, assistantSystemPrompt, p, onChunk); err != nil {
		uc.log.Warn().Err(err).Int("prompt_len", len(p)).Msg("asistente: stream interrumpido")
		return err
	}
	return nil
}
