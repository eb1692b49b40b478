package http

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/usecase"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

// AssistantHandler expone el asistente como Server-Sent Events.
type AssistantHandler struct {
	uc  *usecase.AssistantUseCase
	log *logger.Logger
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{uc: uc, log: log}
}

// Stream godoc
// @Summary      Preguntar al asistente (SSE)
// @Description  Emite un evento "data: <fragmento>" por cada delta de texto y termina con "data: [DONE]".
// @Tags         assistant
// @Security     Bearer
// @Produce      text/event-stream
// @Param        prompt  query  string  true  "Pregunta (máx. 2000 caracteres)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/assistant/stream [get]
func (h *AssistantHandler) Stream(c *fiber.Ctx) error {
	prompt, err := usecase.ValidatePrompt(c.Query("prompt"))
	if err != nil {
		return respondError(c, err)
	}
	userID := GetUserID(c)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// El writer corre después de que el handler retorna: no usar el RequestCtx de fasthttp.
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		err := h.uc.Stream(context.Background(), prompt, func(chunk string) error {
			writeEvent(w, "", chunk)
			return w.Flush()
		})
		if err != nil {
			h.log.Warn().Err(err).Str("user_id", userID).Msg("asistente: stream con error")
			writeEvent(w, "error", "el asistente no está disponible")
		}
		writeEvent(w, "", "[DONE]")
		_ = w.Flush()
	})
	return nil
}

// writeEvent escribe un evento SSE; los saltos de línea del texto van en líneas data: separadas.
func writeEvent(w *bufio.Writer, event, data string) {
	if event != "" {
		fmt.Fprintf(w, "event: %s\n", event)
	}
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(w, "data: %s\n", line)
	}
	w.WriteString("\n")
}
