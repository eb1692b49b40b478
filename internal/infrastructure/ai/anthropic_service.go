package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
	anthropicMaxTokens   = 1024
)

// AnthropicService adaptador que implementa LLMService sobre la API REST de Anthropic
// con stream=true. Usa net/http; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		url:    anthropicMessagesURL,
		// Sin Timeout global: el stream puede durar más; el corte lo pone el context.
		httpClient: &http.Client{Transport: &http.Transport{ResponseHeaderTimeout: 25 * time.Second}},
	}
}

// WithURL cambia el endpoint (proxy o tests).
func (s *AnthropicService) WithURL(url string) *AnthropicService {
	s.url = url
	return s
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Stream    bool               `json:"stream"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicErrorResponse struct {
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// anthropicEvent cubre los eventos del stream que interesan: content_block_delta y error.
type anthropicEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// StreamAnswer envía la pregunta a Claude y entrega cada fragmento de texto a onChunk
// en cuanto llega. Si onChunk devuelve error se corta el stream y se propaga.
func (s *AnthropicService) StreamAnswer(ctx context.Context, system, prompt string, onChunk func(string) error) error {
	if s.apiKey == "" {
		return fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     s.model,
		MaxTokens: anthropicMaxTokens,
		System:    system,
		Stream:    true,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "text/event-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		var errResp anthropicErrorResponse
		if jsonErr := json.Unmarshal(raw, &errResp); jsonErr == nil && errResp.Error != nil {
			return fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(raw))
	}

	return readEvents(resp.Body, onChunk)
}

// readEvents recorre las líneas "data: {...}" del stream SSE.
func readEvents(r io.Reader, onChunk func(string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}
		var ev anthropicEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return fmt.Errorf("AI: evento inválido: %w", err)
		}
		switch ev.Type {
		case "content_block_delta":
			if ev.Delta.Text == "" {
				continue
			}
			if err := onChunk(ev.Delta.Text); err != nil {
				return err
			}
		case "error":
			if ev.Error != nil {
				return fmt.Errorf("AI: Anthropic error (%s): %s", ev.Error.Type, ev.Error.Message)
			}
			return fmt.Errorf("AI: error en stream")
		case "message_stop":
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("AI: leer stream: %w", err)
	}
	return nil
}
