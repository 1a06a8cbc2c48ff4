package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/logging"
	"github.com/gustavoarielrecha-beep/AJC-POC/internal/snapshot"
)

// Models the assistant can be pointed at.
const (
	ModelFlash = "gemini-2.5-flash"
	ModelPro   = "gemini-3-pro-preview"
)

// AvailableModels lists the selectable models with display names.
func AvailableModels() []ModelOption {
	return []ModelOption{
		{ID: ModelFlash, Name: "Gemini 2.5 Flash"},
		{ID: ModelPro, Name: "Gemini 3.0 Pro"},
	}
}

// ModelOption pairs a model identifier with its display name.
type ModelOption struct {
	ID   string
	Name string
}

// Greeting is the first assistant message shown when the panel opens.
const Greeting = "Hello! I am AJC-Bot. I have access to the live logistics database. How can I assist you with stock levels or shipment tracking today?"

// Fallback replaces the reply when the generative call fails.
const Fallback = "I'm having trouble connecting to the AJC knowledge base right now. Please try again later."

// Message is one turn of the conversation.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Generator is the generative-language collaborator: one call taking a
// model id, the conversation history and a system instruction, returning
// the completion text.
type Generator interface {
	GenerateText(ctx context.Context, model string, history []Message, system string) (string, error)
}

// GenAIGenerator implements Generator against the Gemini API.
type GenAIGenerator struct {
	client *genai.Client
}

// NewGenAIGenerator creates a Gemini-backed generator.
func NewGenAIGenerator(ctx context.Context, apiKey string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generative API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIGenerator{client: client}, nil
}

// GenerateText implements Generator.
func (g *GenAIGenerator) GenerateText(ctx context.Context, model string, history []Message, system string) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "I apologize, I could not generate a response.", nil
	}
	return text, nil
}

// Assistant holds the conversation and assembles the per-message context.
// Send runs off the UI goroutine, so history and model are mutex-guarded.
type Assistant struct {
	gen         Generator
	data        *snapshot.Store
	transcripts *TranscriptStore // optional
	sessionID   string

	mu      sync.Mutex
	model   string
	history []Message
	now     func() time.Time
}

// transcriptSeedLimit caps how many persisted turns are reloaded at startup.
const transcriptSeedLimit = 100

// NewAssistant creates an assistant reading live data from the snapshot
// store. transcripts may be nil to disable persistence; when present, the
// session's persisted turns are reloaded so the conversation continues
// across portal restarts.
func NewAssistant(gen Generator, data *snapshot.Store, transcripts *TranscriptStore, sessionID string) *Assistant {
	a := &Assistant{
		gen:         gen,
		data:        data,
		transcripts: transcripts,
		sessionID:   sessionID,
		model:       ModelFlash,
		history:     []Message{{Role: "model", Text: Greeting}},
		now:         time.Now,
	}
	if transcripts != nil {
		prior, err := transcripts.Recent(sessionID, transcriptSeedLimit)
		if err != nil {
			logging.Get(logging.CategoryBot).Warn("transcript load failed", zap.Error(err))
		} else {
			a.history = append(a.history, prior...)
		}
	}
	return a
}

// History returns the conversation so far, greeting included.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Model returns the currently selected model id.
func (a *Assistant) Model() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.model
}

// SetModel selects the model for subsequent calls.
func (a *Assistant) SetModel(model string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.model = model
}

// Send submits a user message and returns the assistant's reply. The full
// prior conversation plus the freshly serialized snapshot travels with
// every call, so the context grows without bound as data and history grow.
// On any call failure the reply is the fixed fallback text.
func (a *Assistant) Send(ctx context.Context, userText string) string {
	log := logging.Get(logging.CategoryBot)

	a.append(Message{Role: "user", Text: userText})

	if a.gen == nil {
		reply := Fallback
		a.append(Message{Role: "model", Text: reply})
		return reply
	}

	report := ContextReport(a.data.Products(), a.data.Shipments(), a.now())
	system := SystemInstruction(report)
	model := a.Model()
	history := a.History()

	reply, err := a.gen.GenerateText(ctx, model, history, system)
	if err != nil {
		log.Error("generative call failed", zap.String("model", model), zap.Error(err))
		reply = Fallback
	}

	a.append(Message{Role: "model", Text: reply})
	return reply
}

func (a *Assistant) append(m Message) {
	a.mu.Lock()
	a.history = append(a.history, m)
	a.mu.Unlock()
	if a.transcripts != nil {
		if err := a.transcripts.Append(a.sessionID, m.Role, m.Text); err != nil {
			logging.Get(logging.CategoryBot).Warn("transcript append failed", zap.Error(err))
		}
	}
}
