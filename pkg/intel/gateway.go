package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careeriq-be/pkg/llm"
)

// Call is a single model invocation. Name identifies the pipeline step in
// logs and the audit trail; SystemPrompt carries the master prompt and
// UserContent the per-session payload.
type Call struct {
	Name          string
	SessionID     string
	SystemPrompt  string
	UserContent   string
	Temperature   float64
	PromptVersion string
}

// CallError marks a transport or decode failure for a named call. Callers
// use it to tell gateway failures apart from audit rejections.
type CallError struct {
	CallName string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("llm call %q failed: %v", e.CallName, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// CallRecord is the append-only audit entry written for every invocation,
// successful or not.
type CallRecord struct {
	SessionID     string
	CallName      string
	Model         string
	PromptVersion string
	Status        string
	InputLength   int
	DurationMs    int64
	RawResponse   string
	ErrorDetail   string
	CreatedAt     time.Time
}

// CallLog receives one record per invocation. Sink failures must not affect
// the pipeline, so implementations swallow their own errors.
type CallLog interface {
	Record(ctx context.Context, rec CallRecord)
}

// NopCallLog discards records. Used in tests.
type NopCallLog struct{}

func (NopCallLog) Record(context.Context, CallRecord) {}

// Gateway is the single choke point between the pipeline and the model
// provider. Every call gets the JSON cue, a per-call timeout, fence
// stripping, and an audit record.
type Gateway struct {
	provider    llm.Provider
	sink        CallLog
	callTimeout time.Duration
}

func NewGateway(provider llm.Provider, sink CallLog, callTimeout time.Duration) *Gateway {
	if sink == nil {
		sink = NopCallLog{}
	}
	return &Gateway{provider: provider, sink: sink, callTimeout: callTimeout}
}

// Invoke runs one model call and decodes the reply into a generic JSON
// object. Any transport, timeout, or decode failure comes back as
// *CallError.
func (g *Gateway) Invoke(ctx context.Context, call Call) (map[string]interface{}, error) {
	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}

	history := []llm.Message{
		{Role: "system", Content: call.SystemPrompt + "\n\nYou must respond with valid JSON format only."},
		{Role: "user", Content: call.UserContent + "\n\nRespond with valid JSON only."},
	}

	opts := []llm.Option{llm.WithJSONOutput()}
	if call.Temperature > 0 {
		opts = append(opts, llm.WithTemperature(call.Temperature))
	}

	start := time.Now()
	raw, err := g.provider.Chat(ctx, history, opts...)
	elapsed := time.Since(start)

	rec := CallRecord{
		SessionID:     call.SessionID,
		CallName:      call.Name,
		Model:         g.provider.Model(),
		PromptVersion: call.PromptVersion,
		InputLength:   len(call.UserContent),
		DurationMs:    elapsed.Milliseconds(),
		CreatedAt:     time.Now(),
	}

	if err != nil {
		rec.Status = "error"
		rec.ErrorDetail = err.Error()
		g.sink.Record(ctx, rec)
		return nil, &CallError{CallName: call.Name, Err: err}
	}

	cleaned := StripJSONFences(raw)

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		rec.Status = "decode_error"
		rec.RawResponse = raw
		rec.ErrorDetail = err.Error()
		g.sink.Record(ctx, rec)
		return nil, &CallError{CallName: call.Name, Err: fmt.Errorf("decode model json: %w", err)}
	}

	rec.Status = "ok"
	rec.RawResponse = cleaned
	g.sink.Record(ctx, rec)
	return payload, nil
}

// StripJSONFences removes a surrounding markdown code fence if the model
// wrapped its JSON in one.
func StripJSONFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	}
	return strings.TrimSpace(out)
}
