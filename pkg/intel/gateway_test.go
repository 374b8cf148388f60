package intel

import (
	"context"
	"errors"
	"testing"

	"careeriq-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

// scriptedProvider replays canned responses, one per call.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
	history   []string
	systems   []string
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	idx := p.calls
	p.calls++
	for _, m := range history {
		switch m.Role {
		case "user":
			p.history = append(p.history, m.Content)
		case "system":
			p.systems = append(p.systems, m.Content)
		}
	}
	if idx < len(p.errs) && p.errs[idx] != nil {
		return "", p.errs[idx]
	}
	if idx < len(p.responses) {
		return p.responses[idx], nil
	}
	return p.responses[len(p.responses)-1], nil
}

func (p *scriptedProvider) Model() string { return "test-model" }

type recordingSink struct {
	records []CallRecord
}

func (s *recordingSink) Record(_ context.Context, rec CallRecord) {
	s.records = append(s.records, rec)
}

func TestInvokeStripsFencesAndDecodes(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"```json\n{\"is_valid\": true}\n```"}}
	sink := &recordingSink{}
	g := NewGateway(provider, sink, 0)

	payload, err := g.Invoke(context.Background(), Call{Name: "validation", SessionID: "s1", UserContent: "RESUME TEXT"})
	assert.NoError(t, err)
	assert.Equal(t, true, payload["is_valid"])

	assert.Len(t, sink.records, 1)
	assert.Equal(t, "ok", sink.records[0].Status)
	assert.Equal(t, "test-model", sink.records[0].Model)
	assert.Equal(t, len("RESUME TEXT"), sink.records[0].InputLength)
}

func TestInvokeAppendsJSONCue(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"{}"}}
	g := NewGateway(provider, nil, 0)

	_, err := g.Invoke(context.Background(), Call{Name: "extraction", SystemPrompt: "MASTER", UserContent: "RESUME: x"})
	assert.NoError(t, err)

	// both sides of the conversation carry the cue
	assert.Contains(t, provider.history[0], "Respond with valid JSON only.")
	assert.Contains(t, provider.systems[0], "MASTER")
	assert.Contains(t, provider.systems[0], "You must respond with valid JSON format only.")
}

func TestInvokeTransportError(t *testing.T) {
	provider := &scriptedProvider{errs: []error{errors.New("connection refused")}}
	sink := &recordingSink{}
	g := NewGateway(provider, sink, 0)

	_, err := g.Invoke(context.Background(), Call{Name: "diagnosis", SessionID: "s1"})
	var callErr *CallError
	assert.True(t, errors.As(err, &callErr))
	assert.Equal(t, "diagnosis", callErr.CallName)

	assert.Len(t, sink.records, 1)
	assert.Equal(t, "error", sink.records[0].Status)
}

func TestInvokeDecodeError(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"this is not json"}}
	sink := &recordingSink{}
	g := NewGateway(provider, sink, 0)

	_, err := g.Invoke(context.Background(), Call{Name: "risk"})
	var callErr *CallError
	assert.True(t, errors.As(err, &callErr))
	assert.Equal(t, "decode_error", sink.records[0].Status)
	assert.Equal(t, "this is not json", sink.records[0].RawResponse)
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripJSONFences(tt.in))
	}
}
