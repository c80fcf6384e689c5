package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/danoh/steptutor/internal/docstore"
)

// LoggingProvider records every request and outcome as an LLM event.
// Event persistence is best effort and never fails the request.
type LoggingProvider struct {
	inner  Provider
	events docstore.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events docstore.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := l.buildEvent(ctx, req, resp, err, time.Since(start))
	if logErr := l.events.AppendLLMEvent(ctx, data); logErr != nil {
		slog.Warn("failed to record llm event", "error", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) buildEvent(ctx context.Context, req Request, resp *Response, err error, latency time.Duration) docstore.LLMEventData {
	data := docstore.LLMEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	return data
}

// renderRequest flattens a request into the readable transcript form
// stored in the event log.
func renderRequest(req Request) string {
	var b strings.Builder
	writeSection := func(label, body string) {
		b.WriteString("[")
		b.WriteString(label)
		b.WriteString("]\n")
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if req.System != "" {
		writeSection("system", req.System)
	}
	for _, m := range req.Messages {
		writeSection(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		b.WriteString("[schema: ")
		b.WriteString(req.Schema.Name)
		b.WriteString("]\n")
	}
	return b.String()
}
