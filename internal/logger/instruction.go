package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

// InstructionInfo identifies a ledger instruction for log correlation
type InstructionInfo struct {
	Instruction string
	Subject     string
	Actor       string
	RequestID   string
}

// WithRequestID returns a context carrying the request ID of an API call
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored by WithRequestID, empty when absent
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromInstruction returns a logger annotated with the instruction being executed.
// Empty fields are omitted. The request ID falls back to the one carried by ctx.
func FromInstruction(ctx context.Context, info InstructionInfo) *zap.Logger {
	l := FromContext(ctx)
	if info.RequestID == "" {
		info.RequestID = RequestIDFromContext(ctx)
	}

	fields := make([]zap.Field, 0, 4)
	if info.Instruction != "" {
		fields = append(fields, zap.String("instruction", info.Instruction))
	}
	if info.Subject != "" {
		fields = append(fields, zap.String("subject", info.Subject))
	}
	if info.Actor != "" {
		fields = append(fields, zap.String("actor", info.Actor))
	}
	if info.RequestID != "" {
		fields = append(fields, zap.String("request_id", info.RequestID))
	}
	return l.With(fields...)
}
