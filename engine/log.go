package engine

import (
	"context"

	"github.com/seekerror/logw"
)

// Logger interface with a NulLogger no-op default, and an alternative
// implementation backed by github.com/seekerror/logw.

// Logger receives iterative-deepening progress notifications.
type Logger interface {
	BeginSearch(ctx context.Context, depth int)
	EndSearch(ctx context.Context, depth int, score int32, nodes uint64, best Move)
}

// NulLogger discards every notification.
type NulLogger struct{}

func (NulLogger) BeginSearch(context.Context, int)                    {}
func (NulLogger) EndSearch(context.Context, int, int32, uint64, Move) {}

// logwLogger logs iterative-deepening progress through logw, the
// structured logger the rest of the pack (herohde-morlock) already uses
// for this exact "depth N, score S, nodes searched" progress line.
type logwLogger struct{}

// NewLogwLogger returns a Logger backed by logw. NewEngine does not
// install it; its default Logger is NulLogger.
func NewLogwLogger() Logger { return logwLogger{} }

func (logwLogger) BeginSearch(ctx context.Context, depth int) {
	logw.Debugf(ctx, "search: beginning depth %v", depth)
}

func (logwLogger) EndSearch(ctx context.Context, depth int, score int32, nodes uint64, best Move) {
	logw.Infof(ctx, "search: depth=%v score=%v nodes=%v best=%v", depth, score, nodes, best)
}
