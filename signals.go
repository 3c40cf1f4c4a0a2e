package stencil

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for mask events. User-entered text is never emitted; events carry
// pattern strings and counts only.
var (
	SignalMaskCreated     = capitan.NewSignal("stencil.mask.created", "Mask configuration compiled")
	SignalFormat          = capitan.NewSignal("stencil.format.complete", "Stored value expanded for display")
	SignalNormalize       = capitan.NewSignal("stencil.normalize.complete", "Edited value reconciled")
	SignalPatternComplete = capitan.NewSignal("stencil.pattern.complete", "Every slot filled")
)

// Keys for typed event data.
var (
	KeyPattern     = capitan.NewStringKey("pattern")
	KeySlotCount   = capitan.NewIntKey("slot_count")
	KeyCaretCount  = capitan.NewIntKey("caret_count")
	KeyFilledCount = capitan.NewIntKey("filled_count")
	KeyDuration    = capitan.NewDurationKey("duration")
)

// emitMaskCreated emits an event when a mask is compiled.
func emitMaskCreated(ctx context.Context, pattern string, slots, carets int) {
	capitan.Emit(ctx, SignalMaskCreated,
		KeyPattern.Field(pattern),
		KeySlotCount.Field(slots),
		KeyCaretCount.Field(carets),
	)
}

// emitFormatted emits an event when a stored value has been expanded.
func emitFormatted(ctx context.Context, pattern string, filled, slots int) {
	capitan.Emit(ctx, SignalFormat,
		KeyPattern.Field(pattern),
		KeyFilledCount.Field(filled),
		KeySlotCount.Field(slots),
	)
}

// emitNormalized emits an event when an edit has been reconciled.
func emitNormalized(ctx context.Context, pattern string, filled, slots int, duration time.Duration) {
	capitan.Emit(ctx, SignalNormalize,
		KeyPattern.Field(pattern),
		KeyFilledCount.Field(filled),
		KeySlotCount.Field(slots),
		KeyDuration.Field(duration),
	)
}

// emitPatternComplete emits an event when an edit fills the last open slot.
func emitPatternComplete(ctx context.Context, pattern string, slots int) {
	capitan.Emit(ctx, SignalPatternComplete,
		KeyPattern.Field(pattern),
		KeySlotCount.Field(slots),
	)
}
