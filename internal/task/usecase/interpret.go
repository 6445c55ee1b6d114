package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskdates/internal/task"
	"taskdates/pkg/calendar"
	"taskdates/pkg/recurrence"
)

// Interpret resolves a natural-language date phrase into candidates.
// A zero anchor defaults to today; an unrecognized phrase yields an
// empty candidate list, not an error.
func (uc *implUseCase) Interpret(ctx context.Context, input task.InterpretInput) (task.InterpretOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.InterpretOutput{}, task.ErrEmptyText
	}

	anchor := uc.anchorOrToday(input.Anchor)

	candidates, err := uc.parser.Interpret(input.Text, anchor)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Interpret parser: %v", err)
		return task.InterpretOutput{}, err
	}

	return task.InterpretOutput{
		Candidates: candidates,
		Anchor:     anchor,
	}, nil
}

// NextOccurrence computes the next date a recurrence rule fires after
// the anchor. A zero anchor defaults to today.
func (uc *implUseCase) NextOccurrence(ctx context.Context, input task.NextOccurrenceInput) (task.NextOccurrenceOutput, error) {
	if err := input.Rule.Validate(); err != nil {
		return task.NextOccurrenceOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidRule, err)
	}

	anchor := uc.anchorOrToday(input.Anchor)

	next, ok := recurrence.NextOccurrence(input.Rule, anchor)
	if !ok {
		return task.NextOccurrenceOutput{None: true}, nil
	}
	return task.NextOccurrenceOutput{Next: next}, nil
}

// anchorOrToday normalizes the anchor to midnight, substituting the
// current date for a zero value.
func (uc *implUseCase) anchorOrToday(anchor time.Time) time.Time {
	if anchor.IsZero() {
		anchor = uc.now().UTC()
	}
	return calendar.StartOfDay(anchor)
}
