package history

import (
	"context"
	"log"

	"pomodoro/internal/core/timekeeper"
)

// Record stores every phase record arriving on events until the channel
// closes. Write failures are logged and do not stop the loop.
func (s *Store) Record(ctx context.Context, events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type != timekeeper.EventPhaseEnded || event.Record == nil {
			continue
		}
		if _, err := s.Insert(ctx, *event.Record); err != nil {
			log.Printf("history: %v", err)
		}
	}
}
