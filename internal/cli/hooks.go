package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/observability"
)

// logHooks reports committed board changes to the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) observability.BoardHooks {
	return logHooks{logger: l}
}

func (h logHooks) OnBoxCreated(ev observability.BoxEvent) {
	h.logger.Debug("box created", "board", ev.BoardID, "box", ev.BoxID, "container", ev.Container, "rect", ev.Rect)
}

func (h logHooks) OnBoxResized(ev observability.BoxEvent) {
	kv := []any{"board", ev.BoardID, "box", ev.BoxID, "from", ev.Previous, "to", ev.Rect}
	if ev.Partner != "" {
		kv = append(kv, "partner", ev.Partner)
	}
	h.logger.Debug("box resized", kv...)
}

func (h logHooks) OnBoxMoved(ev observability.BoxEvent) {
	h.logger.Debug("box moved", "board", ev.BoardID, "box", ev.BoxID, "from", ev.Previous, "to", ev.Rect)
}

func (h logHooks) OnBoxTransferred(ev observability.BoxEvent) {
	h.logger.Debug("box transferred", "board", ev.BoardID, "box", ev.BoxID, "from", ev.From, "to", ev.Container)
}

func (h logHooks) OnBoxDestroyed(ev observability.BoxEvent) {
	h.logger.Debug("box destroyed", "board", ev.BoardID, "box", ev.BoxID)
}

// storeLogHooks reports store round trips to the CLI logger.
type storeLogHooks struct {
	logger *log.Logger
}

func (h storeLogHooks) OnLoad(_ context.Context, backend string, hit bool, d time.Duration) {
	h.logger.Debug("store load", "backend", backend, "hit", hit, "took", d)
}

func (h storeLogHooks) OnSave(_ context.Context, backend string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("store save failed", "backend", backend, "err", err)
		return
	}
	h.logger.Debug("store save", "backend", backend, "boxes", size, "took", d)
}

func (h storeLogHooks) OnDelete(_ context.Context, backend string, err error) {
	if err != nil {
		h.logger.Debug("store delete failed", "backend", backend, "err", err)
		return
	}
	h.logger.Debug("store delete", "backend", backend)
}
