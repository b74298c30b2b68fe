package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/models"
)

// RefreshFunc вызывается поллером для обновления списка попутчиков
// вокруг опорной точки
type RefreshFunc func(ctx context.Context, reference models.Coordinate)

// Poller периодически перечитывает список попутчиков: один раз сразу,
// как только появилась опорная точка, и далее с фиксированным интервалом.
type Poller struct {
	interval time.Duration
	refresh  RefreshFunc
	logger   *logrus.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewPoller(interval time.Duration, refresh RefreshFunc, logger *logrus.Logger) *Poller {
	return &Poller{
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

// SetReference перевооружает опрос вокруг новой опорной точки.
// Предыдущий интервал всегда отменяется до запуска нового, чтобы
// опросы не накапливались.
func (p *Poller) SetReference(ctx context.Context, reference models.Coordinate) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	go p.loop(pollCtx, reference)
}

// Stop отменяет текущий опрос
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()
}

func (p *Poller) loop(ctx context.Context, reference models.Coordinate) {
	// Первое обновление сразу после появления точки
	p.refresh(ctx, reference)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.WithField("component", "poller").Debug("Nearby poll loop stopped")
			return
		case <-ticker.C:
			p.refresh(ctx, reference)
		}
	}
}
