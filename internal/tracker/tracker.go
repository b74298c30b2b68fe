package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/travlrhub/proximity_service/internal/models"
)

// Mode - режим трекера. Фиксируется при создании: смена настройки шеринга
// означает остановку трекера и запуск нового с другим режимом, трекер
// никогда не читает изменяемое глобальное состояние.
type Mode int

const (
	ModeNotSharing Mode = iota
	ModeSharing
)

// Publisher - удаленная запись координаты (HTTP API сервиса или репозиторий)
type Publisher interface {
	PublishFix(ctx context.Context, userID string, coord models.Coordinate) error
}

// State - локальное наблюдаемое состояние трекера. Координата очищается
// при любой ошибке наблюдения.
type State struct {
	Coordinate *models.Coordinate
	Err        error
	Loading    bool
}

// Tracker непрерывно наблюдает за источником координат устройства и в режиме
// ModeSharing публикует каждое измерение в сервис. Локальное состояние
// обновляется синхронно, удаленная запись - fire-and-forget: ее сбой
// логируется и не откатывает локальное состояние.
type Tracker struct {
	userID    string
	mode      Mode
	source    Source
	publisher Publisher
	logger    *logrus.Logger
	opts      WatchOptions

	mu    sync.RWMutex
	state State

	wg sync.WaitGroup
}

func New(userID string, mode Mode, source Source, publisher Publisher, logger *logrus.Logger, opts WatchOptions) *Tracker {
	return &Tracker{
		userID:    userID,
		mode:      mode,
		source:    source,
		publisher: publisher,
		logger:    logger,
		opts:      opts,
		state:     State{Loading: true},
	}
}

// State возвращает снимок локального состояния
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Run блокируется до отмены контекста, исчерпания источника или отказа в
// доступе к геолокации. Отказ в доступе возвращается как ErrPermissionDenied:
// наблюдение не возобновляется, пока пользователь не поменяет разрешение.
func (t *Tracker) Run(ctx context.Context) error {
	log := t.logger.WithFields(logrus.Fields{
		"component": "tracker",
		"user_id":   t.userID,
		"sharing":   t.mode == ModeSharing,
	})
	log.Info("Starting location tracking")

	fixes, errs, err := t.source.Watch(ctx, t.opts)
	if err != nil {
		t.setState(State{Err: fmt.Errorf("error acquiring location: %w", err)})
		return fmt.Errorf("tracker: failed to start watching: %w", err)
	}

	defer t.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			log.Info("Location tracking stopped")
			return ctx.Err()
		case fix, ok := <-fixes:
			if !ok {
				log.Info("Fix source exhausted, stopping tracking")
				return nil
			}
			t.onFix(ctx, log, fix)
		case watchErr := <-errs:
			if halted := t.onWatchError(log, watchErr); halted {
				return ErrPermissionDenied
			}
		}
	}
}

// onFix обновляет локальное состояние и, только в режиме шеринга,
// асинхронно публикует измерение
func (t *Tracker) onFix(ctx context.Context, log *logrus.Entry, fix Fix) {
	coord := fix.Coordinate
	t.setState(State{Coordinate: &coord})

	if t.mode != ModeSharing || t.publisher == nil {
		return
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.publisher.PublishFix(ctx, t.userID, coord); err != nil {
			// Локальное состояние - источник истины для потребителя,
			// сбой удаленной записи только логируется
			log.WithError(err).Error("Failed to publish location fix")
		}
	}()
}

// onWatchError классифицирует ошибку наблюдения. Возвращает true, если
// трекер должен остановиться (отказ в доступе).
func (t *Tracker) onWatchError(log *logrus.Entry, err error) bool {
	if errors.Is(err, ErrPermissionDenied) {
		log.WithError(err).Warn("Location permission denied, halting tracking")
		t.setState(State{Err: ErrPermissionDenied})
		return true
	}

	log.WithError(err).Warn("Transient location acquisition error")
	t.setState(State{Err: fmt.Errorf("error acquiring location: %w", err)})
	return false
}

func (t *Tracker) setState(state State) {
	t.mu.Lock()
	t.state = state
	t.mu.Unlock()
}
