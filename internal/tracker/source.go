package tracker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/travlrhub/proximity_service/internal/models"
)

var (
	// ErrPermissionDenied - устройство отказало в доступе к геолокации.
	// Отличается от прочих сбоев: трекер останавливается, пока пользователь
	// не поменяет разрешение.
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrFixTimeout - очередное измерение не пришло за отведенное время
	ErrFixTimeout = errors.New("timed out waiting for location fix")
)

// Fix - одно измерение координат устройства
type Fix struct {
	Coordinate models.Coordinate `json:"coordinate"`
	Accuracy   float64           `json:"accuracy,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// WatchOptions - настройки непрерывного наблюдения за источником
type WatchOptions struct {
	HighAccuracy bool
	Timeout      time.Duration // максимум ожидания очередного измерения
	MaximumAge   time.Duration // допустимый возраст кэшированного измерения
}

// Source - источник непрерывных измерений координат устройства.
// Watch возвращает канал измерений и канал ошибок наблюдения; оба
// закрываются/замолкают при отмене контекста.
type Source interface {
	Watch(ctx context.Context, opts WatchOptions) (<-chan Fix, <-chan error, error)
}

// streamFix - формат строки входного потока (по одному JSON объекту на строку)
type streamFix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// StreamSource читает измерения из потока JSON-строк (stdin, файл, пайп от
// gpsd-подобного демона). Последнее измерение кэшируется: при перезапуске
// наблюдения свежий кэш (не старше MaximumAge) отдается сразу.
type StreamSource struct {
	r io.Reader

	mu       sync.Mutex
	lastFix  *Fix
	watching bool
}

func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: r}
}

// Watch запускает чтение потока. Повторный вызов при активном наблюдении
// возвращает ошибку: на один источник допускается одна активная подписка.
func (s *StreamSource) Watch(ctx context.Context, opts WatchOptions) (<-chan Fix, <-chan error, error) {
	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return nil, nil, errors.New("stream source is already being watched")
	}
	s.watching = true
	cached := s.cachedFixLocked(opts.MaximumAge)
	s.mu.Unlock()

	fixes := make(chan Fix)
	errs := make(chan error, 1)
	lines := make(chan Fix)

	// Чтение и разбор строк источника
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.r)
		for scanner.Scan() {
			var raw streamFix
			if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
				// Мусорная строка не роняет наблюдение
				continue
			}
			fix := Fix{
				Coordinate: models.Coordinate{Latitude: raw.Latitude, Longitude: raw.Longitude},
				Accuracy:   raw.Accuracy,
				Timestamp:  time.Now(),
			}
			select {
			case lines <- fix:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case errs <- fmt.Errorf("failed to read fix stream: %w", err):
			default:
			}
		}
	}()

	go func() {
		defer close(fixes)
		defer func() {
			s.mu.Lock()
			s.watching = false
			s.mu.Unlock()
		}()

		// Кэшированное измерение в пределах MaximumAge отдаем немедленно
		if cached != nil {
			select {
			case fixes <- *cached:
			case <-ctx.Done():
				return
			}
		}

		var timeoutC <-chan time.Time
		var timer *time.Timer
		if opts.Timeout > 0 {
			timer = time.NewTimer(opts.Timeout)
			defer timer.Stop()
			timeoutC = timer.C
		}

		for {
			select {
			case <-ctx.Done():
				return
			case fix, ok := <-lines:
				if !ok {
					return
				}
				s.storeFix(fix)
				select {
				case fixes <- fix:
				case <-ctx.Done():
					return
				}
				if timer != nil {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(opts.Timeout)
				}
			case <-timeoutC:
				select {
				case errs <- ErrFixTimeout:
				default:
				}
				timer.Reset(opts.Timeout)
			}
		}
	}()

	return fixes, errs, nil
}

func (s *StreamSource) storeFix(fix Fix) {
	s.mu.Lock()
	s.lastFix = &fix
	s.mu.Unlock()
}

func (s *StreamSource) cachedFixLocked(maxAge time.Duration) *Fix {
	if s.lastFix == nil || maxAge <= 0 {
		return nil
	}
	if time.Since(s.lastFix.Timestamp) > maxAge {
		return nil
	}
	fix := *s.lastFix
	return &fix
}
