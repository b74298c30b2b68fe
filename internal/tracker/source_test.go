package tracker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSource_ParsesJSONLines(t *testing.T) {
	// Подготовка
	input := strings.Join([]string{
		`{"latitude": 55.75, "longitude": 37.61, "accuracy": 12.5}`,
		`это не json`,
		`{"latitude": 55.76, "longitude": 37.62}`,
	}, "\n")
	source := NewStreamSource(strings.NewReader(input))

	// Действие
	fixes, _, err := source.Watch(context.Background(), WatchOptions{})
	require.NoError(t, err)

	var got []Fix
	for fix := range fixes {
		got = append(got, fix)
	}

	// Проверки: мусорная строка молча пропущена
	require.Len(t, got, 2)
	assert.Equal(t, 55.75, got[0].Coordinate.Latitude)
	assert.Equal(t, 37.61, got[0].Coordinate.Longitude)
	assert.Equal(t, 12.5, got[0].Accuracy)
	assert.Equal(t, 55.76, got[1].Coordinate.Latitude)
}

func TestStreamSource_SingleWatcherGuard(t *testing.T) {
	// Подготовка: поток без EOF, наблюдение остается активным
	pr := strings.NewReader(`{"latitude": 1, "longitude": 2}` + "\n")
	source := NewStreamSource(pr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixes, _, err := source.Watch(ctx, WatchOptions{})
	require.NoError(t, err)

	// Действие: повторная подписка при активном наблюдении
	_, _, err = source.Watch(ctx, WatchOptions{})

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "already being watched")

	// Дочитываем поток, чтобы горутины завершились
	for range fixes {
	}
}

func TestStreamSource_ReplaysCachedFix(t *testing.T) {
	// Подготовка: первое наблюдение прочитывает и кэширует измерение
	source := NewStreamSource(strings.NewReader(`{"latitude": 55.75, "longitude": 37.61}` + "\n"))

	fixes, _, err := source.Watch(context.Background(), WatchOptions{})
	require.NoError(t, err)
	for range fixes {
	}

	// Действие: повторное наблюдение над пустым потоком
	source.r = strings.NewReader("")
	fixes, _, err = source.Watch(context.Background(), WatchOptions{MaximumAge: time.Minute})
	require.NoError(t, err)

	var got []Fix
	for fix := range fixes {
		got = append(got, fix)
	}

	// Проверки: кэшированное измерение отдано немедленно
	require.Len(t, got, 1)
	assert.Equal(t, 55.75, got[0].Coordinate.Latitude)
}

func TestStreamSource_IgnoresStaleCachedFix(t *testing.T) {
	// Подготовка
	source := NewStreamSource(strings.NewReader(`{"latitude": 55.75, "longitude": 37.61}` + "\n"))

	fixes, _, err := source.Watch(context.Background(), WatchOptions{})
	require.NoError(t, err)
	for range fixes {
	}

	// Искусственно состариваем кэш за пределы MaximumAge
	source.mu.Lock()
	source.lastFix.Timestamp = time.Now().Add(-time.Hour)
	source.mu.Unlock()

	// Действие
	source.r = strings.NewReader("")
	fixes, _, err = source.Watch(context.Background(), WatchOptions{MaximumAge: time.Minute})
	require.NoError(t, err)

	var got []Fix
	for fix := range fixes {
		got = append(got, fix)
	}

	// Проверки
	assert.Empty(t, got)
}

func TestStreamSource_TimeoutEmitsError(t *testing.T) {
	// Подготовка: поток, который никогда не присылает измерений
	pr, _ := newBlockingReader()
	source := NewStreamSource(pr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Действие
	_, errs, err := source.Watch(ctx, WatchOptions{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	// Проверки
	select {
	case watchErr := <-errs:
		assert.ErrorIs(t, watchErr, ErrFixTimeout)
	case <-time.After(time.Second):
		t.Fatal("timeout error was not emitted")
	}
}

// newBlockingReader возвращает reader, который блокируется до отмены,
// имитируя молчащее устройство.
func newBlockingReader() (*blockingReader, chan struct{}) {
	done := make(chan struct{})
	return &blockingReader{done: done}, done
}

type blockingReader struct {
	done chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.done
	return 0, nil
}
