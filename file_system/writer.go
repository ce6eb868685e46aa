package file_system

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Writer saves snapshots in the background so a slow or failing disk never
// holds up a request. Only the newest pending snapshot is kept; older ones
// that were not written yet are dropped.
type Writer struct {
	store   Store
	pending chan []byte
	quit    chan struct{}
	wg      sync.WaitGroup
	saveMu  sync.Mutex
	once    sync.Once
}

func NewWriter(store Store) *Writer {
	return &Writer{
		store:   store,
		pending: make(chan []byte, 1),
		quit:    make(chan struct{}),
	}
}

func (w *Writer) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.quit:
				return
			case data := <-w.pending:
				_ = w.save(data)
			}
		}
	}()
}

// Submit queues data for saving and returns immediately.
func (w *Writer) Submit(data []byte) {
	for {
		select {
		case w.pending <- data:
			return
		default:
		}

		select {
		case <-w.pending:
		default:
		}
	}
}

// Flush saves data synchronously.
func (w *Writer) Flush(data []byte) error {
	return w.save(data)
}

// Stop ends the background loop. Anything still pending is discarded; callers
// Flush the current snapshot afterwards.
func (w *Writer) Stop() {
	w.once.Do(func() {
		close(w.quit)
	})
	w.wg.Wait()
}

func (w *Writer) save(data []byte) error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	if err := w.store.Save(data); err != nil {
		persistFailures.Inc()
		log.Error().Err(err).Msg("Failed to save tree")
		return err
	}

	persistedBytes.Set(float64(len(data)))
	log.Debug().Int("bytes", len(data)).Msg("saved tree")
	return nil
}
