package notify

import (
	"sync"

	"github.com/waumini/sadaka/internal/pkg/logger"
)

// Notifier is the fire-and-forget channel for telling the operator what
// happened, the console equivalent of a toast. Callers never wait on it and
// never see an error from it.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier surfaces notifications through the application logger.
type LogNotifier struct{}

// NewLogNotifier creates a logger-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(msg string) {
	logger.Info("notification", logger.String("kind", "success"), logger.String("message", msg))
}

func (n *LogNotifier) Error(msg string) {
	logger.Warn("notification", logger.String("kind", "error"), logger.String("message", msg))
}

// Recorder collects notifications for inspection in tests.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

// Successes returns the success notifications recorded so far.
func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

// Errors returns the error notifications recorded so far.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
