package goroutine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
	done chan struct{}
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	l.msgs = append(l.msgs, fmt.Sprintf(format, args...))
	l.mu.Unlock()
	close(l.done)
}

func TestSafeGoWithContext_RecoversPanic(t *testing.T) {
	rec := &recordingLogger{done: make(chan struct{})}
	rh := NewRecoveryHandler(rec)

	rh.SafeGoWithContext(context.Background(), func(ctx context.Context) {
		panic("janitor exploded")
	})

	select {
	case <-rec.done:
	case <-time.After(time.Second):
		t.Fatal("panic не был залогирован")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "janitor exploded")
}
