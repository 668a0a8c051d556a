package billing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/DE-labtory/iLogger"
)

// Tracer records committed ledger mutations.
type Tracer interface {
	Log(keyvals ...string)
	Trace()
}

type nopTracer struct{}

func (nopTracer) Log(keyvals ...string) {}
func (nopTracer) Trace()                {}

// MemCacheTracer buffers one logfmt line per Log call until Trace dumps them.
type MemCacheTracer struct {
	lock      sync.RWMutex
	traceList []string
}

func NewMemCacheTracer() *MemCacheTracer {
	return &MemCacheTracer{
		lock:      sync.RWMutex{},
		traceList: make([]string, 0),
	}
}

func (t *MemCacheTracer) Log(keyvals ...string) {
	if len(keyvals) == 0 {
		return
	}
	if len(keyvals)%2 == 1 {
		keyvals = append(keyvals, "")
	}

	kvs := make([]string, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		kvs = append(kvs, fmt.Sprintf("%s=%s", keyvals[i], keyvals[i+1]))
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	t.traceList = append(t.traceList, strings.Join(kvs, " "))
}

// Traces returns a copy of buffered lines, oldest first.
func (t *MemCacheTracer) Traces() []string {
	t.lock.RLock()
	defer t.lock.RUnlock()

	traces := make([]string, len(t.traceList))
	copy(traces, t.traceList)
	return traces
}

func (t *MemCacheTracer) Trace() {
	t.lock.RLock()
	defer t.lock.RUnlock()

	for _, trace := range t.traceList {
		iLogger.Info(nil, trace)
	}
}
