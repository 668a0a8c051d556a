package mock

import "sync"

type Tracer struct {
	lock  sync.Mutex
	Lines [][]string
}

func (t *Tracer) Log(keyvals ...string) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.Lines = append(t.Lines, keyvals)
}

func (t *Tracer) Trace() {}
