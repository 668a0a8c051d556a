package billing

import "testing"

func TestMemCacheTracer_Log(t *testing.T) {
	tracer := NewMemCacheTracer()

	tracer.Log()
	tracer.Log("op", "emit", "amount", "100")
	tracer.Log("op", "transfer", "dangling")

	traces := tracer.Traces()
	if len(traces) != 2 {
		t.Fatalf("expected %d traces, but got %d", 2, len(traces))
	}
	if traces[0] != "op=emit amount=100" {
		t.Fatalf("expected trace is %q, but got %q", "op=emit amount=100", traces[0])
	}
	if traces[1] != "op=transfer dangling=" {
		t.Fatalf("expected trace is %q, but got %q", "op=transfer dangling=", traces[1])
	}

	tracer.Trace()
}

func TestLedger_tracesMutations(t *testing.T) {
	tracer := NewMemCacheTracer()
	l, err := New(defaultSeed(), WithTracer(tracer))
	if err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	if _, err := l.Emit(100); err != nil {
		t.Fatalf("unexpected err: %s", err)
	}
	if _, err := l.Emit(1); err == nil {
		t.Fatalf("expected emission failure")
	}
	if _, err := l.Transfer("boris", "maria", 5); err != nil {
		t.Fatalf("unexpected err: %s", err)
	}

	// failed operations are not traced
	if len(tracer.Traces()) != 2 {
		t.Fatalf("expected %d traces, but got %d", 2, len(tracer.Traces()))
	}
}

func defaultSeed() []Participant {
	return []Participant{
		{Name: "boris", Weight: 5000},
		{Name: "maria", Weight: 1000},
		{Name: "oleg", Weight: 800},
	}
}
