package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndCount(t *testing.T) {
	ResetFrame()
	stop := Track("test.op")
	time.Sleep(time.Millisecond)
	stop()
	Count("test.count", 2)
	Count("test.count", 3)

	if Snapshot()["test.op"] <= 0 {
		t.Error("Track recorded no time")
	}
	if got := Counter("test.count"); got != 5 {
		t.Errorf("Counter = %d, want 5", got)
	}
	if s := TopN(3); !strings.HasPrefix(s, "test.op:") {
		t.Errorf("TopN = %q", s)
	}

	ResetFrame()
	if len(Snapshot()) != 0 || Counter("test.count") != 0 {
		t.Error("ResetFrame left data behind")
	}
}

func TestCountersFormat(t *testing.T) {
	ResetFrame()
	defer ResetFrame()

	if s := Counters(); s != "" {
		t.Errorf("Counters on an empty frame = %q", s)
	}
	Count("world.slotAllocs", 2)
	Count("renderer.uploadBytes", 1728)
	Count("world.trees", 0)

	want := "renderer.uploadBytes=1728, world.slotAllocs=2"
	if s := Counters(); s != want {
		t.Errorf("Counters = %q, want %q", s, want)
	}
}
