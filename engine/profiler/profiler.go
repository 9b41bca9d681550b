//go:build profile

// Package profiler records named scopes into a ring buffer and dumps them
// as a speedscope evented profile. Build with -tags profile to enable it.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// DumpName is the file OpenProfilerGraph writes into the temp directory.
const DumpName = "californium.speedscope.json"

// Init sizes the ring to capacity scope events. Older events are
// overwritten once it fills.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := names.intern(name)
	begin := time.Now().UnixNano()
	ring.push(event{at: begin, frame: id, open: true})
	return func() {
		end := max(time.Now().UnixNano(), begin)
		ring.push(event{at: end, frame: id})
	}
}

// OpenProfilerGraph writes the captured scopes to a speedscope file in
// the temp directory and launches speedscope on it when it is installed.
func OpenProfilerGraph() (string, error) {
	path := filepath.Join(os.TempDir(), DumpName)
	if err := Dump(path); err != nil {
		return "", err
	}
	if bin, err := exec.LookPath("speedscope"); err == nil {
		if err := exec.Command(bin, path).Start(); err != nil {
			return path, fmt.Errorf("launch speedscope: %w", err)
		}
	}
	return path, nil
}

// Dump writes the captured scopes to path.
func Dump(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return errors.New("profiler: no events to dump")
	}
	doc, err := speedscope(evs, names.snapshot())
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ---- ring ----

type event struct {
	at    int64 // unix nanos
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	write atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.evs = make([]event, capacity)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%uint64(len(r.evs))] = e
}

// snapshot returns the retained events in write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	size := uint64(len(r.evs))
	start := uint64(0)
	if n > size {
		start = n - size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%size])
	}
	return out
}

// ---- names ----

type interner struct {
	mu    sync.Mutex
	names []string
	ids   map[string]int
}

var names = interner{ids: map[string]int{}}

func (in *interner) intern(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.ids[name]; ok {
		return id
	}
	id := len(in.names)
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}

func (in *interner) snapshot() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.names...)
}

// ---- speedscope ----

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// speedscope converts raw events into a balanced evented profile. Closes
// that don't match the innermost open scope are dropped (their open was
// overwritten in the ring), and scopes still open at the end are closed
// at the last timestamp.
func speedscope(evs []event, frameNames []string) (*ssFile, error) {
	base := evs[0].at
	last := int64(0)
	var (
		out   = make([]ssEvent, 0, len(evs))
		stack []int
	)
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
		}
		typ := "C"
		if e.open {
			typ = "O"
		}
		out = append(out, ssEvent{Type: typ, At: at, Frame: e.frame})
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return nil, errors.New("profiler: no balanced scopes")
	}

	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}
	return &ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "frame loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "californium",
		Name:     "californium capture",
	}, nil
}
