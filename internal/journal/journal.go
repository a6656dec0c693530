// Package journal records dispatched actions and replays them.
//
// A journal is a text file with one JSON-encoded action per line, in the
// format produced by action.Encode. Blank lines and lines starting with '#'
// are ignored, so journals can be written or annotated by hand:
//
//	# loop on, then back off
//	{"type":"TOGGLE_LOOP"}
//	{"type":"SET_PLAYER_VOLUME","playerVolume":0.75}
//
// Recording and replaying the same journal against fresh stores reproduces
// the same store state.
package journal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/dispatcher"
)

// Dispatcher is the part of *dispatcher.Dispatcher replay needs.
type Dispatcher interface {
	Dispatch(action.Action) error
}

// Recorder appends every action it sees to a writer.
type Recorder struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewRecorder records to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Create opens path for appending, creating it and its directory if needed.
func Create(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// Record writes a as one line. It has the dispatcher.Callback signature so
// a Recorder can be registered directly.
func (r *Recorder) Record(a action.Action) error {
	line, err := action.Encode(a)
	if err != nil {
		return fmt.Errorf("record action: %w", err)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.w.Write(line); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Callback returns Record as a dispatcher callback.
func (r *Recorder) Callback() dispatcher.Callback {
	return r.Record
}

// Close closes the underlying file when the recorder opened it.
func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// DecodeError reports a journal line that could not be decoded.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("journal line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Replay decodes each line of r and dispatches it to d, returning the number
// of actions dispatched. A line that fails to decode stops the replay with a
// *DecodeError. Handler faults do not stop it; they are joined into the
// returned error.
func Replay(r io.Reader, d Dispatcher) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		n      int
		lineNo int
		faults []error
	)
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		a, err := action.Decode(line)
		if err != nil {
			return n, errors.Join(append(faults, &DecodeError{Line: lineNo, Err: err})...)
		}
		if err := d.Dispatch(a); err != nil {
			faults = append(faults, fmt.Errorf("journal line %d: %w", lineNo, err))
		}
		n++
	}
	if err := sc.Err(); err != nil {
		faults = append(faults, fmt.Errorf("read journal: %w", err))
	}
	return n, errors.Join(faults...)
}

// ReplayFile replays the journal at path.
func ReplayFile(path string, d Dispatcher) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Replay(f, d)
}
