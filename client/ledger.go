package client

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Ledger is the device-local record of which help requests this client
// created. Possession of an ID in the ledger is the only thing that grants
// the mutation controls: the server never checks it, and anyone who learns
// an ID can act on it. That trade-off is what keeps the tool login-free.
// Losing the file silently revokes perceived ownership with no recovery.
type Ledger struct {
	mu    sync.Mutex
	path  string
	state ledgerState
}

type ledgerState struct {
	DeviceID string  `json:"device_id"`
	Pins     []int64 `json:"pins"`
}

// OpenLedger loads the ledger file at path, creating a fresh one with a
// new device UUID if the file is missing. A corrupt file is treated as
// empty rather than erroring: an unreadable ledger and a cleared one look
// the same to the user either way.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{
		path: path,
		state: ledgerState{
			DeviceID: uuid.New().String(),
			Pins:     []int64{},
		},
	}

	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return l, l.save()
	}
	if err != nil {
		return nil, err
	}

	var state ledgerState
	if err := json.Unmarshal(raw, &state); err != nil || state.DeviceID == "" {
		return l, l.save()
	}
	if state.Pins == nil {
		state.Pins = []int64{}
	}

	l.state = state
	return l, nil
}

// DeviceID returns the stable UUID generated for this ledger file.
func (l *Ledger) DeviceID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.DeviceID
}

// Record adds an ID to the ledger if absent.
func (l *Ledger) Record(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, pin := range l.state.Pins {
		if pin == id {
			return nil
		}
	}

	l.state.Pins = append(l.state.Pins, id)
	return l.save()
}

// Owns reports whether this device created the given request.
func (l *Ledger) Owns(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, pin := range l.state.Pins {
		if pin == id {
			return true
		}
	}
	return false
}

// Forget removes an ID from the ledger if present.
func (l *Ledger) Forget(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pins := l.state.Pins[:0]
	for _, pin := range l.state.Pins {
		if pin != id {
			pins = append(pins, pin)
		}
	}
	l.state.Pins = pins
	return l.save()
}

// Clear drops every recorded ID but keeps the device identity.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Pins = []int64{}
	return l.save()
}

// save persists the state with a write-then-rename so a crash mid-write
// never leaves a half-written ledger behind.
func (l *Ledger) save() error {
	encoded, err := json.Marshal(l.state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(dir, ".ledger-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), l.path)
}
