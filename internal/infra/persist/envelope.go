package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// CurrentVersion is written into every envelope.
const CurrentVersion = 1

var (
	errFutureVersion = errors.New("persisted blob has a newer version")
	errLegacy        = errors.New("persisted blob has no envelope")
)

type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

func encode(payload any, now time.Time) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return json.Marshal(envelope{Version: CurrentVersion, SavedAt: now.UTC(), Data: data})
}

// decode unwraps raw. It returns errLegacy together with raw when the blob predates
// the envelope, so the caller can upgrade it with its own rules.
func decode(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty blob")
	}
	if trimmed[0] == '[' {
		return trimmed, errLegacy
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, err
	}
	if _, ok := fields["version"]; !ok {
		return trimmed, errLegacy
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	switch {
	case env.Version > CurrentVersion:
		return nil, fmt.Errorf("%w: %d", errFutureVersion, env.Version)
	case env.Version < 1:
		return nil, fmt.Errorf("invalid version %d", env.Version)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, errors.New("envelope without data")
	}
	return env.Data, nil
}
