package simstate

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes a state to JSON. RunwayMonths is derived (and may be
// +Inf), so it is not stored; Unmarshal rebuilds it.
func Marshal(s State) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return b, nil
}

// Unmarshal restores a state serialized by Marshal. The round trip is
// lossless for every reachable state: Unmarshal(Marshal(s)) == s.
func Unmarshal(b []byte) (State, error) {
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}, fmt.Errorf("unmarshal state: %w", err)
	}
	s.Financial.RunwayMonths = runway(s.Financial)
	return s, nil
}
