// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MistakeEvent is the predicate function for mistakeevent builders.
type MistakeEvent func(*sql.Selector)

// ResponseEvent is the predicate function for responseevent builders.
type ResponseEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StageEvent is the predicate function for stageevent builders.
type StageEvent func(*sql.Selector)
