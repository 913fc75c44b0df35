// Package history stores calculation records per user: the operation kind,
// its input and its result as JSON documents, newest first.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxList caps the number of records returned by a single List call.
const MaxList = 50

// ErrNotFound is returned when deleting a record that does not exist or
// belongs to another user.
var ErrNotFound = errors.New("history: record not found")

// Kind labels the operation that produced a record.
type Kind string

const (
	KindMagnitude    Kind = "magnitude"
	KindSum          Kind = "sum"
	KindDifference   Kind = "difference"
	KindDotProduct   Kind = "dot_product"
	KindCrossProduct Kind = "cross_product"
	KindNormalize    Kind = "normalize"
	KindAngle        Kind = "angle"
	KindProjection   Kind = "projection"

	KindCableTension      Kind = "cable_tension"
	KindStructureAnalysis Kind = "structure_analysis"
	KindFieldAnalysis     Kind = "field_analysis"
	KindRobotTrajectory   Kind = "robot_trajectory"
)

var labels = map[Kind]string{
	KindMagnitude:         "Magnitude",
	KindSum:               "Vector sum",
	KindDifference:        "Vector difference",
	KindDotProduct:        "Dot product",
	KindCrossProduct:      "Cross product",
	KindNormalize:         "Normalization",
	KindAngle:             "Angle between vectors",
	KindProjection:        "Projection",
	KindCableTension:      "Cable tension",
	KindStructureAnalysis: "Structural analysis",
	KindFieldAnalysis:     "Field analysis",
	KindRobotTrajectory:   "Robot trajectory",
}

// Label returns the display title of a kind. Unknown kinds are echoed back.
func Label(k Kind) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// Record is one saved calculation.
type Record struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Kind      Kind            `json:"operation_type"`
	Input     json.RawMessage `json:"input_data"`
	Result    json.RawMessage `json:"result_data"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists records. Implementations are safe for concurrent use.
type Store interface {
	Save(ctx context.Context, userID string, kind Kind, input, result any) (Record, error)
	// List returns the user's records, most recent first. limit <= 0 or above
	// MaxList is treated as MaxList.
	List(ctx context.Context, userID string, limit int) ([]Record, error)
	Delete(ctx context.Context, userID, id string) error
	Close() error
}

func newRecord(userID string, kind Kind, input, result any, now time.Time) (Record, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return Record{}, fmt.Errorf("history: encode input: %w", err)
	}
	out, err := json.Marshal(result)
	if err != nil {
		return Record{}, fmt.Errorf("history: encode result: %w", err)
	}
	return Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Input:     in,
		Result:    out,
		CreatedAt: now.UTC(),
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxList {
		return MaxList
	}
	return limit
}

// Summary renders a payload for a one-line listing, cut to n runes.
func Summary(raw json.RawMessage, n int) string {
	r := []rune(string(raw))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
