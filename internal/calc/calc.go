// Package calc runs vector operations and applied problems on behalf of a
// user and hands each input/result pair to a recorder. Recording is best
// effort: a failed save never changes the returned result.
package calc

import (
	"context"
	"log"

	"vector3d-calc/internal/history"
)

// Recorder persists a calculation. history.Store implementations satisfy it.
type Recorder interface {
	Save(ctx context.Context, userID string, kind history.Kind, input, result any) (history.Record, error)
}

// Identity reports the user on whose behalf a calculation runs.
type Identity interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// StaticUser is an Identity that always reports the same user. The empty
// value is anonymous.
type StaticUser string

func (u StaticUser) CurrentUserID(context.Context) (string, bool) {
	return string(u), u != ""
}

type userKey struct{}

// WithUser attaches a user ID to ctx for ContextUser.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// ContextUser reads the user attached by WithUser.
type ContextUser struct{}

func (ContextUser) CurrentUserID(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(userKey{}).(string)
	return id, id != ""
}

// Calculator is stateless apart from its collaborators and safe for
// concurrent use.
type Calculator struct {
	rec Recorder
	id  Identity

	// OnSaveError, when set, is told about recorder failures in addition to
	// the log line.
	OnSaveError func(kind history.Kind, err error)
}

// New returns a Calculator. A nil Recorder or Identity disables recording.
func New(rec Recorder, id Identity) *Calculator {
	return &Calculator{rec: rec, id: id}
}

func (c *Calculator) record(ctx context.Context, kind history.Kind, input, result any) {
	if c.rec == nil || c.id == nil {
		return
	}
	user, ok := c.id.CurrentUserID(ctx)
	if !ok {
		return
	}
	if _, err := c.rec.Save(ctx, user, kind, input, result); err != nil {
		log.Printf("calc: save %s for %s: %v", kind, user, err)
		if c.OnSaveError != nil {
			c.OnSaveError(kind, err)
		}
	}
}
