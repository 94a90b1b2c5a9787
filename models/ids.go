package models

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewCommunicationID returns a time-sortable id for communications created by a form.
func NewCommunicationID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
