package utils

import (
	"fmt"
	"time"
)

// NewID mints a record identifier from a type prefix and a creation time,
// e.g. TSK-20240110-153045. Uniqueness is timestamp-based: two records
// minted within the same second collide, which the single-user data model
// accepts.
func NewID(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, t.Format("20060102-150405"))
}
