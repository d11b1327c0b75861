package ds

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSubmissionID(t *testing.T) {
	now := time.UnixMilli(1760000000123)
	id := NewSubmissionID(now)

	assert.Regexp(t, regexp.MustCompile(`^SUB-1760000000123-[A-Z0-9]{9}$`), id)
	assert.NotEqual(t, id, NewSubmissionID(now))
}
