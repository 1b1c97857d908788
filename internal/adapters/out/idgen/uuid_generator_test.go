package idgen_test

import (
	"regexp"
	"testing"

	"grubdash/internal/adapters/out/idgen"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Next(t *testing.T) {
	var gen ports.IDGenerator = idgen.NewUUIDGenerator()
	hex32 := regexp.MustCompile(`^[0-9a-f]{32}$`)

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := gen.Next()
		assert.Regexp(t, hex32, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
