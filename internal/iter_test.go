package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := map[string]string{"a": "1"}
	second := map[string]string{"b": "2", "c": "3"}

	got := map[string]string{}
	for key, value := range IterSeq2Concat(maps.All(first), maps.All(second)) {
		got[key] = value
	}

	assert.Equal(map[string]string{"a": "1", "b": "2", "c": "3"}, got)
}

func TestIterSeq2ConcatStops(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(maps.All(map[string]string{"a": "1", "b": "2"}))

	count := 0
	for range seq {
		count += 1
		break
	}
	assert.Equal(1, count)
}
