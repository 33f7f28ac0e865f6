package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryWrap(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{}

	// Addresses wrap via masking, never error.
	mem.Write(0x1f, 0x9)
	assert.Equal(uint8(0x9), mem.Read(0xf))
	assert.Equal(uint8(0x9), mem.Read(0x2f))

	// Data is masked to a nibble on write.
	mem.Write(0x0, 0x1f)
	assert.Equal(uint8(0xf), mem.Read(0x0))
}

func TestMemoryLoadProgram(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{}

	program := make([]uint8, 20)
	for n := range program {
		program[n] = uint8(n)
	}

	// Longer programs are silently truncated at the bank size.
	mem.LoadProgram(program)
	for n := range uint8(MEM_SIZE) {
		assert.Equal(n&DATA_MASK, mem.Read(n), "addr %v", n)
	}

	mem.Clear()
	for n := range uint8(MEM_SIZE) {
		assert.Equal(uint8(0), mem.Read(n))
	}
}

func TestMemoryDump(t *testing.T) {
	assert := assert.New(t)

	mem := Memory{}
	mem.Write(0x3, 0x7)

	dump := mem.Dump()
	assert.Equal(uint8(0x7), dump[0x3])
	assert.Equal(uint8(0x0), dump[0x4])
}
