package cpu

const (
	MEM_SIZE  = 16   // Addressable memory cells
	ADDR_MASK = 0x0f // 4-bit address mask
	DATA_MASK = 0x0f // 4-bit data mask
)

// Cell owns a single nibble of storage. It is created zeroed and only
// mutated through Write, which masks the value to 4 bits.
type Cell struct {
	data uint8
}

// Read returns the stored nibble.
func (c *Cell) Read() uint8 {
	return c.data
}

// Write stores a nibble, masking wider values.
func (c *Cell) Write(value uint8) {
	c.data = value & DATA_MASK
}

// Memory is the 16 x 4-bit memory bank. Addresses wrap by masking and
// never fault.
type Memory struct {
	cell [MEM_SIZE]Cell
}

// Read returns the nibble at the (masked) address.
func (mem *Memory) Read(addr uint8) uint8 {
	return mem.cell[addr&ADDR_MASK].Read()
}

// Write stores a nibble at the (masked) address.
func (mem *Memory) Write(addr, value uint8) {
	mem.cell[addr&ADDR_MASK].Write(value)
}

// LoadProgram copies program bytes into memory starting at address 0.
// Programs longer than the memory bank are silently truncated.
func (mem *Memory) LoadProgram(program []uint8) {
	for n, b := range program {
		if n >= MEM_SIZE {
			break
		}
		mem.Write(uint8(n), b)
	}
}

// Clear zeroes every cell.
func (mem *Memory) Clear() {
	for n := range mem.cell {
		mem.cell[n].Write(0)
	}
}

// Dump returns a snapshot of all memory contents.
func (mem *Memory) Dump() (dump [MEM_SIZE]uint8) {
	for n := range mem.cell {
		dump[n] = mem.cell[n].Read()
	}

	return
}
