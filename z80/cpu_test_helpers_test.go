package z80

// memBus is a flat 64K memory and 256-port I/O space used as the Bus for
// every test in this package.
type memBus struct {
	mem [65536]byte
	io  [256]byte
}

func newMemBus() *memBus {
	return &memBus{}
}

func (b *memBus) ReadMem(addr uint16) byte        { return b.mem[addr] }
func (b *memBus) WriteMem(addr uint16, value byte) { b.mem[addr] = value }
func (b *memBus) ReadIO(port uint16) byte         { return b.io[byte(port)] }
func (b *memBus) WriteIO(port uint16, value byte) { b.io[byte(port)] = value }

// load copies program starting at addr into memory.
func (b *memBus) load(addr uint16, program ...byte) {
	for i, v := range program {
		b.mem[int(addr)+i] = v
	}
}

// newTestCPU builds a CPU wired to a fresh memBus and returns both so the
// test can preload memory and inspect it afterward.
func newTestCPU() (*CPU, *memBus) {
	bus := newMemBus()
	return New(bus), bus
}

// runUntilHalt steps the CPU until it halts or the step budget runs out,
// returning the total T-states consumed.
func runUntilHalt(c *CPU, maxSteps int) (int, error) {
	total := 0
	for i := 0; i < maxSteps; i++ {
		if c.Halted() {
			return total, nil
		}
		t, err := c.Step()
		if err != nil {
			return total, err
		}
		total += t
	}
	return total, nil
}
