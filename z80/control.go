package z80

// condition evaluates one of the eight 3-bit condition codes used by
// JP/CALL/RET cc: 0 NZ 1 Z 2 NC 3 C 4 PO 5 PE 6 P 7 M.
func (c *CPU) condition(code byte) bool {
	switch code {
	case 0:
		return !c.flag(flagZ)
	case 1:
		return c.flag(flagZ)
	case 2:
		return !c.flag(flagC)
	case 3:
		return c.flag(flagC)
	case 4:
		return !c.flag(flagPV)
	case 5:
		return c.flag(flagPV)
	case 6:
		return !c.flag(flagS)
	default:
		return c.flag(flagS)
	}
}

func (c *CPU) opJP() {
	target := c.fetchWord()
	c.PC = target
	c.WZ = target
}

func (c *CPU) opJPCond(code byte) {
	target := c.fetchWord()
	c.WZ = target
	if c.condition(code) {
		c.PC = target
	}
}

func (c *CPU) opJPHL() {
	c.PC = c.HL()
	c.WZ = c.PC
}

func (c *CPU) opJR() {
	disp := c.fetchSignedDisp()
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.WZ = c.PC
}

// opJRCond reports whether the branch was taken, so the caller can add the
// extra 5 T-states the real Z80 spends only when JR actually jumps.
func (c *CPU) opJRCond(code byte) bool {
	disp := c.fetchSignedDisp()
	if !c.condition(code) {
		return false
	}
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.WZ = c.PC
	return true
}

// opDJNZ decrements B and, if still nonzero, branches; reports whether it
// branched for the caller's T-state accounting.
func (c *CPU) opDJNZ() bool {
	disp := c.fetchSignedDisp()
	c.gpp().B--
	if c.gpp().B == 0 {
		return false
	}
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.WZ = c.PC
	return true
}

func (c *CPU) opCall() {
	target := c.fetchWord()
	c.WZ = target
	c.pushWord(c.PC)
	c.PC = target
}

// opCallCond reports whether the call was taken.
func (c *CPU) opCallCond(code byte) bool {
	target := c.fetchWord()
	c.WZ = target
	if !c.condition(code) {
		return false
	}
	c.pushWord(c.PC)
	c.PC = target
	return true
}

func (c *CPU) opRet() {
	c.PC = c.popWord()
	c.WZ = c.PC
}

// opRetCond reports whether the return was taken.
func (c *CPU) opRetCond(code byte) bool {
	if !c.condition(code) {
		return false
	}
	c.PC = c.popWord()
	c.WZ = c.PC
	return true
}

func (c *CPU) opRST(addr byte) {
	c.pushWord(c.PC)
	c.PC = uint16(addr)
	c.WZ = c.PC
}

func (c *CPU) opPush(value uint16) {
	c.pushWord(value)
}

func (c *CPU) opPop() uint16 {
	return c.popWord()
}

// opExDEHL swaps DE and HL in place.
func (c *CPU) opExDEHL() {
	de, hl := c.DE(), c.HL()
	c.SetDE(hl)
	c.SetHL(de)
}

// opExSP implements EX (SP),HL (and, under an active DD/FD prefix, EX
// (SP),IX/IY): swap the word at the top of the stack with *reg.
func (c *CPU) opExSP(reg *uint16) {
	value := c.readWord(c.SP)
	c.writeWord(c.SP, *reg)
	*reg = value
	c.WZ = value
}
