package z80

// opIndexedPrefix implements the shared body of the DD and FD opcodes:
// fetch the next byte, set the live index register and prefix mode for the
// duration of the decoded instruction, dispatch through indexedOps, then
// drop the prefix. index points at IX or IY.
func (c *CPU) opIndexedPrefix(index *uint16, mode byte) (int, error) {
	c.prefixMode = mode
	opcode := c.fetchOpcode()
	c.prefixOpcode = opcode
	t, err := c.indexedOps[opcode](c, index)
	c.prefixMode = prefixNone
	return t, err
}

// effectiveAddr fetches the displacement byte following a DD/FD opcode,
// sets WZ to *index+d as a genuine Z80 does, and returns that address.
func (c *CPU) effectiveAddr(index *uint16) uint16 {
	disp := c.fetchSignedDisp()
	addr := uint16(int32(*index) + int32(disp))
	c.WZ = addr
	return addr
}

// initIndexedOps builds the table shared by the DD and FD prefixes. Most
// entries simply fall back to the corresponding base-table instruction:
// readReg8/writeReg8 already redirect H/L to the live index register's
// high/low byte while prefixMode is set, so LD r,r'/INC r/ALU A,r and
// friends need no override here to get their undocumented IXH/IXL/IYH/IYL
// behavior. Only instructions that genuinely address (HL) as memory need an
// explicit (index+d) form.
func (c *CPU) initIndexedOps() {
	t := &c.indexedOps

	for op := 0; op < 256; op++ {
		op := byte(op)
		t[op] = func(c *CPU, index *uint16) (int, error) {
			t, err := c.baseOps[op](c)
			return t + 4, err
		}
	}

	t[0x09] = func(c *CPU, index *uint16) (int, error) { c.addWord(index, c.BC()); return 15, nil }
	t[0x19] = func(c *CPU, index *uint16) (int, error) { c.addWord(index, c.DE()); return 15, nil }
	t[0x29] = func(c *CPU, index *uint16) (int, error) { c.addWord(index, *index); return 15, nil }
	t[0x39] = func(c *CPU, index *uint16) (int, error) { c.addWord(index, c.SP); return 15, nil }

	t[0x21] = func(c *CPU, index *uint16) (int, error) { *index = c.fetchWord(); return 14, nil }
	t[0x22] = func(c *CPU, index *uint16) (int, error) {
		addr := c.fetchWord()
		c.writeWord(addr, *index)
		c.WZ = addr + 1
		return 20, nil
	}
	t[0x2A] = func(c *CPU, index *uint16) (int, error) {
		addr := c.fetchWord()
		*index = c.readWord(addr)
		c.WZ = addr + 1
		return 20, nil
	}
	t[0x23] = func(c *CPU, index *uint16) (int, error) { *index++; return 10, nil }
	t[0x2B] = func(c *CPU, index *uint16) (int, error) { *index--; return 10, nil }

	t[0x34] = func(c *CPU, index *uint16) (int, error) {
		addr := c.effectiveAddr(index)
		c.write(addr, c.inc8(c.read(addr)))
		return 23, nil
	}
	t[0x35] = func(c *CPU, index *uint16) (int, error) {
		addr := c.effectiveAddr(index)
		c.write(addr, c.dec8(c.read(addr)))
		return 23, nil
	}
	t[0x36] = func(c *CPU, index *uint16) (int, error) {
		addr := c.effectiveAddr(index)
		n := c.fetchByte()
		c.write(addr, n)
		return 19, nil
	}

	// LD (index+d),r / LD r,(index+d): the register field never means the
	// index register here, only the real H/L, since (HL) itself has been
	// replaced by the displaced address.
	for reg := byte(0); reg < 8; reg++ {
		if reg == 6 {
			continue
		}
		reg := reg
		dstOp := byte(0x70) | reg
		t[dstOp] = func(c *CPU, index *uint16) (int, error) {
			addr := c.effectiveAddr(index)
			c.write(addr, c.readReg8Plain(reg))
			return 19, nil
		}
		srcOp := byte(0x46) | reg<<3
		t[srcOp] = func(c *CPU, index *uint16) (int, error) {
			addr := c.effectiveAddr(index)
			c.writeReg8Plain(reg, c.read(addr))
			return 19, nil
		}
	}
	t[0x76] = func(c *CPU, index *uint16) (int, error) { c.Halt(); return 8, nil }

	aluOps := [8]aluOp{aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}
	for group := byte(0); group < 8; group++ {
		group := group
		op := byte(0x86) | group<<3
		t[op] = func(c *CPU, index *uint16) (int, error) {
			addr := c.effectiveAddr(index)
			c.performALU(aluOps[group], c.read(addr))
			return 19, nil
		}
	}

	t[0xE1] = func(c *CPU, index *uint16) (int, error) { *index = c.opPop(); return 14, nil }
	t[0xE5] = func(c *CPU, index *uint16) (int, error) { c.opPush(*index); return 15, nil }
	t[0xE3] = func(c *CPU, index *uint16) (int, error) { c.opExSP(index); return 23, nil }
	t[0xE9] = func(c *CPU, index *uint16) (int, error) { c.PC = *index; c.WZ = c.PC; return 8, nil }
	t[0xF9] = func(c *CPU, index *uint16) (int, error) { c.SP = *index; return 10, nil }

	t[0xCB] = func(c *CPU, index *uint16) (int, error) {
		addr := c.effectiveAddr(index)
		subOpcode := c.fetchByte()
		return c.dispatchIndexedCB(subOpcode, addr)
	}
}

// dispatchIndexedCB implements the DD CB d xx / FD CB d xx sub-table: every
// sub-opcode operates on the byte at the already-computed displaced
// address. The rotate/shift, RES and SET forms additionally write their
// result into the named register when the low 3 bits don't select 6, a
// documented side effect of the undocumented encoding, not a typo in the
// silicon.
func (c *CPU) dispatchIndexedCB(opcode byte, addr uint16) (int, error) {
	reg := opcode & 7
	value := c.read(addr)

	switch {
	case opcode < 0x40:
		group := (opcode >> 3) & 7
		res, carryOut := applyShift(shiftGroup(group), value, c.flag(flagC))
		c.write(addr, res)
		if reg != 6 {
			c.writeReg8Plain(reg, res)
		}
		c.setShiftFlags(res, carryOut)
		return 23, nil
	case opcode < 0x80:
		bit := (opcode >> 3) & 7
		c.testBit(bit, value, byte(addr>>8))
		return 20, nil
	case opcode < 0xC0:
		bit := (opcode >> 3) & 7
		res := resBit(bit, value)
		c.write(addr, res)
		if reg != 6 {
			c.writeReg8Plain(reg, res)
		}
		return 23, nil
	default:
		bit := (opcode >> 3) & 7
		res := setBit(bit, value)
		c.write(addr, res)
		if reg != 6 {
			c.writeReg8Plain(reg, res)
		}
		return 23, nil
	}
}
