package z80

// pairGet/pairSet read and write the rr operand of LD rr,nn / INC rr /
// DEC rr / ADD HL,rr (p encodes BC,DE,HL,SP in that order).
func (c *CPU) pairGet(p byte) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) pairSet(p byte, v uint16) {
	switch p {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// pairGetPushPop/pairSetPushPop read and write the qq operand of PUSH
// qq / POP qq, which names AF where pairGet/pairSet would name SP.
func (c *CPU) pairGetPushPop(p byte) uint16 {
	if p == 3 {
		return c.AF()
	}
	return c.pairGet(p)
}

func (c *CPU) pairSetPushPop(p byte, v uint16) {
	if p == 3 {
		c.SetAF(v)
		return
	}
	c.pairSet(p, v)
}

// initBaseOps builds the unprefixed 256-entry opcode table.
func (c *CPU) initBaseOps() {
	t := &c.baseOps

	t[0x00] = func(c *CPU) (int, error) { return 4, nil }

	for p := byte(0); p < 4; p++ {
		p := p
		t[0x01|p<<4] = func(c *CPU) (int, error) {
			c.pairSet(p, c.fetchWord())
			return 10, nil
		}
		t[0x03|p<<4] = func(c *CPU) (int, error) {
			c.pairSet(p, c.pairGet(p)+1)
			return 6, nil
		}
		t[0x0B|p<<4] = func(c *CPU) (int, error) {
			c.pairSet(p, c.pairGet(p)-1)
			return 6, nil
		}
		t[0x09|p<<4] = func(c *CPU) (int, error) {
			hl := c.HL()
			c.addWord(&hl, c.pairGet(p))
			c.SetHL(hl)
			c.WZ = hl + 1
			return 11, nil
		}
		t[0xC1|p<<4] = func(c *CPU) (int, error) {
			c.pairSetPushPop(p, c.opPop())
			return 10, nil
		}
		t[0xC5|p<<4] = func(c *CPU) (int, error) {
			c.opPush(c.pairGetPushPop(p))
			return 11, nil
		}
	}

	for reg := byte(0); reg < 8; reg++ {
		reg := reg
		t[0x04|reg<<3] = func(c *CPU) (int, error) {
			if reg == 6 {
				c.write(c.HL(), c.inc8(c.read(c.HL())))
				return 11, nil
			}
			c.writeReg8(reg, c.inc8(c.readReg8(reg)))
			return 4, nil
		}
		t[0x05|reg<<3] = func(c *CPU) (int, error) {
			if reg == 6 {
				c.write(c.HL(), c.dec8(c.read(c.HL())))
				return 11, nil
			}
			c.writeReg8(reg, c.dec8(c.readReg8(reg)))
			return 4, nil
		}
		t[0x06|reg<<3] = func(c *CPU) (int, error) {
			n := c.fetchByte()
			if reg == 6 {
				c.write(c.HL(), n)
				return 10, nil
			}
			c.writeReg8(reg, n)
			return 7, nil
		}
	}

	t[0x02] = func(c *CPU) (int, error) {
		c.write(c.BC(), c.a())
		c.WZ = uint16(c.a())<<8 | (c.BC()+1)&0xFF
		return 7, nil
	}
	t[0x12] = func(c *CPU) (int, error) {
		c.write(c.DE(), c.a())
		c.WZ = uint16(c.a())<<8 | (c.DE()+1)&0xFF
		return 7, nil
	}
	t[0x0A] = func(c *CPU) (int, error) {
		c.WZ = c.BC() + 1
		c.setA(c.read(c.BC()))
		return 7, nil
	}
	t[0x1A] = func(c *CPU) (int, error) {
		c.WZ = c.DE() + 1
		c.setA(c.read(c.DE()))
		return 7, nil
	}

	t[0x07] = func(c *CPU) (int, error) { c.opRLCA(); return 4, nil }
	t[0x0F] = func(c *CPU) (int, error) { c.opRRCA(); return 4, nil }
	t[0x17] = func(c *CPU) (int, error) { c.opRLA(); return 4, nil }
	t[0x1F] = func(c *CPU) (int, error) { c.opRRA(); return 4, nil }
	t[0x27] = func(c *CPU) (int, error) { c.performDAA(); return 4, nil }
	t[0x2F] = func(c *CPU) (int, error) { c.opCPL(); return 4, nil }
	t[0x37] = func(c *CPU) (int, error) { c.opSCF(); return 4, nil }
	t[0x3F] = func(c *CPU) (int, error) { c.opCCF(); return 4, nil }

	t[0x08] = func(c *CPU) (int, error) { c.exAF(); return 4, nil }
	t[0x10] = func(c *CPU) (int, error) {
		if c.opDJNZ() {
			return 13, nil
		}
		return 8, nil
	}
	t[0x18] = func(c *CPU) (int, error) { c.opJR(); return 12, nil }
	for code := byte(0); code < 4; code++ {
		code := code
		t[0x20|code<<3] = func(c *CPU) (int, error) {
			if c.opJRCond(code) {
				return 12, nil
			}
			return 7, nil
		}
	}

	t[0x22] = func(c *CPU) (int, error) {
		addr := c.fetchWord()
		c.writeWord(addr, c.HL())
		c.WZ = addr + 1
		return 16, nil
	}
	t[0x2A] = func(c *CPU) (int, error) {
		addr := c.fetchWord()
		c.SetHL(c.readWord(addr))
		c.WZ = addr + 1
		return 16, nil
	}
	t[0x32] = func(c *CPU) (int, error) {
		addr := c.fetchWord()
		c.write(addr, c.a())
		c.WZ = uint16(c.a())<<8 | (addr+1)&0xFF
		return 13, nil
	}
	t[0x3A] = func(c *CPU) (int, error) {
		addr := c.fetchWord()
		c.setA(c.read(addr))
		c.WZ = addr + 1
		return 13, nil
	}

	t[0x76] = func(c *CPU) (int, error) { c.Halt(); return 4, nil }

	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			dst, src := dst, src
			op := byte(0x40) | dst<<3 | src
			t[op] = func(c *CPU) (int, error) {
				c.writeReg8(dst, c.readReg8(src))
				if dst == 6 || src == 6 {
					return 7, nil
				}
				return 4, nil
			}
		}
	}

	aluOps := [8]aluOp{aluAdd, aluAdc, aluSub, aluSbc, aluAnd, aluXor, aluOr, aluCp}
	for group := byte(0); group < 8; group++ {
		for src := byte(0); src < 8; src++ {
			group, src := group, src
			op := byte(0x80) | group<<3 | src
			t[op] = func(c *CPU) (int, error) {
				c.performALU(aluOps[group], c.readReg8(src))
				if src == 6 {
					return 7, nil
				}
				return 4, nil
			}
		}
		group := group
		t[0xC6|group<<3] = func(c *CPU) (int, error) {
			c.performALU(aluOps[group], c.fetchByte())
			return 7, nil
		}
	}

	for cond := byte(0); cond < 8; cond++ {
		cond := cond
		t[0xC0|cond<<3] = func(c *CPU) (int, error) {
			if c.opRetCond(cond) {
				return 11, nil
			}
			return 5, nil
		}
		t[0xC2|cond<<3] = func(c *CPU) (int, error) { c.opJPCond(cond); return 10, nil }
		t[0xC4|cond<<3] = func(c *CPU) (int, error) {
			if c.opCallCond(cond) {
				return 17, nil
			}
			return 10, nil
		}
		rstAddr := cond * 8
		t[0xC7|cond<<3] = func(c *CPU) (int, error) { c.opRST(rstAddr); return 11, nil }
	}

	t[0xC3] = func(c *CPU) (int, error) { c.opJP(); return 10, nil }
	t[0xC9] = func(c *CPU) (int, error) { c.opRet(); return 10, nil }
	t[0xCD] = func(c *CPU) (int, error) { c.opCall(); return 17, nil }

	t[0xCB] = func(c *CPU) (int, error) {
		opcode := c.fetchOpcode()
		return c.cbOps[opcode](c)
	}
	t[0xDD] = func(c *CPU) (int, error) { return c.opIndexedPrefix(&c.IX, prefixDD) }
	t[0xFD] = func(c *CPU) (int, error) { return c.opIndexedPrefix(&c.IY, prefixFD) }
	t[0xED] = func(c *CPU) (int, error) {
		opcode := c.fetchOpcode()
		return c.edOps[opcode](c)
	}

	t[0xD3] = func(c *CPU) (int, error) {
		n := c.fetchByte()
		port := uint16(c.a())<<8 | uint16(n)
		c.out(port, c.a())
		c.WZ = uint16(c.a())<<8 | ((port + 1) & 0xFF)
		return 11, nil
	}
	t[0xDB] = func(c *CPU) (int, error) {
		n := c.fetchByte()
		port := uint16(c.a())<<8 | uint16(n)
		c.setA(c.in(port))
		c.WZ = port + 1
		return 11, nil
	}

	t[0xD9] = func(c *CPU) (int, error) { c.exx(); return 4, nil }
	t[0xE3] = func(c *CPU) (int, error) { hl := c.HL(); c.opExSP(&hl); c.SetHL(hl); return 19, nil }
	t[0xE9] = func(c *CPU) (int, error) { c.opJPHL(); return 4, nil }
	t[0xEB] = func(c *CPU) (int, error) { c.opExDEHL(); return 4, nil }

	t[0xF3] = func(c *CPU) (int, error) { c.opDI(); return 4, nil }
	t[0xF9] = func(c *CPU) (int, error) { c.SP = c.HL(); return 6, nil }
	t[0xFB] = func(c *CPU) (int, error) { c.opEI(); return 4, nil }
}
