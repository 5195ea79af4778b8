package z80

// setInFlags applies the flag result IN r,(C) (and the undocumented IN
// (C)/IN F,(C)) leaves behind: S/Z/P-V and Y/X from the byte read, H and N
// cleared, C untouched.
func (c *CPU) setInFlags(value byte) {
	f := c.f() & flagC
	if value == 0 {
		f |= flagZ
	}
	if value&0x80 != 0 {
		f |= flagS
	}
	if parity(value) {
		f |= flagPV
	}
	f |= value & flagYX
	c.setF(f)
}

// initEDOps builds the ED-prefixed table. Entries with no architectural
// meaning return ErrInvalidOpcode, the only table in the core with real
// gaps. The base and CB tables are fully populated by construction, and
// the DD/FD tables fall back to the base table rather than erroring.
func (c *CPU) initEDOps() {
	t := &c.edOps
	for op := 0; op < 256; op++ {
		op := byte(op)
		t[op] = func(c *CPU) (int, error) { return 0, ErrInvalidOpcode }
	}

	// row 6 is the undocumented IN (C)/OUT (C),0 form: flags set as usual,
	// but there is no register to store into or read from.
	for row := byte(0); row < 8; row++ {
		row := row
		base := byte(0x40) | row<<3

		t[base] = func(c *CPU) (int, error) {
			c.WZ = c.BC() + 1
			value := c.in(c.BC())
			if row != 6 {
				c.writeReg8Plain(row, value)
			}
			c.setInFlags(value)
			return 12, nil
		}
		t[base|1] = func(c *CPU) (int, error) {
			value := byte(0)
			if row != 6 {
				value = c.readReg8Plain(row)
			}
			c.out(c.BC(), value)
			c.WZ = c.BC() + 1
			return 12, nil
		}
	}

	for p := byte(0); p < 4; p++ {
		p := p
		t[0x42|p<<4] = func(c *CPU) (int, error) {
			c.sbcHL(c.pairGet(p))
			c.WZ = c.HL() + 1
			return 15, nil
		}
		t[0x4A|p<<4] = func(c *CPU) (int, error) {
			c.adcHL(c.pairGet(p))
			c.WZ = c.HL() + 1
			return 15, nil
		}
		t[0x43|p<<4] = func(c *CPU) (int, error) {
			addr := c.fetchWord()
			c.writeWord(addr, c.pairGet(p))
			c.WZ = addr + 1
			return 20, nil
		}
		t[0x4B|p<<4] = func(c *CPU) (int, error) {
			addr := c.fetchWord()
			c.pairSet(p, c.readWord(addr))
			c.WZ = addr + 1
			return 20, nil
		}
	}

	for sub := byte(0); sub < 4; sub++ {
		t[0x44|sub<<3] = func(c *CPU) (int, error) { c.opNEG(); return 8, nil }
		t[0x4C|sub<<3] = func(c *CPU) (int, error) { c.opNEG(); return 8, nil }
		t[0x45|sub<<3] = func(c *CPU) (int, error) { c.opRETN(); return 14, nil }
		t[0x4D|sub<<3] = func(c *CPU) (int, error) { c.opRETI(); return 14, nil }
	}
	t[0x46] = func(c *CPU) (int, error) { c.IM = 0; return 8, nil }
	t[0x4E] = func(c *CPU) (int, error) { c.IM = 0; return 8, nil }
	t[0x66] = func(c *CPU) (int, error) { c.IM = 0; return 8, nil }
	t[0x6E] = func(c *CPU) (int, error) { c.IM = 0; return 8, nil }
	t[0x56] = func(c *CPU) (int, error) { c.IM = 1; return 8, nil }
	t[0x76] = func(c *CPU) (int, error) { c.IM = 1; return 8, nil }
	t[0x5E] = func(c *CPU) (int, error) { c.IM = 2; return 8, nil }
	t[0x7E] = func(c *CPU) (int, error) { c.IM = 2; return 8, nil }

	t[0x47] = func(c *CPU) (int, error) { c.I = c.a(); return 9, nil }
	t[0x4F] = func(c *CPU) (int, error) { c.R = c.a(); return 9, nil }
	t[0x57] = func(c *CPU) (int, error) {
		c.setA(c.I)
		c.setIRFlags(c.I)
		return 9, nil
	}
	t[0x5F] = func(c *CPU) (int, error) {
		c.setA(c.R)
		c.setIRFlags(c.R)
		return 9, nil
	}

	t[0x67] = func(c *CPU) (int, error) { c.opRRD(); return 18, nil }
	t[0x6F] = func(c *CPU) (int, error) { c.opRLD(); return 18, nil }

	t[0x77] = func(c *CPU) (int, error) { return 8, nil }
	t[0x7F] = func(c *CPU) (int, error) { return 8, nil }

	t[0xA0] = func(c *CPU) (int, error) { c.opLDI(); return 16, nil }
	t[0xA8] = func(c *CPU) (int, error) { c.opLDD(); return 16, nil }
	t[0xB0] = func(c *CPU) (int, error) {
		if c.opLDIR() {
			c.PC -= 2
			c.WZ = c.PC + 1
			return 21, nil
		}
		return 16, nil
	}
	t[0xB8] = func(c *CPU) (int, error) {
		if c.opLDDR() {
			c.PC -= 2
			c.WZ = c.PC + 1
			return 21, nil
		}
		return 16, nil
	}

	t[0xA1] = func(c *CPU) (int, error) { c.opCPI(); c.WZ++; return 16, nil }
	t[0xA9] = func(c *CPU) (int, error) { c.opCPD(); c.WZ--; return 16, nil }
	t[0xB1] = func(c *CPU) (int, error) {
		repeat := c.opCPIR()
		c.WZ++
		if repeat {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}
	t[0xB9] = func(c *CPU) (int, error) {
		repeat := c.opCPDR()
		c.WZ--
		if repeat {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}

	t[0xA2] = func(c *CPU) (int, error) { c.WZ = c.BC() + 1; c.opINI(); return 16, nil }
	t[0xAA] = func(c *CPU) (int, error) { c.WZ = c.BC() - 1; c.opIND(); return 16, nil }
	t[0xB2] = func(c *CPU) (int, error) {
		c.WZ = c.BC() + 1
		if c.opINIR() {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}
	t[0xBA] = func(c *CPU) (int, error) {
		c.WZ = c.BC() - 1
		if c.opINDR() {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}

	t[0xA3] = func(c *CPU) (int, error) { c.opOUTI(); c.WZ = c.BC() + 1; return 16, nil }
	t[0xAB] = func(c *CPU) (int, error) { c.opOUTD(); c.WZ = c.BC() - 1; return 16, nil }
	t[0xB3] = func(c *CPU) (int, error) {
		repeat := c.opOTIR()
		c.WZ = c.BC() + 1
		if repeat {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}
	t[0xBB] = func(c *CPU) (int, error) {
		repeat := c.opOTDR()
		c.WZ = c.BC() - 1
		if repeat {
			c.PC -= 2
			return 21, nil
		}
		return 16, nil
	}
}

// setIRFlags applies LD A,I/LD A,R's special flag result: S/Z from the
// loaded value, P/V from IFF2 (used by a host to poll interrupt status
// mid-routine), H and N cleared, C untouched.
func (c *CPU) setIRFlags(value byte) {
	f := c.f() & flagC
	if value == 0 {
		f |= flagZ
	}
	if value&0x80 != 0 {
		f |= flagS
	}
	if c.IFF2 {
		f |= flagPV
	}
	f |= value & flagYX
	c.setF(f)
}
