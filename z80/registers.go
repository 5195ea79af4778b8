package z80

// readReg8/writeReg8 decode the 3-bit register field used throughout the
// base and CB tables: 0=B 1=C 2=D 3=E 4=H 5=L 6=(HL) 7=A. Under an active
// DD/FD prefix, codes 4 and 5 are redirected to the high/low byte of the
// live index register instead of H/L, the real Z80's undocumented
// IXH/IXL/IYH/IYL behavior. This falls out naturally here because the
// prefix handlers leave prefixMode set while they fall back to dispatching
// the unmodified base-table instruction.
func (c *CPU) readReg8(code byte) byte {
	switch code {
	case 0:
		return c.gpp().B
	case 1:
		return c.gpp().C
	case 2:
		return c.gpp().D
	case 3:
		return c.gpp().E
	case 4:
		return c.readIndexHigh()
	case 5:
		return c.readIndexLow()
	case 6:
		return c.read(c.HL())
	default:
		return c.a()
	}
}

func (c *CPU) writeReg8(code byte, value byte) {
	switch code {
	case 0:
		c.gpp().B = value
	case 1:
		c.gpp().C = value
	case 2:
		c.gpp().D = value
	case 3:
		c.gpp().E = value
	case 4:
		c.writeIndexHigh(value)
	case 5:
		c.writeIndexLow(value)
	case 6:
		c.write(c.HL(), value)
	default:
		c.setA(value)
	}
}

// readReg8Plain/writeReg8Plain are readReg8/writeReg8 without the DD/FD
// H/L substitution, used by the explicit "LD r,(IX+d)"/"LD (IX+d),r"
// encodings, where the register side of the instruction always names the
// real H or L, never IXH/IXL.
func (c *CPU) readReg8Plain(code byte) byte {
	switch code {
	case 0:
		return c.gpp().B
	case 1:
		return c.gpp().C
	case 2:
		return c.gpp().D
	case 3:
		return c.gpp().E
	case 4:
		return c.gpp().H
	case 5:
		return c.gpp().L
	case 6:
		return c.read(c.HL())
	default:
		return c.a()
	}
}

func (c *CPU) writeReg8Plain(code byte, value byte) {
	switch code {
	case 0:
		c.gpp().B = value
	case 1:
		c.gpp().C = value
	case 2:
		c.gpp().D = value
	case 3:
		c.gpp().E = value
	case 4:
		c.gpp().H = value
	case 5:
		c.gpp().L = value
	case 6:
		c.write(c.HL(), value)
	default:
		c.setA(value)
	}
}

func (c *CPU) readIndexHigh() byte {
	switch c.prefixMode {
	case prefixDD:
		return byte(c.IX >> 8)
	case prefixFD:
		return byte(c.IY >> 8)
	default:
		return c.gpp().H
	}
}

func (c *CPU) readIndexLow() byte {
	switch c.prefixMode {
	case prefixDD:
		return byte(c.IX)
	case prefixFD:
		return byte(c.IY)
	default:
		return c.gpp().L
	}
}

func (c *CPU) writeIndexHigh(value byte) {
	switch c.prefixMode {
	case prefixDD:
		c.IX = (c.IX & 0x00FF) | uint16(value)<<8
	case prefixFD:
		c.IY = (c.IY & 0x00FF) | uint16(value)<<8
	default:
		c.gpp().H = value
	}
}

func (c *CPU) writeIndexLow(value byte) {
	switch c.prefixMode {
	case prefixDD:
		c.IX = (c.IX & 0xFF00) | uint16(value)
	case prefixFD:
		c.IY = (c.IY & 0xFF00) | uint16(value)
	default:
		c.gpp().L = value
	}
}
