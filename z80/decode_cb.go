package z80

// initCBOps builds the CB-prefixed table: rotate/shift (0x00-0x3F), BIT
// (0x40-0x7F), RES (0x80-0xBF), SET (0xC0-0xFF). The register field always
// names the real register or (HL). CB never carries a DD/FD prefix of its
// own; the indexed DD-CB/FD-CB encodings are a distinct instruction format
// built in decode_indexed.go.
func (c *CPU) initCBOps() {
	t := &c.cbOps

	for group := byte(0); group < 8; group++ {
		for reg := byte(0); reg < 8; reg++ {
			group, reg := group, reg
			op := group<<3 | reg
			t[op] = func(c *CPU) (int, error) {
				value := c.readReg8Plain(reg)
				res, carryOut := applyShift(shiftGroup(group), value, c.flag(flagC))
				c.writeReg8Plain(reg, res)
				c.setShiftFlags(res, carryOut)
				if reg == 6 {
					return 15, nil
				}
				return 8, nil
			}
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		for reg := byte(0); reg < 8; reg++ {
			bit, reg := bit, reg
			op := byte(0x40) | bit<<3 | reg
			t[op] = func(c *CPU) (int, error) {
				value := c.readReg8Plain(reg)
				yx := value
				if reg == 6 {
					yx = byte(c.WZ >> 8)
				}
				c.testBit(bit, value, yx)
				if reg == 6 {
					return 12, nil
				}
				return 8, nil
			}
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		for reg := byte(0); reg < 8; reg++ {
			bit, reg := bit, reg
			op := byte(0x80) | bit<<3 | reg
			t[op] = func(c *CPU) (int, error) {
				c.writeReg8Plain(reg, resBit(bit, c.readReg8Plain(reg)))
				if reg == 6 {
					return 15, nil
				}
				return 8, nil
			}
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		for reg := byte(0); reg < 8; reg++ {
			bit, reg := bit, reg
			op := byte(0xC0) | bit<<3 | reg
			t[op] = func(c *CPU) (int, error) {
				c.writeReg8Plain(reg, setBit(bit, c.readReg8Plain(reg)))
				if reg == 6 {
					return 15, nil
				}
				return 8, nil
			}
		}
	}
}
