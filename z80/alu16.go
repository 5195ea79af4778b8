package z80

// addWord implements ADD HL,rr / ADD IX,rr / ADD IY,rr. The destination is
// given by a pointer so HL, IX and IY share one kernel instead of three
// near-identical addHL/addIX/addIY copies.
func (c *CPU) addWord(dest *uint16, value uint16) {
	base := *dest
	sum := uint32(base) + uint32(value)
	result := uint16(sum)
	*dest = result

	f := c.f() &^ (flagH | flagN | flagC | flagYX)
	if carryFrom(12, uint32(base), uint32(value), 0) {
		f |= flagH
	}
	if sum > 0xFFFF {
		f |= flagC
	}
	f |= byte(result>>8) & flagYX
	c.setF(f)
}

// adcHL/sbcHL implement the ED-prefixed 16-bit adc/sbc: unlike ADD HL,rr
// these set every flag, including signed overflow from bit 15.
func (c *CPU) adcHL(value uint16) {
	hl := c.HL()
	carryIn := uint32(carryBit(c.flag(flagC)))
	sum := uint32(hl) + uint32(value) + carryIn
	res := uint16(sum)
	c.SetHL(res)

	f := byte(0)
	if res == 0 {
		f |= flagZ
	}
	if res&0x8000 != 0 {
		f |= flagS
	}
	if carryFrom(12, uint32(hl), uint32(value), carryIn) {
		f |= flagH
	}
	if overflowAdd16(hl, value, res) {
		f |= flagPV
	}
	if sum > 0xFFFF {
		f |= flagC
	}
	f |= byte(res>>8) & flagYX
	c.setF(f)
}

func (c *CPU) sbcHL(value uint16) {
	hl := c.HL()
	carryIn := uint32(carryBit(c.flag(flagC)))
	diff := int32(hl) - int32(value) - int32(carryIn)
	res := uint16(diff)
	c.SetHL(res)

	f := byte(flagN)
	if res == 0 {
		f |= flagZ
	}
	if res&0x8000 != 0 {
		f |= flagS
	}
	if borrowFrom(12, uint32(hl), uint32(value), carryIn) {
		f |= flagH
	}
	if overflowSub16(hl, value, res) {
		f |= flagPV
	}
	if diff < 0 {
		f |= flagC
	}
	f |= byte(res>>8) & flagYX
	c.setF(f)
}
