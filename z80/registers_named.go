package z80

import "strings"

// Bank selects which register bank a named 8-bit access targets. Only A,
// F, B, C, D, E, H, L have an alternate; I, R and the 16-bit registers do
// not and ignore this argument.
type Bank int

const (
	BankMain Bank = iota
	BankAlt
)

// GetReg8 reads an 8-bit register by name (a,b,c,d,e,h,l,f,i,r),
// case-insensitively. I and R have no alternate bank. The second return
// value is false for an unrecognized name.
func (c *CPU) GetReg8(name string, bank Bank) (byte, bool) {
	switch strings.ToLower(name) {
	case "i":
		return c.I, true
	case "r":
		return c.R, true
	}
	idx := bank
	switch strings.ToLower(name) {
	case "a":
		return c.af[idx].A, true
	case "f":
		return c.af[idx].F, true
	case "b":
		return c.gp[idx].B, true
	case "c":
		return c.gp[idx].C, true
	case "d":
		return c.gp[idx].D, true
	case "e":
		return c.gp[idx].E, true
	case "h":
		return c.gp[idx].H, true
	case "l":
		return c.gp[idx].L, true
	default:
		return 0, false
	}
}

// SetReg8 writes an 8-bit register by name; see GetReg8.
func (c *CPU) SetReg8(name string, bank Bank, value byte) bool {
	switch strings.ToLower(name) {
	case "i":
		c.I = value
		return true
	case "r":
		c.R = value
		return true
	}
	idx := bank
	switch strings.ToLower(name) {
	case "a":
		c.af[idx].A = value
	case "f":
		c.af[idx].F = value
	case "b":
		c.gp[idx].B = value
	case "c":
		c.gp[idx].C = value
	case "d":
		c.gp[idx].D = value
	case "e":
		c.gp[idx].E = value
	case "h":
		c.gp[idx].H = value
	case "l":
		c.gp[idx].L = value
	default:
		return false
	}
	return true
}

// GetReg16 reads a 16-bit register by name (bc,de,hl,af,ix,iy,sp,pc),
// always against the currently active bank for bc/de/hl/af.
func (c *CPU) GetReg16(name string) (uint16, bool) {
	switch strings.ToLower(name) {
	case "bc":
		return c.BC(), true
	case "de":
		return c.DE(), true
	case "hl":
		return c.HL(), true
	case "af":
		return c.AF(), true
	case "ix":
		return c.IX, true
	case "iy":
		return c.IY, true
	case "sp":
		return c.SP, true
	case "pc":
		return c.PC, true
	default:
		return 0, false
	}
}

// SetReg16 writes a 16-bit register by name; see GetReg16.
func (c *CPU) SetReg16(name string, value uint16) bool {
	switch strings.ToLower(name) {
	case "bc":
		c.SetBC(value)
	case "de":
		c.SetDE(value)
	case "hl":
		c.SetHL(value)
	case "af":
		c.SetAF(value)
	case "ix":
		c.IX = value
	case "iy":
		c.IY = value
	case "sp":
		c.SP = value
	case "pc":
		c.PC = value
	default:
		return false
	}
	return true
}
