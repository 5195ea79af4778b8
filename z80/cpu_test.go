package z80

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExAFTwiceIsIdentity(t *testing.T) {
	c, _ := newTestCPU()
	c.af[0] = afPair{A: 0x12, F: 0x34}
	c.af[1] = afPair{A: 0x56, F: 0x78}

	c.exAF()
	require.EqualValues(t, 0x56, c.a())
	require.EqualValues(t, 0x78, c.f())

	c.exAF()
	require.EqualValues(t, 0x12, c.a())
	require.EqualValues(t, 0x34, c.f())
}

func TestExxTwiceIsIdentity(t *testing.T) {
	c, _ := newTestCPU()
	c.gp[0] = gpPair{B: 1, C: 2, D: 3, E: 4, H: 5, L: 6}
	c.gp[1] = gpPair{B: 11, C: 12, D: 13, E: 14, H: 15, L: 16}

	c.exx()
	require.Equal(t, uint16(11)<<8|12, c.BC())
	require.Equal(t, uint16(15)<<8|16, c.HL())

	c.exx()
	require.Equal(t, uint16(1)<<8|2, c.BC())
	require.Equal(t, uint16(5)<<8|6, c.HL())
}

func TestExxDoesNotTouchAF(t *testing.T) {
	c, _ := newTestCPU()
	c.SetAF(0xBEEF)
	c.exx()
	require.Equal(t, uint16(0xBEEF), c.AF())
}

func TestExAFDoesNotTouchGeneralRegisters(t *testing.T) {
	c, _ := newTestCPU()
	c.SetBC(0x1234)
	c.exAF()
	require.Equal(t, uint16(0x1234), c.BC())
}
