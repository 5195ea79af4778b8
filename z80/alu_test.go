package z80

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZ80ALUAddSetsCarryAndHalfCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0xFF
	c.addA(0x01, 0)
	require.EqualValues(t, 0x00, c.af[c.afBank].A)
	require.True(t, c.flag(flagZ))
	require.True(t, c.flag(flagC))
	require.True(t, c.flag(flagH))
}

func TestZ80ALUSubStoresWhenRequested(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0x10
	c.subA(0x01, 0, true)
	require.EqualValues(t, 0x0F, c.af[c.afBank].A)
	require.True(t, c.flag(flagN))
}

func TestZ80ALUCPDoesNotStore(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0x10
	c.subA(0x10, 0, false)
	require.EqualValues(t, 0x10, c.af[c.afBank].A)
	require.True(t, c.flag(flagZ))
}

func TestZ80ALUAndSetsHalfCarryOrClearsIt(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0xF0
	c.andA(0x0F)
	require.EqualValues(t, 0x00, c.af[c.afBank].A)
	require.True(t, c.flag(flagH))
	require.True(t, c.flag(flagZ))

	c.af[c.afBank].A = 0xF0
	c.orA(0x0F)
	require.EqualValues(t, 0xFF, c.af[c.afBank].A)
	require.False(t, c.flag(flagH))

	c.af[c.afBank].A = 0xFF
	c.xorA(0xFF)
	require.EqualValues(t, 0x00, c.af[c.afBank].A)
	require.True(t, c.flag(flagZ))
}

func TestZ80ALUIncDecPreserveCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(flagC, true)
	res := c.inc8(0x7F)
	require.EqualValues(t, 0x80, res)
	require.True(t, c.flag(flagPV))
	require.True(t, c.flag(flagC))

	res = c.dec8(0x80)
	require.EqualValues(t, 0x7F, res)
	require.True(t, c.flag(flagPV))
	require.True(t, c.flag(flagC))
}

func TestZ80ALUNegFromZero(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0x00
	c.opNEG()
	require.EqualValues(t, 0x00, c.af[c.afBank].A)
	require.True(t, c.flag(flagZ))
	require.False(t, c.flag(flagC))
}

func TestZ80ALUNegFromMinInt8(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0x80
	c.opNEG()
	require.EqualValues(t, 0x80, c.af[c.afBank].A)
	require.True(t, c.flag(flagPV))
	require.True(t, c.flag(flagC))
}

func TestZ80ALUCPLTwiceRestoresA(t *testing.T) {
	c, _ := newTestCPU()
	c.af[c.afBank].A = 0x3C
	c.opCPL()
	c.opCPL()
	require.EqualValues(t, 0x3C, c.af[c.afBank].A)
	require.True(t, c.flag(flagH))
	require.True(t, c.flag(flagN))
}

func TestZ80ALUCCFTogglesCarryIntoHalfCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(flagC, true)
	c.opCCF()
	require.True(t, c.flag(flagH))
	require.False(t, c.flag(flagC))
}

func TestZ80ALUSCFSetsCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.opSCF()
	require.True(t, c.flag(flagC))
	require.False(t, c.flag(flagN))
	require.False(t, c.flag(flagH))
}

func TestZ80ALUAddWordHalfCarryFromBit11(t *testing.T) {
	c, _ := newTestCPU()
	hl := uint16(0x0FFF)
	c.addWord(&hl, 0x0001)
	require.EqualValues(t, 0x1000, hl)
	require.True(t, c.flag(flagH))
	require.False(t, c.flag(flagC))
}

func TestZ80ALUAdcHLSetsOverflow(t *testing.T) {
	c, _ := newTestCPU()
	c.SetHL(0x7FFF)
	c.adcHL(0x0001)
	require.Equal(t, uint16(0x8000), c.HL())
	require.True(t, c.flag(flagPV))
	require.True(t, c.flag(flagS))
}

func TestZ80ALUSbcHLBorrow(t *testing.T) {
	c, _ := newTestCPU()
	c.SetHL(0x0000)
	c.sbcHL(0x0001)
	require.Equal(t, uint16(0xFFFF), c.HL())
	require.True(t, c.flag(flagC))
	require.True(t, c.flag(flagN))
}
