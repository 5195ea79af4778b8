package z80

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioLoadAndAdd(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0, 0x3E, 0x05, 0xC6, 0x03, 0x76)

	_, err := runUntilHalt(c, 10)
	require.NoError(t, err)

	require.EqualValues(t, 0x08, c.af[c.afBank].A)
	require.Equal(t, uint16(0x0005), c.PC)
	require.False(t, c.flag(flagC))
	require.False(t, c.flag(flagZ))
	require.True(t, c.Halted())
}

func TestScenarioCarry(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0, 0x3E, 0xFF, 0xC6, 0x01, 0x76)

	_, err := runUntilHalt(c, 10)
	require.NoError(t, err)

	require.EqualValues(t, 0x00, c.af[c.afBank].A)
	require.True(t, c.flag(flagZ))
	require.True(t, c.flag(flagC))
	require.True(t, c.flag(flagH))
	require.False(t, c.flag(flagPV))
	require.True(t, c.Halted())
}

func TestScenarioDAAAfterBCDAdd(t *testing.T) {
	c, bus := newTestCPU()
	c.af[c.afBank].A = 0x15
	c.af[c.afBank].F = 0
	bus.load(0, 0xC6, 0x27, 0x27, 0x76)

	_, err := runUntilHalt(c, 10)
	require.NoError(t, err)

	require.EqualValues(t, 0x42, c.af[c.afBank].A)
	require.False(t, c.flag(flagH))
	require.False(t, c.flag(flagC))
	require.False(t, c.flag(flagN))
}

func TestScenarioBlockMove(t *testing.T) {
	c, bus := newTestCPU()
	c.SetBC(0x0003)
	c.SetHL(0x1000)
	c.SetDE(0x2000)
	bus.load(0x1000, 0xAA, 0xBB, 0xCC)
	bus.load(0, 0xED, 0xB0, 0x76)

	_, err := runUntilHalt(c, 100)
	require.NoError(t, err)

	require.Equal(t, byte(0xAA), bus.mem[0x2000])
	require.Equal(t, byte(0xBB), bus.mem[0x2001])
	require.Equal(t, byte(0xCC), bus.mem[0x2002])
	require.Equal(t, uint16(0), c.BC())
	require.Equal(t, uint16(0x1003), c.HL())
	require.Equal(t, uint16(0x2003), c.DE())
	require.False(t, c.flag(flagPV))
}

func TestScenarioCallRetRoundTrip(t *testing.T) {
	c, bus := newTestCPU()
	c.SP = 0xFFF0
	bus.load(0, 0xCD, 0x10, 0x00, 0x76)
	bus.load(0x0010, 0xC9)

	_, err := runUntilHalt(c, 20)
	require.NoError(t, err)

	// The return lands on the halt at 0x0003; executing it leaves PC past it.
	require.Equal(t, uint16(0x0004), c.PC)
	require.Equal(t, uint16(0xFFF0), c.SP)
	require.Equal(t, byte(0x03), bus.mem[0xFFEE])
	require.Equal(t, byte(0x00), bus.mem[0xFFEF])
	require.True(t, c.Halted())
}

func TestScenarioJRTaken(t *testing.T) {
	c, bus := newTestCPU()
	bus.load(0, 0xB7, 0x28, 0x03, 0x3E, 0xFF, 0x76, 0x3E, 0x11, 0x76)

	_, err := runUntilHalt(c, 20)
	require.NoError(t, err)

	require.EqualValues(t, 0x11, c.af[c.afBank].A)
	require.Equal(t, uint16(0x0009), c.PC)
	require.True(t, c.Halted())
}
