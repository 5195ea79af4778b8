package z80

import "errors"

// ErrInvalidOpcode is returned by Step when the root table or a prefix
// table has no entry for the fetched byte. It is sticky: every subsequent
// Step returns the same error until Reset.
var ErrInvalidOpcode = errors.New("z80: invalid opcode")

// ErrDAAInvalid is kept for API parity with the C reference this module
// was ported from. The canonical DAA formula in performDAA never produces
// it; no code path returns it.
var ErrDAAInvalid = errors.New("z80: invalid DAA input")
