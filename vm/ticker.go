package vm

import "picvm/reg"

// Snapshot is the observable VM state handed to Ticker.Tick after an
// instruction has fully retired: PC, W, and the register-file view. The
// ticker may read it freely but must not mutate the VM through it (this is
// a value, not a pointer into live state, specifically so it can't).
type Snapshot struct {
	PC        uint16
	W         byte
	Status    reg.Status
	PCL       byte
	PCLATH    byte
	PORTA     byte
	PORTB     byte
	GPR       [reg.NumGPR]byte
	CallStack []uint16
}

// Ticker observes the VM one retired instruction at a time. Cycles is 1 or
// 2, per the instruction just executed. Tick is called synchronously from
// Step; an external co-simulated device (e.g. an LCD model reading PORTB)
// would implement this to sample pin state once per instruction.
type Ticker interface {
	Tick(snap Snapshot, cycles uint8)
}

// NopTicker satisfies Ticker by doing nothing, for callers that only care
// about running to completion (or to a fault) without observing each step.
type NopTicker struct{}

func (NopTicker) Tick(Snapshot, uint8) {}
