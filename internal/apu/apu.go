// Package apu implements the register-level behavior of the NES Audio
// Processing Unit. Sound synthesis is out of scope: this models exactly
// what the CPU can observe through $4000-$4017 — length counters, the
// frame sequencer, and its two IRQ sources — without generating any
// waveform or sample data.
package apu

// lengthTable maps a 5-bit length-counter load value to its counter value.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6,
	160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 8, 48, 6, 96, 4,
	192, 2, 72, 16, 28, 32, 52, 2,
}

// Channel indices into the length-counter/enable arrays.
const (
	chPulse1 = iota
	chPulse2
	chTriangle
	chNoise
	chDMC
)

// APU models the CPU-visible state of the 2A03's audio registers.
type APU struct {
	lengthCounter [5]uint8
	lengthHalt    [5]bool
	channelEnable [5]bool

	frameCounter   uint16
	frameMode      bool // false = 4-step, true = 5-step
	frameIRQEnable bool
	frameIRQFlag   bool

	dmcIRQEnable      bool
	dmcIRQFlag        bool
	dmcLoop           bool
	dmcSampleLength   uint16
	dmcBytesRemaining uint16

	cycles uint64
}

// New creates a new APU instance.
func New() *APU {
	return &APU{
		frameIRQEnable: true,
	}
}

// Reset resets the APU to its power-up state.
func (a *APU) Reset() {
	*a = APU{frameIRQEnable: true}
}

// Step advances the frame sequencer by one CPU cycle.
func (a *APU) Step() {
	a.cycles++
	a.stepFrameCounter()
}

// stepFrameCounter clocks the length-counter/sweep half of the frame
// sequencer at the same cadence real hardware uses, and raises the
// frame IRQ at the end of a 4-step sequence.
func (a *APU) stepFrameCounter() {
	a.frameCounter++

	if a.frameMode {
		switch a.frameCounter {
		case 7457, 22371:
			// Quarter-frame clock only; no envelope/linear state kept.
		case 14913:
			a.clockLengthCounters()
		case 37281:
			a.clockLengthCounters()
			a.frameCounter = 0
		}
		return
	}

	switch a.frameCounter {
	case 7457, 22371:
	case 14913:
		a.clockLengthCounters()
	case 29829:
		a.clockLengthCounters()
	case 29830:
		if a.frameIRQEnable {
			a.frameIRQFlag = true
		}
		a.frameCounter = 0
	}
}

// clockLengthCounters decrements every channel's length counter that
// isn't halted and hasn't already reached zero.
func (a *APU) clockLengthCounters() {
	for i := range a.lengthCounter {
		if !a.lengthHalt[i] && a.lengthCounter[i] > 0 {
			a.lengthCounter[i]--
		}
	}
}

// WriteRegister writes to an APU register ($4000-$4017).
func (a *APU) WriteRegister(address uint16, value uint8) {
	switch address {
	case 0x4000:
		a.lengthHalt[chPulse1] = value&0x20 != 0
	case 0x4004:
		a.lengthHalt[chPulse2] = value&0x20 != 0
	case 0x4008:
		a.lengthHalt[chTriangle] = value&0x80 != 0
	case 0x400C:
		a.lengthHalt[chNoise] = value&0x20 != 0

	case 0x4003:
		a.loadLengthCounter(chPulse1, value)
	case 0x4007:
		a.loadLengthCounter(chPulse2, value)
	case 0x400B:
		a.loadLengthCounter(chTriangle, value)
	case 0x400F:
		a.loadLengthCounter(chNoise, value)

	case 0x4010:
		a.dmcIRQEnable = value&0x80 != 0
		a.dmcLoop = value&0x40 != 0
		if !a.dmcIRQEnable {
			a.dmcIRQFlag = false
		}
	case 0x4013:
		a.dmcSampleLength = uint16(value)*16 + 1

	case 0x4015:
		a.writeChannelEnable(value)
	case 0x4017:
		a.writeFrameCounter(value)
	}
}

// loadLengthCounter reloads a channel's length counter from the table,
// but only while that channel is enabled (per $4015).
func (a *APU) loadLengthCounter(channel int, value uint8) {
	if a.channelEnable[channel] {
		a.lengthCounter[channel] = lengthTable[value>>3]
	}
}

// writeChannelEnable handles $4015 writes: enabling/disabling channels.
// Disabling a channel immediately zeroes its length counter; the DMC
// additionally restarts its sample playback from its configured length
// and clears its IRQ flag, matching real hardware.
func (a *APU) writeChannelEnable(value uint8) {
	for i := 0; i < 4; i++ {
		a.channelEnable[i] = value&(1<<uint(i)) != 0
		if !a.channelEnable[i] {
			a.lengthCounter[i] = 0
		}
	}

	dmcEnabled := value&0x10 != 0
	a.channelEnable[chDMC] = dmcEnabled
	a.dmcIRQFlag = false
	if dmcEnabled {
		if a.dmcBytesRemaining == 0 {
			a.dmcBytesRemaining = a.dmcSampleLength
		}
	} else {
		a.dmcBytesRemaining = 0
	}
}

// writeFrameCounter handles $4017 writes: sequencer mode and IRQ inhibit.
func (a *APU) writeFrameCounter(value uint8) {
	a.frameMode = value&0x80 != 0
	a.frameIRQEnable = value&0x40 == 0
	if !a.frameIRQEnable {
		a.frameIRQFlag = false
	}
	a.frameCounter = 0
	if a.frameMode {
		a.clockLengthCounters()
	}
}

// ReadStatus reads the APU status register ($4015). Reading clears the
// frame IRQ flag.
func (a *APU) ReadStatus() uint8 {
	var status uint8
	for i := range a.lengthCounter {
		if a.lengthCounter[i] > 0 {
			status |= 1 << uint(i)
		}
	}
	if a.frameIRQFlag {
		status |= 0x40
	}
	if a.dmcIRQFlag {
		status |= 0x80
	}
	a.frameIRQFlag = false
	return status
}

// FrameIRQPending reports whether the frame sequencer's IRQ line is asserted.
func (a *APU) FrameIRQPending() bool {
	return a.frameIRQFlag
}

// DMCIRQPending reports whether the DMC's IRQ line is asserted.
func (a *APU) DMCIRQPending() bool {
	return a.dmcIRQFlag
}
