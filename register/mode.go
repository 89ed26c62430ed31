package register

import "fmt"

// Mode is the operating mode derived from CTRL_REG1.LPen and CTRL_REG4.HR.
type Mode byte

const (
	// HighResolution outputs 12-bit data.
	HighResolution Mode = iota
	// Normal outputs 10-bit data.
	Normal
	// LowPower outputs 8-bit data.
	LowPower
)

func (m Mode) String() string {
	switch m {
	case HighResolution:
		return "high-resolution"
	case Normal:
		return "normal"
	case LowPower:
		return "low-power"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}

// ModeFrom derives the operating mode from the low-power and high-resolution bits.
func ModeFrom(lowPower, highResolution OnOff) (Mode, error) {
	switch {
	case lowPower == On && highResolution == On:
		return 0, ErrIllegalMode
	case lowPower == On:
		return LowPower, nil
	case highResolution == On:
		return HighResolution, nil
	default:
		return Normal, nil
	}
}

// Scale converts left-justified raw samples into acceleration counts.
type Scale struct {
	Shift      uint
	Multiplier int32
}

// shifts drop the padding bits below the mode's resolution.
var shifts = [...]uint{
	HighResolution: 4,
	Normal:         6,
	LowPower:       8,
}

// multipliers are indexed by mode, then full scale.
var multipliers = [...][4]int32{
	HighResolution: {1, 1, 4, 12},
	Normal:         {4, 8, 16, 48},
	LowPower:       {16, 32, 64, 192},
}

// ScaleFor looks up the shift and multiplier for a mode and a full-scale range.
func ScaleFor(m Mode, fs FullScale) (Scale, error) {
	if int(m) >= len(multipliers) {
		return Scale{}, fmt.Errorf("%w: mode %d", ErrUndecodable, byte(m))
	}
	if fs > FullScale16G {
		return Scale{}, fmt.Errorf("%w: full scale %d", ErrUndecodable, byte(fs))
	}
	return Scale{Shift: shifts[m], Multiplier: multipliers[m][fs]}, nil
}

// Apply shifts raw arithmetically and multiplies it.
func (s Scale) Apply(raw int16) int32 {
	return int32(raw>>s.Shift) * s.Multiplier
}
