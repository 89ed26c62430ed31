package register

import "fmt"

const (
	intXLOffset    = 0
	intXHOffset    = 1
	intYLOffset    = 2
	intYHOffset    = 3
	intZLOffset    = 4
	intZHOffset    = 5
	int6DOffset    = 6
	intAOIOffset   = 7
	intIAOffset    = 6
	magnitudeMask  = 0b0111_1111
	magnitudeLimit = 0b1000_0000
)

// InterruptCombination selects how enabled events combine into an interrupt (AOI).
type InterruptCombination byte

const (
	CombineOr  InterruptCombination = 0
	CombineAnd InterruptCombination = 1
)

func (c InterruptCombination) String() string {
	if c == CombineAnd {
		return "and"
	}
	return "or"
}

// IntCfg configures an inertial interrupt generator (INT1_CFG, INT2_CFG).
type IntCfg struct {
	XLow         OnOff
	XHigh        OnOff
	YLow         OnOff
	YHigh        OnOff
	ZLow         OnOff
	ZHigh        OnOff
	SixDirection OnOff
	Combination  InterruptCombination
}

func DecodeIntCfg(raw byte) (IntCfg, error) {
	return IntCfg{
		XLow:         bitState(raw, intXLOffset),
		XHigh:        bitState(raw, intXHOffset),
		YLow:         bitState(raw, intYLOffset),
		YHigh:        bitState(raw, intYHOffset),
		ZLow:         bitState(raw, intZLOffset),
		ZHigh:        bitState(raw, intZHOffset),
		SixDirection: bitState(raw, int6DOffset),
		Combination:  InterruptCombination(bitState(raw, intAOIOffset)),
	}, nil
}

func (r IntCfg) Encode() byte {
	return OnOff(r.Combination).at(intAOIOffset) |
		r.SixDirection.at(int6DOffset) |
		r.ZHigh.at(intZHOffset) |
		r.ZLow.at(intZLOffset) |
		r.YHigh.at(intYHOffset) |
		r.YLow.at(intYLOffset) |
		r.XHigh.at(intXHOffset) |
		r.XLow.at(intXLOffset)
}

// IntSrc is the read-only interrupt source register (INT1_SRC, INT2_SRC).
// Reading it clears a latched interrupt.
type IntSrc struct {
	XLow   bool
	XHigh  bool
	YLow   bool
	YHigh  bool
	ZLow   bool
	ZHigh  bool
	Active bool
}

func DecodeIntSrc(raw byte) (IntSrc, error) {
	return IntSrc{
		XLow:   bitSet(raw, intXLOffset),
		XHigh:  bitSet(raw, intXHOffset),
		YLow:   bitSet(raw, intYLOffset),
		YHigh:  bitSet(raw, intYHOffset),
		ZLow:   bitSet(raw, intZLOffset),
		ZHigh:  bitSet(raw, intZHOffset),
		Active: bitSet(raw, intIAOffset),
	}, nil
}

// IntThreshold is the 7-bit threshold of an interrupt generator. One LSB is
// 16 mg at ±2g, 32 mg at ±4g, 62 mg at ±8g and 186 mg at ±16g.
type IntThreshold struct {
	value byte
}

// NewIntThreshold returns ErrValueOutOfRange when v has bit 7 set.
func NewIntThreshold(v byte) (IntThreshold, error) {
	var t IntThreshold
	err := t.Set(v)
	return t, err
}

func (t *IntThreshold) Set(v byte) error {
	if v&magnitudeLimit != 0 {
		return fmt.Errorf("%w: interrupt threshold %#x", ErrValueOutOfRange, v)
	}
	t.value = v
	return nil
}

func (t IntThreshold) Value() byte {
	return t.value
}

func DecodeIntThreshold(raw byte) (IntThreshold, error) {
	return IntThreshold{value: raw & magnitudeMask}, nil
}

func (t IntThreshold) Encode() byte {
	return t.value & magnitudeMask
}

// IntDuration is the 7-bit minimum event duration of an interrupt generator,
// counted in 1/ODR steps.
type IntDuration struct {
	value byte
}

// NewIntDuration returns ErrValueOutOfRange when v has bit 7 set.
func NewIntDuration(v byte) (IntDuration, error) {
	var d IntDuration
	err := d.Set(v)
	return d, err
}

func (d *IntDuration) Set(v byte) error {
	if v&magnitudeLimit != 0 {
		return fmt.Errorf("%w: interrupt duration %#x", ErrValueOutOfRange, v)
	}
	d.value = v
	return nil
}

func (d IntDuration) Value() byte {
	return d.value
}

func DecodeIntDuration(raw byte) (IntDuration, error) {
	return IntDuration{value: raw & magnitudeMask}, nil
}

func (d IntDuration) Encode() byte {
	return d.value & magnitudeMask
}
