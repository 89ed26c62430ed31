package register

// OnOff is the two-state flag shared by most register fields.
type OnOff byte

const (
	Off OnOff = 0
	On  OnOff = 1
)

func (o OnOff) String() string {
	if o == On {
		return "on"
	}
	return "off"
}

// Bool reports whether the flag is set.
func (o OnOff) Bool() bool {
	return o == On
}

// OnOffFrom converts a bool into a flag.
func OnOffFrom(b bool) OnOff {
	if b {
		return On
	}
	return Off
}

func bitState(raw byte, offset uint) OnOff {
	if (raw>>offset)&1 == 1 {
		return On
	}
	return Off
}

func bitSet(raw byte, offset uint) bool {
	return (raw>>offset)&1 == 1
}

func (o OnOff) at(offset uint) byte {
	if o == On {
		return 1 << offset
	}
	return 0
}
