package register

// Text forms follow String so YAML and JSON dumps show variant names.

func (o OnOff) MarshalText() ([]byte, error)                 { return []byte(o.String()), nil }
func (o OutputDataRate) MarshalText() ([]byte, error)        { return []byte(o.String()), nil }
func (m HighPassMode) MarshalText() ([]byte, error)          { return []byte(m.String()), nil }
func (c HighPassCutoff) MarshalText() ([]byte, error)        { return []byte(c.String()), nil }
func (f FilteredDataSelection) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (m SPIWireMode) MarshalText() ([]byte, error)           { return []byte(m.String()), nil }
func (s SelfTest) MarshalText() ([]byte, error)              { return []byte(s.String()), nil }
func (f FullScale) MarshalText() ([]byte, error)             { return []byte(f.String()), nil }
func (e Endianness) MarshalText() ([]byte, error)            { return []byte(e.String()), nil }
func (b BlockDataUpdate) MarshalText() ([]byte, error)       { return []byte(b.String()), nil }
func (b BootMode) MarshalText() ([]byte, error)              { return []byte(b.String()), nil }
func (c InterruptCombination) MarshalText() ([]byte, error)  { return []byte(c.String()), nil }
func (m Mode) MarshalText() ([]byte, error)                  { return []byte(m.String()), nil }
func (a Address) MarshalText() ([]byte, error)               { return []byte(a.String()), nil }
