package register

import "fmt"

// ErrUndecodable is returned when a raw byte holds a field value with no defined variant.
var ErrUndecodable = fmt.Errorf("undecodable register value")

// ErrIllegalMode is returned when low-power and high-resolution are both enabled.
var ErrIllegalMode = fmt.Errorf("low-power and high-resolution modes are mutually exclusive")

// ErrValueOutOfRange is returned when a 7-bit magnitude has bit 7 set.
var ErrValueOutOfRange = fmt.Errorf("value does not fit in 7 bits")
