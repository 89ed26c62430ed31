package register

const (
	tempEnOffset = 6
	adcEnOffset  = 7
)

// TempCfgReg enables the auxiliary ADC and the temperature sensor.
// The temperature sensor is sampled on ADC channel 3, so it needs ADC enabled.
type TempCfgReg struct {
	Temperature OnOff
	ADC         OnOff
}

func DecodeTempCfgReg(raw byte) (TempCfgReg, error) {
	return TempCfgReg{
		Temperature: bitState(raw, tempEnOffset),
		ADC:         bitState(raw, adcEnOffset),
	}, nil
}

func (r TempCfgReg) Encode() byte {
	return r.ADC.at(adcEnOffset) | r.Temperature.at(tempEnOffset)
}
