package units

// Physical constants used for conversions between SI and geometric units
const (
	CC        = 299792458.0 // speed of light in m/s
	GG        = 6.67384e-11 // Newton's constant in m^3 / (kg s^2)
	SolarMass = 1.98855e30  // solar mass in kg

	// Scale factors for the solar-mass based unit system
	KG     = 1 / SolarMass
	Metre  = CC * CC / (GG * SolarMass)
	Second = CC * Metre

	MPC = 3.08568e22 // megaparsec in metres
)
