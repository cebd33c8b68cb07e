package constants

// KnownConstants lists the built-in named constants the parser recognizes
// as ast.Constant rather than ast.Variable, and the decimal value (as a
// literal string, handed to decimal.NewFromString by the evaluator) each
// one carries. Names are matched case-insensitively.
var KnownConstants = map[string]string{
	"pi":      "3.14159265358979323846",
	"tau":     "6.28318530717958647693",
	"e":       "2.71828182845904523536",
	"phi":     "1.61803398874989484820",
	"c":       "299792458",         // speed of light, m/s
	"g":       "9.80665",           // standard gravity, m/s^2
	"avogadro": "6.02214076e23",
	"h":       "6.62607015e-34", // Planck constant, J*s
	"k":       "1.380649e-23",   // Boltzmann constant, J/K
}

// IsKnownConstant reports whether name (already lowercased by the caller)
// names a built-in constant.
func IsKnownConstant(name string) bool {
	_, ok := KnownConstants[name]
	return ok
}
