package units

import (
	"strings"
	"time"

	mlunit "github.com/martinlindhe/unit"
	"github.com/shopspring/decimal"
)

// Def describes a single recognized unit: its dimension and the linear
// factor that converts a value in this unit to the canonical base unit for
// that dimension (meter, kilogram, second, bit, radian, ...). Temperature is
// the one non-linear case and carries its own ToBase/FromBase closures
// instead of a bare factor.
type Def struct {
	Canonical  string
	Dimension  DimensionVector
	Factor     decimal.Decimal // value_in_base = value_in_unit * Factor
	ToBase     func(decimal.Decimal) decimal.Decimal
	FromBase   func(decimal.Decimal) decimal.Decimal
	Prefixable bool // SI prefixes (k, M, m, µ, ...) may combine with this symbol
}

// registry maps every recognized alias (already lowercased for
// case-insensitive lookup) to its Def. exactCase holds the few aliases that
// must match exact case (the `'` and `"` angle marks) and is consulted
// before this table — see resolve.go.
var registry map[string]Def
var exactCase map[string]Def

func init() {
	registry = make(map[string]Def)
	exactCase = make(map[string]Def)
	addLengthUnits()
	addMassUnits()
	addVolumeUnits()
	addAreaUnits()
	addTimeUnits()
	addTemperatureUnits()
	addInformationUnits()
	addAngleUnits()
	addCurrentUnits()
	addAmountUnits()
	addLuminousUnits()
}

func linear(factor float64) decimal.Decimal {
	return decimal.NewFromFloat(factor)
}

func addAliases(canonical string, dim DimensionVector, factor decimal.Decimal, prefixable bool, aliases ...string) {
	def := Def{Canonical: canonical, Dimension: dim, Factor: factor, Prefixable: prefixable}
	for _, a := range aliases {
		registry[strings.ToLower(a)] = def
	}
}

// addAliasesExact registers a unit under aliases that must match exact
// case (used for the `'` arcminute and `"` arcsecond marks).
func addAliasesExact(canonical string, dim DimensionVector, factor decimal.Decimal, prefixable bool, aliases ...string) {
	def := Def{Canonical: canonical, Dimension: dim, Factor: factor, Prefixable: prefixable}
	for _, a := range aliases {
		exactCase[a] = def
	}
}

// addLengthUnits registers length units with meter as the base, using
// martinlindhe/unit's constants for the conversion factors.
func addLengthUnits() {
	addAliases("m", dimLength, linear(1), true, "m", "meter", "meters", "metre", "metres")
	addAliases("km", dimLength, linear(float64(mlunit.Kilometer/mlunit.Meter)), false, "km", "kilometer", "kilometers", "kilometre", "kilometres")
	addAliases("cm", dimLength, linear(float64(mlunit.Centimeter/mlunit.Meter)), false, "cm", "centimeter", "centimeters", "centimetre", "centimetres")
	addAliases("mm", dimLength, linear(float64(mlunit.Millimeter/mlunit.Meter)), false, "mm", "millimeter", "millimeters", "millimetre", "millimetres")
	addAliases("ft", dimLength, linear(float64(mlunit.Foot/mlunit.Meter)), false, "ft", "foot", "feet")
	addAliases("in", dimLength, linear(float64(mlunit.Inch/mlunit.Meter)), false, "in", "inch", "inches")
	addAliases("yd", dimLength, linear(float64(mlunit.Yard/mlunit.Meter)), false, "yd", "yard", "yards")
	addAliases("mi", dimLength, linear(float64(mlunit.Mile/mlunit.Meter)), false, "mi", "mile", "miles")
	addAliases("nmi", dimLength, linear(float64(mlunit.NauticalMile/mlunit.Meter)), false, "nmi", "nautical mile", "nautical miles")
	addAliases("um", dimLength, linear(float64(mlunit.Micrometer/mlunit.Meter)), false, "um", "micrometer", "micrometers", "micron")
	addAliases("nm", dimLength, linear(float64(mlunit.Nanometer/mlunit.Meter)), false, "nm", "nanometer", "nanometers")

	// "mi" is registered case-insensitively, so "Mi" also resolves to mile;
	// the binary prefix "Mi" applies only in front of an information unit
	// ("MiB").
}

// addAreaUnits registers compound and named area units against meter^2.
func addAreaUnits() {
	sqMeterFactor := decimal.NewFromInt(1)
	addAliases("m2", dimArea, sqMeterFactor, false, "m2", "sqm", "square meter", "square meters")
	addAliases("acre", dimArea, linear(4046.8564224), false, "acre", "acres")
	addAliases("hectare", dimArea, linear(10000), false, "hectare", "hectares", "ha")
}

// addMassUnits registers mass units with kilogram as the base.
func addMassUnits() {
	addAliases("kg", dimMass, linear(1), true, "kg", "kilogram", "kilograms")
	addAliases("g", dimMass, linear(float64(mlunit.Gram/mlunit.Kilogram)), true, "g", "gram", "grams")
	addAliases("mg", dimMass, linear(float64(mlunit.Milligram/mlunit.Kilogram)), false, "mg", "milligram", "milligrams")
	addAliases("t", dimMass, linear(float64(mlunit.Tonne/mlunit.Kilogram)), false, "t", "tonne", "tonnes", "metric ton", "metric tons")
	addAliases("lb", dimMass, linear(float64(mlunit.AvoirdupoisPound/mlunit.Kilogram)), false, "lb", "lbs", "pound", "pounds")
	addAliases("oz", dimMass, linear(float64(mlunit.AvoirdupoisOunce/mlunit.Kilogram)), false, "oz", "ounce", "ounces")
	addAliases("pg", dimMass, linear(float64(mlunit.Gram/mlunit.Kilogram)*1e-12), false, "pg", "picogram", "picograms")
	addAliases("ug", dimMass, linear(float64(mlunit.Gram/mlunit.Kilogram)*1e-6), false, "ug", "microgram", "micrograms")
}

// addVolumeUnits registers volume units anchored to the cubic meter, not the
// liter itself: dimVolume is the same DimensionVector as length cubed, so a
// composition derived purely from multiplying length terms (`m^3`) must land
// on the same base scale as an explicit liter literal. Every factor below is
// still expressed liter-relative and then folded down by the exact
// liter-to-cubic-meter ratio (1 L = 0.001 m^3) so `1 m^3` and `1000 l`
// compare equal instead of `1 m^3 == 1 l`.
const literInCubicMeters = 0.001

func addVolumeUnits() {
	addAliases("l", dimVolume, linear(literInCubicMeters), true, "l", "liter", "liters", "litre", "litres")
	addAliases("ml", dimVolume, linear(float64(mlunit.Milliliter/mlunit.Liter)*literInCubicMeters), false, "ml", "milliliter", "milliliters", "millilitre", "millilitres")
	addAliases("gal", dimVolume, linear(float64(mlunit.USLiquidGallon/mlunit.Liter)*literInCubicMeters), false, "gal", "gallon", "gallons")
	addAliases("pt", dimVolume, linear(float64(mlunit.USLiquidPint/mlunit.Liter)*literInCubicMeters), false, "pt", "pint", "pints")
	addAliases("qt", dimVolume, linear(float64(mlunit.USLiquidQuart/mlunit.Liter)*literInCubicMeters), false, "qt", "quart", "quarts")
	addAliases("cup", dimVolume, linear(float64(mlunit.USLegalCup/mlunit.Liter)*literInCubicMeters), false, "cup", "cups")
	addAliases("tbsp", dimVolume, linear(float64(mlunit.USTableSpoon/mlunit.Liter)*literInCubicMeters), false, "tbsp", "tablespoon", "tablespoons")
	addAliases("tsp", dimVolume, linear(float64(mlunit.USTeaSpoon/mlunit.Liter)*literInCubicMeters), false, "tsp", "teaspoon", "teaspoons")
}

// addTimeUnits registers duration units with second as the base, using
// stdlib time.Duration constants for the factors (no pack dependency wraps
// calendar-free duration conversion; time.Duration is the canonical Go
// source of truth for these factors, so no third-party library improves on it).
func addTimeUnits() {
	addAliases("s", dimTime, linear(1), true, "s", "sec", "secs", "second", "seconds")
	addAliases("ms", dimTime, linear(float64(time.Millisecond)/float64(time.Second)), false, "ms", "millisecond", "milliseconds")
	addAliases("us", dimTime, linear(float64(time.Microsecond)/float64(time.Second)), false, "us", "microsecond", "microseconds")
	addAliases("ns", dimTime, linear(float64(time.Nanosecond)/float64(time.Second)), false, "ns", "nanosecond", "nanoseconds")
	addAliases("min", dimTime, linear(float64(time.Minute)/float64(time.Second)), false, "min", "mins", "minute", "minutes")
	addAliases("h", dimTime, linear(float64(time.Hour)/float64(time.Second)), false, "h", "hr", "hrs", "hour", "hours")
	addAliases("day", dimTime, linear(24*float64(time.Hour)/float64(time.Second)), false, "d", "day", "days")
	addAliases("week", dimTime, linear(7*24*float64(time.Hour)/float64(time.Second)), false, "wk", "week", "weeks")
	addAliases("year", dimTime, linear(365.25*24*float64(time.Hour)/float64(time.Second)), false, "yr", "year", "years")
}

// addTemperatureUnits registers Celsius/Fahrenheit/Kelvin with their affine
// (non-multiplicative) conversions to Kelvin, the base unit.
func addTemperatureUnits() {
	registry["k"] = Def{
		Canonical: "K", Dimension: dimTemperature,
		ToBase:   func(v decimal.Decimal) decimal.Decimal { return v },
		FromBase: func(v decimal.Decimal) decimal.Decimal { return v },
	}
	registry["kelvin"] = registry["k"]

	registry["c"] = Def{
		Canonical: "C", Dimension: dimTemperature,
		ToBase:   func(v decimal.Decimal) decimal.Decimal { return v.Add(decimal.NewFromFloat(273.15)) },
		FromBase: func(v decimal.Decimal) decimal.Decimal { return v.Sub(decimal.NewFromFloat(273.15)) },
	}
	registry["celsius"] = registry["c"]
	registry["°c"] = registry["c"]

	registry["f"] = Def{
		Canonical: "F", Dimension: dimTemperature,
		ToBase: func(v decimal.Decimal) decimal.Decimal {
			celsius := v.Sub(decimal.NewFromInt(32)).Mul(decimal.NewFromInt(5)).Div(decimal.NewFromInt(9))
			return celsius.Add(decimal.NewFromFloat(273.15))
		},
		FromBase: func(v decimal.Decimal) decimal.Decimal {
			celsius := v.Sub(decimal.NewFromFloat(273.15))
			return celsius.Mul(decimal.NewFromInt(9)).Div(decimal.NewFromInt(5)).Add(decimal.NewFromInt(32))
		},
	}
	registry["fahrenheit"] = registry["f"]
	registry["°f"] = registry["f"]
}

// addInformationUnits registers bit/byte with both SI (1000-based) and
// binary (1024-based) prefixes, since no pack dependency models information
// quantities (spec.md's pragmatic eighth dimension).
func addInformationUnits() {
	addAliases("bit", dimInformation, linear(1), true, "bit", "bits")
	addAliases("B", dimInformation, linear(8), true, "b", "byte", "bytes")
}

// addAngleUnits registers radian as the base plus degree/arcminute/
// arcsecond/gradian, the pragmatic ninth dimension spec.md calls for.
func addAngleUnits() {
	const pi = 3.14159265358979323846
	addAliases("rad", dimAngle, linear(1), false, "rad", "radian", "radians")
	addAliases("deg", dimAngle, linear(pi/180), false, "deg", "degree", "degrees")
	addAliases("grad", dimAngle, linear(pi/200), false, "grad", "gradian", "gradians")
	addAliases("arcmin", dimAngle, linear(pi/180/60), false, "arcmin", "arcminute", "arcminutes")
	addAliases("arcsec", dimAngle, linear(pi/180/3600), false, "arcsec", "arcsecond", "arcseconds")
	// Case-sensitive single-letter forms: "'" arcminute, `"` arcsecond.
	addAliasesExact("arcmin", dimAngle, linear(pi/180/60), false, "'")
	addAliasesExact("arcsec", dimAngle, linear(pi/180/3600), false, "\"")
}

// addCurrentUnits registers the ampere, completing the SI base set even
// though no builtin function currently produces electrical quantities.
func addCurrentUnits() {
	addAliases("A", dimCurrent, linear(1), true, "a", "amp", "amps", "ampere", "amperes")
}

// addAmountUnits registers the mole.
func addAmountUnits() {
	addAliases("mol", dimAmount, linear(1), true, "mol", "mole", "moles")
}

// addLuminousUnits registers the candela.
func addLuminousUnits() {
	addAliases("cd", dimLuminous, linear(1), true, "cd", "candela", "candelas")
}
