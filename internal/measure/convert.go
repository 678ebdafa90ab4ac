package measure

import "math"

// Modern is the Convert target meaning "the SI base unit of the source".
const Modern = "modern"

// Quantity is an amount labelled with the unit it is expressed in.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

type unitPair struct {
	from, to string
}

// exactRatios holds historically exact pairs: how many `to` make one `from`.
// Lookups also match the reversed pair.
var exactRatios = map[unitPair]float64{
	{"libra", "uncia"}: 12,
}

// ToModern converts amount of the named unit to the category's base unit
// and reports which base unit that is.
func (r *Registry) ToModern(amount float64, name string) (float64, BaseUnit, error) {
	if err := checkAmount(amount); err != nil {
		return 0, BaseUnit{}, err
	}
	u, err := r.Lookup(name)
	if err != nil {
		return 0, BaseUnit{}, err
	}
	return amount * u.Factor, u.Base(), nil
}

// ToRomanUnit converts an amount in the category's base unit to the named unit.
func (r *Registry) ToRomanUnit(amountInBase float64, name string) (float64, error) {
	if err := checkAmount(amountInBase); err != nil {
		return 0, err
	}
	u, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	if u.Factor == 0 {
		return 0, &Error{Code: ErrCodeZeroFactor, Message: "unit has a zero factor", Unit: u.Name}
	}
	return amountInBase / u.Factor, nil
}

// ConvertBetween converts amount from one unit to another of the same
// category: amount × factor(from) ÷ factor(to). libra↔uncia uses the exact
// ratio 12; a unit converted to itself is returned unchanged. All other
// pairs are approximate.
func (r *Registry) ConvertBetween(amount float64, from, to string) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}
	src, err := r.Lookup(from)
	if err != nil {
		return 0, err
	}
	dst, err := r.Lookup(to)
	if err != nil {
		return 0, err
	}
	if src.Category != dst.Category {
		return 0, incompatibleUnits(src, dst)
	}

	if src.Name == dst.Name {
		return amount, nil
	}
	if ratio, ok := exactRatios[unitPair{src.Name, dst.Name}]; ok {
		return amount * ratio, nil
	}
	if ratio, ok := exactRatios[unitPair{dst.Name, src.Name}]; ok {
		return amount / ratio, nil
	}

	base := amount * src.Factor
	if dst.Factor == 0 {
		return 0, &Error{Code: ErrCodeZeroFactor, Message: "unit has a zero factor", Unit: dst.Name}
	}
	return base / dst.Factor, nil
}

// Convert is the single conversion entry point. With target Modern the
// result is in the SI base unit and labelled with its name ("meter",
// "kilogram", "liter"); otherwise it is ConvertBetween labelled with target.
func (r *Registry) Convert(amount float64, from, target string) (Quantity, error) {
	if target == Modern {
		v, base, err := r.ToModern(amount, from)
		if err != nil {
			return Quantity{}, err
		}
		return Quantity{Value: v, Unit: base.Name}, nil
	}

	v, err := r.ConvertBetween(amount, from, target)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: target}, nil
}

func checkAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return invalidAmount(amount)
	}
	return nil
}
