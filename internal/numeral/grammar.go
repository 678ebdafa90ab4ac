package numeral

// The integer part is read one decimal place at a time, from thousands down
// to units. Each place is written with three symbols (one, five, ten) and
// walked by the same state machine:
//
//	start  --one-->  ones1 --one--> ones2 --one--> ones3
//	start  --five--> five  --one--> five1 --one--> five2 --one--> five3
//	ones1  --five--> subtractive (4)
//	ones1  --ten-->  subtractive (9)
//
// A symbol with no edge closes the current place. If no lower place can
// start with it, the numeral is invalid.

type place struct {
	one, five, ten rune
	weight         int
}

var places = [...]place{
	{one: 'M', weight: 1000},
	{one: 'C', five: 'D', ten: 'M', weight: 100},
	{one: 'X', five: 'L', ten: 'C', weight: 10},
	{one: 'I', five: 'V', ten: 'X', weight: 1},
}

type state uint8

const (
	stateStart state = iota
	stateOnes1
	stateOnes2
	stateOnes3
	stateFive
	stateFive1
	stateFive2
	stateFive3
	stateSubtractive
)

type symbolClass uint8

const (
	classNone symbolClass = iota
	classOne
	classFive
	classTen
)

type edge struct {
	from  state
	class symbolClass
}

type target struct {
	to    state
	digit int // value of the place after taking the edge
}

var transitions = map[edge]target{
	{stateStart, classOne}:  {stateOnes1, 1},
	{stateOnes1, classOne}:  {stateOnes2, 2},
	{stateOnes2, classOne}:  {stateOnes3, 3},
	{stateOnes1, classFive}: {stateSubtractive, 4},
	{stateStart, classFive}: {stateFive, 5},
	{stateFive, classOne}:   {stateFive1, 6},
	{stateFive1, classOne}:  {stateFive2, 7},
	{stateFive2, classOne}:  {stateFive3, 8},
	{stateOnes1, classTen}:  {stateSubtractive, 9},
}

func (p place) classify(r rune) symbolClass {
	switch {
	case r == p.one:
		return classOne
	case p.five != 0 && r == p.five:
		return classFive
	case p.ten != 0 && r == p.ten:
		return classTen
	}
	return classNone
}

// step feeds one symbol to the machine for place p.
func step(p place, s state, r rune) (target, bool) {
	t, ok := transitions[edge{s, p.classify(r)}]
	return t, ok
}

// parseWhole validates the integer symbols and returns their value.
// The error names the run from the start of the failing place through the
// offending symbol, e.g. "IIII" in "XIIII".
func parseWhole(text string, symbols []rune) (int, error) {
	total := 0
	pi := 0
	st := stateStart
	digit := 0
	runStart := 0

	for i, r := range symbols {
		for {
			if pi == len(places) {
				return 0, invalidNumeral(text, string(symbols[runStart:i+1]), "illegal repeat or symbol order")
			}

			if t, ok := step(places[pi], st, r); ok {
				if st == stateStart {
					runStart = i
				}
				st, digit = t.to, t.digit
				break
			}

			total += digit * places[pi].weight
			pi++
			st, digit = stateStart, 0
		}
	}

	if pi < len(places) {
		total += digit * places[pi].weight
	}

	return total, nil
}
