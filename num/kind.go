package num

import "strconv"

// Kind identifies one of the five numeric representations. Kinds are totally
// ordered from narrowest to widest, and any value converts losslessly into any
// wider kind.
type Kind int8

const (
	KindNatural Kind = iota
	KindInteger
	KindRational
	KindReal
	KindComplex

	nkinds = iota
)

var kindnames = [nkinds]string{
	KindNatural:  "natural",
	KindInteger:  "integer",
	KindRational: "rational",
	KindReal:     "real",
	KindComplex:  "complex",
}

func (k Kind) String() string {
	if k < 0 || k >= nkinds {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Wider returns the wider of two kinds.
func Wider(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// promotions declares the conversion for every ordered pair of distinct kinds.
// Each mixed-kind operator converts through this table, so there is exactly
// one rule per unordered pair and a op b always agrees with b op a.
var promotions = []struct {
	from, to Kind
	lift     func(Number) Number
}{
	{KindNatural, KindInteger, func(n Number) Number {
		return Integer{n.(Natural).v}
	}},
	{KindNatural, KindRational, func(n Number) Number {
		return Rational{Integer{n.(Natural).v}, Integer{1}}
	}},
	{KindNatural, KindReal, func(n Number) Number {
		return Real{float64(n.(Natural).v)}
	}},
	{KindNatural, KindComplex, func(n Number) Number {
		return Complex{Real{float64(n.(Natural).v)}, Real{}}
	}},
	{KindInteger, KindRational, func(n Number) Number {
		return Rational{n.(Integer), Integer{1}}
	}},
	{KindInteger, KindReal, func(n Number) Number {
		return Real{float64(n.(Integer).v)}
	}},
	{KindInteger, KindComplex, func(n Number) Number {
		return Complex{Real{float64(n.(Integer).v)}, Real{}}
	}},
	{KindRational, KindReal, func(n Number) Number {
		return n.(Rational).Real()
	}},
	{KindRational, KindComplex, func(n Number) Number {
		return Complex{n.(Rational).Real(), Real{}}
	}},
	{KindReal, KindComplex, func(n Number) Number {
		return Complex{n.(Real), Real{}}
	}},
}

// lifts is promotions indexed by (from, to). The diagonal is nil; converting
// a value to its own kind is the identity.
var lifts [nkinds][nkinds]func(Number) Number

func init() {
	for _, p := range promotions {
		if p.from >= p.to {
			panic("num: promotion from " + p.from.String() + " to " + p.to.String() + " is not widening")
		}
		if lifts[p.from][p.to] != nil {
			panic("num: duplicate promotion from " + p.from.String() + " to " + p.to.String())
		}
		lifts[p.from][p.to] = p.lift
	}
	for from := Kind(0); from < nkinds; from++ {
		for to := from + 1; to < nkinds; to++ {
			if lifts[from][to] == nil {
				panic("num: missing promotion from " + from.String() + " to " + to.String())
			}
		}
	}
}

// Convert converts n to kind k. k must be no narrower than n's kind;
// otherwise the result is a *KindError.
func Convert(n Number, k Kind) (Number, error) {
	from := n.Kind()
	switch {
	case from == k:
		return n, nil
	case from > k:
		return nil, &KindError{Op: "convert to " + k.String(), Kind: from}
	}
	return lifts[from][k](n), nil
}

// promote converts both operands to the wider of their kinds.
func promote(a, b Number) (Number, Number, Kind) {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka < kb:
		return lifts[ka][kb](a), b, kb
	case kb < ka:
		return a, lifts[kb][ka](b), ka
	}
	return a, b, ka
}
