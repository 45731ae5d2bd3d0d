// Package filter drops rows that fail a conjunction of per-column
// validity checks. Each condition produces an ascending index list of
// matching rows via the ops kernels, the lists are ANDed together and
// the survivors are taken in original order.
package filter

type Operand uint8

const (
	RANGE Operand = iota // lo < col < hi
	RANGE_INCL           // lo <= col <= hi
	GT
	GE
	LT
	LE
	EQ
	GE_COLUMN // col >= other column
	NON_EMPTY // valid and, for textual columns, not blank
)

func (o Operand) String() string {
	switch o {
	case RANGE:
		return "RANGE"
	case RANGE_INCL:
		return "RANGE_INCL"
	case GT:
		return "GT"
	case GE:
		return "GE"
	case LT:
		return "LT"
	case LE:
		return "LE"
	case EQ:
		return "EQ"
	case GE_COLUMN:
		return "GE_COLUMN"
	case NON_EMPTY:
		return "NON_EMPTY"
	default:
		return ""
	}
}

// Condition is one clause of the row predicate. Side-effect free,
// evaluated independently per row. Null cells never satisfy a clause.
type Condition struct {
	Column string
	Op     Operand

	Value float64
	Hi    float64

	Other string // second column for GE_COLUMN
}

func Between(column string, lo, hi float64) Condition {
	return Condition{Column: column, Op: RANGE, Value: lo, Hi: hi}
}

func BetweenIncl(column string, lo, hi float64) Condition {
	return Condition{Column: column, Op: RANGE_INCL, Value: lo, Hi: hi}
}

func Gt(column string, v float64) Condition {
	return Condition{Column: column, Op: GT, Value: v}
}

func Ge(column string, v float64) Condition {
	return Condition{Column: column, Op: GE, Value: v}
}

func Lt(column string, v float64) Condition {
	return Condition{Column: column, Op: LT, Value: v}
}

func Le(column string, v float64) Condition {
	return Condition{Column: column, Op: LE, Value: v}
}

func Eq(column string, v float64) Condition {
	return Condition{Column: column, Op: EQ, Value: v}
}

func GeColumn(column, other string) Condition {
	return Condition{Column: column, Op: GE_COLUMN, Other: other}
}

func NonEmpty(column string) Condition {
	return Condition{Column: column, Op: NON_EMPTY}
}
