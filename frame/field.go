package frame

type FieldType uint8

const (
	Int64Field FieldType = iota
	Float64Field
	StringField
	CategoricalField
)

func (f FieldType) String() string {
	switch f {
	case Int64Field:
		return "Int64"
	case Float64Field:
		return "Float64"
	case StringField:
		return "String"
	case CategoricalField:
		return "Categorical"
	default:
		return ""
	}
}

func (f FieldType) Numeric() bool {
	return f == Int64Field || f == Float64Field
}

func (f FieldType) Textual() bool {
	return f == StringField || f == CategoricalField
}
