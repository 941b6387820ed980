package either

// StringOrStruct accepts either a bare string or a structured value of type
// S on the wire. Exactly one case is active after construction; the zero
// value holds no case at all.
type StringOrStruct[S any] struct {
	cas CaseEnum
	str string
	obj S
}

func NewStringOrStructFromString[S any](s string) StringOrStruct[S] {
	var e StringOrStruct[S]
	e.SetString(s)
	return e
}

func NewStringOrStructFromStruct[S any](v S) StringOrStruct[S] {
	var e StringOrStruct[S]
	e.SetStruct(v)
	return e
}

func (e StringOrStruct[S]) Case() CaseEnum { return e.cas }

func (e StringOrStruct[S]) StringValue() (string, bool) {
	return e.str, e.cas == CaseString
}

func (e StringOrStruct[S]) StructValue() (S, bool) {
	return e.obj, e.cas == CaseStruct
}

// SetString replaces the active case with String.
func (e *StringOrStruct[S]) SetString(s string) {
	var zero S
	e.cas, e.str, e.obj = CaseString, s, zero
}

// SetStruct replaces the active case with Struct.
func (e *StringOrStruct[S]) SetStruct(v S) {
	e.cas, e.str, e.obj = CaseStruct, "", v
}

// StringOrStructOrVec accepts a bare string, a structured value of type S,
// or a sequence value of type V on the wire.
type StringOrStructOrVec[S, V any] struct {
	cas CaseEnum
	str string
	obj S
	vec V
}

func NewStringOrStructOrVecFromString[S, V any](s string) StringOrStructOrVec[S, V] {
	var e StringOrStructOrVec[S, V]
	e.SetString(s)
	return e
}

func NewStringOrStructOrVecFromStruct[S, V any](v S) StringOrStructOrVec[S, V] {
	var e StringOrStructOrVec[S, V]
	e.SetStruct(v)
	return e
}

func NewStringOrStructOrVecFromVec[S, V any](v V) StringOrStructOrVec[S, V] {
	var e StringOrStructOrVec[S, V]
	e.SetVec(v)
	return e
}

func (e StringOrStructOrVec[S, V]) Case() CaseEnum { return e.cas }

func (e StringOrStructOrVec[S, V]) StringValue() (string, bool) {
	return e.str, e.cas == CaseString
}

func (e StringOrStructOrVec[S, V]) StructValue() (S, bool) {
	return e.obj, e.cas == CaseStruct
}

func (e StringOrStructOrVec[S, V]) VecValue() (V, bool) {
	return e.vec, e.cas == CaseVec
}

func (e *StringOrStructOrVec[S, V]) SetString(s string) {
	var zeroS S
	var zeroV V
	e.cas, e.str, e.obj, e.vec = CaseString, s, zeroS, zeroV
}

func (e *StringOrStructOrVec[S, V]) SetStruct(v S) {
	var zeroV V
	e.cas, e.str, e.obj, e.vec = CaseStruct, "", v, zeroV
}

func (e *StringOrStructOrVec[S, V]) SetVec(v V) {
	var zeroS S
	e.cas, e.str, e.obj, e.vec = CaseVec, "", zeroS, v
}

// SingleOrVec accepts either one S or a sequence of S on the wire.
type SingleOrVec[S any] struct {
	cas    CaseEnum
	single S
	vec    []S
}

func NewSingleOrVecFromSingle[S any](v S) SingleOrVec[S] {
	var e SingleOrVec[S]
	e.SetSingle(v)
	return e
}

func NewSingleOrVecFromVec[S any](vs []S) SingleOrVec[S] {
	var e SingleOrVec[S]
	e.SetVec(vs)
	return e
}

func (e SingleOrVec[S]) Case() CaseEnum { return e.cas }

func (e SingleOrVec[S]) SingleValue() (S, bool) {
	return e.single, e.cas == CaseSingle
}

func (e SingleOrVec[S]) VecValue() ([]S, bool) {
	return e.vec, e.cas == CaseVec
}

func (e *SingleOrVec[S]) SetSingle(v S) {
	e.cas, e.single, e.vec = CaseSingle, v, nil
}

func (e *SingleOrVec[S]) SetVec(vs []S) {
	var zero S
	e.cas, e.single, e.vec = CaseVec, zero, vs
}
