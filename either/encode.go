package either

import "encoding/json"

// Encoding is transparent: only the active case's payload is emitted, with
// no wrapper tag, so the output is indistinguishable from a value of the
// payload's own type.

func (e StringOrStruct[S]) MarshalJSON() ([]byte, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseString:
		return json.Marshal(e.str)
	case CaseStruct:
		return json.Marshal(e.obj)
	}
}

func (e StringOrStruct[S]) MarshalYAML() (any, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseString:
		return e.str, nil
	case CaseStruct:
		return e.obj, nil
	}
}

func (e StringOrStructOrVec[S, V]) MarshalJSON() ([]byte, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseString:
		return json.Marshal(e.str)
	case CaseStruct:
		return json.Marshal(e.obj)
	case CaseVec:
		return json.Marshal(e.vec)
	}
}

func (e StringOrStructOrVec[S, V]) MarshalYAML() (any, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseString:
		return e.str, nil
	case CaseStruct:
		return e.obj, nil
	case CaseVec:
		return e.vec, nil
	}
}

func (e SingleOrVec[S]) MarshalJSON() ([]byte, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseSingle:
		return json.Marshal(e.single)
	case CaseVec:
		return json.Marshal(e.vec)
	}
}

func (e SingleOrVec[S]) MarshalYAML() (any, error) {
	switch e.cas {
	default:
		return nil, ErrNotSet
	case CaseSingle:
		return e.single, nil
	case CaseVec:
		return e.vec, nil
	}
}
