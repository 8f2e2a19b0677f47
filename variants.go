package coerce

// This file derives the OrNull and OrFail families from the
// boolean-returning coercions. OrNull treats nullish input as a valid
// "no value" result, reported as a nil pointer; OrFail translates the
// false flag into an *Error matching ErrCoercion.

// ToStringOrNull is ToString with nullish input succeeding as nil instead
// of "".
func ToStringOrNull(v Value, opts ...Option) (*string, bool) {
	if IsNullish(v) {
		return nil, true
	}
	s, ok := ToString(v, opts...)
	if !ok {
		return nil, false
	}
	return &s, true
}

// ToStringOrFail is ToString with failure raised as an error.
func ToStringOrFail(v Value, opts ...Option) (string, error) {
	s, ok := ToString(v, opts...)
	if !ok {
		return "", NewInvalidArgumentError("ToStringOrFail", v.kind)
	}
	return s, nil
}

// ToStringOrNullOrFail combines the OrNull and OrFail behaviors.
func ToStringOrNullOrFail(v Value, opts ...Option) (*string, error) {
	s, ok := ToStringOrNull(v, opts...)
	if !ok {
		return nil, NewInvalidArgumentError("ToStringOrNullOrFail", v.kind)
	}
	return s, nil
}

// ToIntOrNull is ToInt with nullish input succeeding as nil instead of
// failing.
func ToIntOrNull(v Value, opts ...Option) (*int64, bool) {
	if IsNullish(v) {
		return nil, true
	}
	n, ok := ToInt(v, opts...)
	if !ok {
		return nil, false
	}
	return &n, true
}

// ToIntOrFail is ToInt with failure raised as an error.
func ToIntOrFail(v Value, opts ...Option) (int64, error) {
	n, ok := ToInt(v, opts...)
	if !ok {
		return 0, NewInvalidArgumentError("ToIntOrFail", v.kind)
	}
	return n, nil
}

// ToIntOrNullOrFail combines the OrNull and OrFail behaviors.
func ToIntOrNullOrFail(v Value, opts ...Option) (*int64, error) {
	n, ok := ToIntOrNull(v, opts...)
	if !ok {
		return nil, NewInvalidArgumentError("ToIntOrNullOrFail", v.kind)
	}
	return n, nil
}

// ToFloatOrNull is ToFloat with nullish input succeeding as nil instead of
// failing.
func ToFloatOrNull(v Value, opts ...Option) (*float64, bool) {
	if IsNullish(v) {
		return nil, true
	}
	f, ok := ToFloat(v, opts...)
	if !ok {
		return nil, false
	}
	return &f, true
}

// ToFloatOrFail is ToFloat with failure raised as an error.
func ToFloatOrFail(v Value, opts ...Option) (float64, error) {
	f, ok := ToFloat(v, opts...)
	if !ok {
		return 0, NewInvalidArgumentError("ToFloatOrFail", v.kind)
	}
	return f, nil
}

// ToFloatOrNullOrFail combines the OrNull and OrFail behaviors.
func ToFloatOrNullOrFail(v Value, opts ...Option) (*float64, error) {
	f, ok := ToFloatOrNull(v, opts...)
	if !ok {
		return nil, NewInvalidArgumentError("ToFloatOrNullOrFail", v.kind)
	}
	return f, nil
}

// ToBoolOrNull is ToBool with nullish input succeeding as nil instead of
// failing. Like every ToBool form it panics with an *Error matching
// ErrLogic when WithRejectBool is supplied, before the nullish bypass.
func ToBoolOrNull(v Value, opts ...Option) (*bool, bool) {
	if NewOptions(opts...).RejectBool {
		panic(NewLogicError("ToBoolOrNull"))
	}
	if IsNullish(v) {
		return nil, true
	}
	b, ok := toBool(v)
	if !ok {
		return nil, false
	}
	return &b, true
}

// ToBoolOrFail is ToBool with failure raised as an error. The
// WithRejectBool misuse panic propagates unchanged.
func ToBoolOrFail(v Value, opts ...Option) (bool, error) {
	b, ok := ToBool(v, opts...)
	if !ok {
		return false, NewInvalidArgumentError("ToBoolOrFail", v.kind)
	}
	return b, nil
}

// ToBoolOrNullOrFail combines the OrNull and OrFail behaviors.
func ToBoolOrNullOrFail(v Value, opts ...Option) (*bool, error) {
	b, ok := ToBoolOrNull(v, opts...)
	if !ok {
		return nil, NewInvalidArgumentError("ToBoolOrNullOrFail", v.kind)
	}
	return b, nil
}

// ToArrayKeyOrNull is ToArrayKey with nullish input succeeding as nil
// instead of failing.
func ToArrayKeyOrNull(v Value, opts ...Option) (*ArrayKey, bool) {
	if IsNullish(v) {
		return nil, true
	}
	k, ok := ToArrayKey(v, opts...)
	if !ok {
		return nil, false
	}
	return &k, true
}

// ToArrayKeyOrFail is ToArrayKey with failure raised as an error.
func ToArrayKeyOrFail(v Value, opts ...Option) (ArrayKey, error) {
	k, ok := ToArrayKey(v, opts...)
	if !ok {
		return ArrayKey{}, NewInvalidArgumentError("ToArrayKeyOrFail", v.kind)
	}
	return k, nil
}

// ToArrayKeyOrNullOrFail combines the OrNull and OrFail behaviors.
func ToArrayKeyOrNullOrFail(v Value, opts ...Option) (*ArrayKey, error) {
	k, ok := ToArrayKeyOrNull(v, opts...)
	if !ok {
		return nil, NewInvalidArgumentError("ToArrayKeyOrNullOrFail", v.kind)
	}
	return k, nil
}
