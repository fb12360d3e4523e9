package subscript

// Slice returns, in yield order, the zero-based indices a Python-style
// slice(start, stop, step) selects from a sequence of the given length.
// start, stop, and step are nil when the corresponding slice component was
// omitted. step, if given, must be non-zero.
func Slice(length int, start, stop, step *int64) ([]int, error) {
	st := int64(1)
	if step != nil {
		if *step == 0 {
			return nil, ErrZeroStep
		}
		st = *step
	}
	if length == 0 {
		return []int{}, nil
	}
	if st > 0 {
		return forwardSlice(length, start, stop, st), nil
	}
	return reverseSlice(length, start, stop, -st), nil
}

func forwardSlice(length int, start, stop *int64, step int64) []int {
	startIdx := clamp(0, 0, int64(length))
	if start != nil {
		startIdx = clamp(normalize(*start, length), 0, int64(length))
	}
	stopIdx := int64(length)
	if stop != nil {
		stopIdx = clamp(normalize(*stop, length), 0, int64(length))
	}

	var out []int
	for i := startIdx; i < stopIdx; i += step {
		out = append(out, int(i))
	}
	if out == nil {
		out = []int{}
	}
	return out
}

func reverseSlice(length int, start, stop *int64, step int64) []int {
	startIdx := int64(length - 1)
	if start != nil {
		s := normalize(*start, length)
		if s < 0 {
			// A start before index 0 selects nothing when stepping backwards.
			return []int{}
		}
		startIdx = clamp(s, 0, int64(length-1))
	}

	// A stop more negative than -length (or an omitted stop) means "include
	// index 0"; otherwise clamp and compare to start.
	includeZero := stop == nil
	var stopIdx int64
	if stop != nil {
		if *stop < -int64(length) {
			includeZero = true
		} else {
			stopIdx = clamp(normalize(*stop, length), 0, int64(length-1))
		}
	}

	var out []int
	if includeZero {
		for i := startIdx; i >= 0; i -= step {
			out = append(out, int(i))
		}
	} else if startIdx > stopIdx {
		for i := startIdx; i > stopIdx; i -= step {
			out = append(out, int(i))
		}
	}
	if out == nil {
		out = []int{}
	}
	return out
}
