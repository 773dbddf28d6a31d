package comps

// sliceIndices resolves start:stop:step against length the way Python
// slices do: negative bounds count from the end, out-of-range bounds clamp,
// and the result is never an error. A zero step is treated as 1.
func sliceIndices(length, start, stop, step int) []int {
	if step == 0 {
		step = 1
	}

	var out []int
	if step > 0 {
		start = clampForward(start, length)
		stop = clampForward(stop, length)
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
		return out
	}

	start = clampBackward(start, length)
	stop = clampBackward(stop, length)
	for i := start; i > stop; i += step {
		out = append(out, i)
	}
	return out
}

func clampForward(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
	}
	if i > length {
		return length
	}
	return i
}

func clampBackward(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return -1
		}
	}
	if i >= length {
		return length - 1
	}
	return i
}
