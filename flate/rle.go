package flate

// clEntry is one emitted bit-length-alphabet symbol: a literal code length
// (0..15), or a repeat code (16/17/18) with its extra-bit payload.
type clEntry struct {
	sym, extra, bits int
}

// scanLengths run-length-encodes a concatenated lit/len + distance
// code-length vector using the (16, 17, 18) repeat codes, per §4.7 step 4
// "scan_tree". Code 16 repeats the previous nonzero length 3-6 times
// (2 extra bits); 17 repeats a zero run 3-10 times (3 extra bits); 18
// repeats a zero run 11-138 times (7 extra bits).
func scanLengths(lens []int) []clEntry {
	var out []clEntry
	i, n := 0, len(lens)
	for i < n {
		val := lens[i]
		run := 1
		for i+run < n && lens[i+run] == val {
			run++
		}

		if val == 0 {
			remaining := run
			for remaining > 0 {
				switch {
				case remaining >= 11:
					take := remaining
					if take > 138 {
						take = 138
					}
					out = append(out, clEntry{18, take - 11, 7})
					remaining -= take
				case remaining >= 3:
					take := remaining
					if take > 10 {
						take = 10
					}
					out = append(out, clEntry{17, take - 3, 3})
					remaining -= take
				default:
					out = append(out, clEntry{0, 0, 0})
					remaining--
				}
			}
		} else {
			out = append(out, clEntry{val, 0, 0})
			remaining := run - 1
			for remaining > 0 {
				if remaining >= 3 {
					take := remaining
					if take > 6 {
						take = 6
					}
					out = append(out, clEntry{16, take - 3, 2})
					remaining -= take
				} else {
					out = append(out, clEntry{val, 0, 0})
					remaining--
				}
			}
		}
		i += run
	}
	return out
}
