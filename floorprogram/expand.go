// SPDX-License-Identifier: MIT

package floorprogram

// DefaultMaxPossibilities is the branch cap Kludwisz's DungeonDataParser
// hard-codes; it is a policy knob tied to how many seed-inversion runs a
// downstream driver can afford, so it is exposed here as a default
// rather than a constant.
const DefaultMaxPossibilities = 128

// ExpandOptions configures MutableSkip expansion.
type ExpandOptions struct {
	// MaxPossibilities bounds the number of concrete programs Expand may
	// produce before it gives up with ErrTooManyPossibilities. Zero
	// means DefaultMaxPossibilities.
	MaxPossibilities int
}

func (o ExpandOptions) maxPossibilities() int {
	if o.MaxPossibilities <= 0 {
		return DefaultMaxPossibilities
	}
	return o.MaxPossibilities
}

// GetAllPossibilities parses sequence and expands every MutableSkip run
// into its concrete call counts, returning one Program per combination.
func GetAllPossibilities(sequence string, opts ExpandOptions) ([]Program, error) {
	return Expand(Parse(sequence), opts)
}

// Expand branches every MutableSkip instruction in instructions into a
// concrete Skip (or its absence, for a zero count), returning one
// Program per combination in instruction order.
func Expand(instructions []Instruction, opts ExpandOptions) ([]Program, error) {
	max := opts.maxPossibilities()
	var results []Program
	var current []Instruction
	if err := expandFrom(instructions, current, 0, &results, max); err != nil {
		return nil, err
	}
	return results, nil
}

func expandFrom(original []Instruction, current []Instruction, start int, results *[]Program, max int) error {
	idx := start
	for idx < len(original) {
		instr := original[idx]

		if instr.Kind == MutableSkip {
			for calls := instr.MinCalls; calls <= instr.MaxCalls; calls++ {
				branch := append([]Instruction(nil), current...)
				if calls != 0 {
					branch = append(branch, Instruction{Kind: Skip, MinCalls: calls, MaxCalls: calls})
				}
				if idx+1 < len(original) {
					if err := expandFrom(original, branch, idx+1, results, max); err != nil {
						return err
					}
				} else {
					if len(*results) >= max {
						return ErrTooManyPossibilities
					}
					*results = append(*results, Program(branch))
				}
				if len(*results) > max {
					return ErrTooManyPossibilities
				}
			}
			return nil
		}

		current = append(current, instr)
		idx++
		if idx >= len(original) {
			if len(*results) >= max {
				return ErrTooManyPossibilities
			}
			*results = append(*results, Program(append([]Instruction(nil), current...)))
		}
	}

	if len(original) == 0 {
		*results = append(*results, Program(nil))
	}

	return nil
}

// Validate panics if p still carries a MutableSkip: Expand must always
// run before a Program reaches the reverser builder, so this indicates a
// caller bug, not bad input.
func (p Program) Validate() {
	for _, instr := range p {
		if instr.Kind == MutableSkip {
			panic(errUnexpectedMutableSkip)
		}
	}
}
