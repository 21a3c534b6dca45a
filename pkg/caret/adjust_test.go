package caret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textmask/pkg/caret"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

func placeholder(t *testing.T, pattern string) string {
	t.Helper()
	res, err := mask.MustParse(pattern).Resolve("", mask.Context{})
	require.NoError(t, err)
	return mask.Placeholder(res.Slots, '_')
}

func TestAdjust(t *testing.T) {
	phone := placeholder(t, "(999) 999-9999")
	short := placeholder(t, "(999) 9")

	tests := []struct {
		name     string
		in       caret.Input
		expected int
	}{
		{
			name: "programmatic reset puts the caret at the start",
			in: caret.Input{
				PreviousConformedValue: "",
				ConformedValue:         "________-___",
				RawValue:               "",
				Placeholder:            placeholder(t, "99999999-999"),
				CurrentCaretPosition:   3,
			},
			expected: 0,
		},
		{
			name: "caret after the last change on replacement",
			in: caret.Input{
				PreviousConformedValue: "3333",
				ConformedValue:         "2938",
				RawValue:               "2938",
				Placeholder:            "____",
				CurrentCaretPosition:   4,
			},
			expected: 4,
		},
		{
			name: "rejected character keeps the caret in place",
			in: caret.Input{
				PreviousConformedValue: "(123) ___-____",
				ConformedValue:         "(123) ___-____",
				RawValue:               "(123) ___-f____",
				Placeholder:            phone,
				CurrentCaretPosition:   11,
			},
			expected: 10,
		},
		{
			name: "rejected character on a literal moves to the next editable slot",
			in: caret.Input{
				PreviousConformedValue: "(___)      ___-____",
				ConformedValue:         "(___)      ___-____",
				RawValue:               "(___))      ___-____",
				Placeholder:            placeholder(t, "(999)      999-9999"),
				CurrentCaretPosition:   5,
			},
			expected: 11,
		},
		{
			name: "deleting a literal that is reinserted holds the caret",
			in: caret.Input{
				PreviousConformedValue: "(123) ___-____",
				ConformedValue:         "(123) ___-____",
				RawValue:               "(123 ___-____",
				Placeholder:            phone,
				CurrentCaretPosition:   4,
			},
			expected: 4,
		},
		{
			name: "filling the last slot of a group jumps past the literals",
			in: caret.Input{
				PreviousConformedValue: "(12_) ___-____",
				ConformedValue:         "(123) ___-____",
				RawValue:               "(123_) ___-____",
				Placeholder:            phone,
				CurrentCaretPosition:   4,
			},
			expected: 6,
		},
		{
			name: "filling the last slot of a short mask",
			in: caret.Input{
				PreviousConformedValue: "(12_) _",
				ConformedValue:         "(123) _",
				RawValue:               "(123_) _",
				Placeholder:            short,
				CurrentCaretPosition:   4,
			},
			expected: 6,
		},
		{
			name: "inserting in the middle of a group stays in the group",
			in: caret.Input{
				PreviousConformedValue: "(12_) 7",
				ConformedValue:         "(132) _",
				RawValue:               "(132_) 7",
				Placeholder:            short,
				CurrentCaretPosition:   3,
			},
			expected: 3,
		},
		{
			name: "deleting the first slot of a group moves back to the previous group",
			in: caret.Input{
				PreviousConformedValue: "(124) 3",
				ConformedValue:         "(124) _",
				RawValue:               "(124) ",
				Placeholder:            short,
				CurrentCaretPosition:   6,
			},
			expected: 4,
		},
		{
			name: "deleting the first slot of a group after a partial group",
			in: caret.Input{
				PreviousConformedValue: "(12_) 3",
				ConformedValue:         "(12_) _",
				RawValue:               "(12_) ",
				Placeholder:            short,
				CurrentCaretPosition:   6,
			},
			expected: 4,
		},
		{
			name: "first character typed into an empty field",
			in: caret.Input{
				PreviousConformedValue: "",
				ConformedValue:         "(2__) ___-____",
				RawValue:               "2",
				Placeholder:            phone,
				CurrentCaretPosition:   1,
			},
			expected: 2,
		},
		{
			name: "no-guide output clamps to its length",
			in: caret.Input{
				PreviousConformedValue: "",
				ConformedValue:         "(2",
				RawValue:               "2",
				Placeholder:            phone,
				CurrentCaretPosition:   1,
			},
			expected: 2,
		},
		{
			name: "negative caret",
			in: caret.Input{
				PreviousConformedValue: "(1",
				ConformedValue:         "(12",
				RawValue:               "(12",
				Placeholder:            phone,
				CurrentCaretPosition:   -4,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, caret.Adjust(tt.in))
		})
	}
}

func TestAdjustCaretTraps(t *testing.T) {
	t.Run("trap stops the caret before trailing literals", func(t *testing.T) {
		in := caret.Input{
			ConformedValue:       "1--__",
			RawValue:             "1",
			Placeholder:          "_--__",
			CurrentCaretPosition: 1,
		}
		assert.Equal(t, 3, caret.Adjust(in))

		in.CaretTrapIndexes = []int{1}
		assert.Equal(t, 1, caret.Adjust(in))
	})

	t.Run("currency trap after the decimal separator", func(t *testing.T) {
		res, err := mask.MustParse("$9999.[]99").Resolve("", mask.Context{})
		require.NoError(t, err)
		require.Equal(t, []int{6}, res.CaretTraps)

		got := caret.Adjust(caret.Input{
			PreviousConformedValue: "$123_.__",
			PreviousPlaceholder:    "$____.__",
			ConformedValue:         "$1234.__",
			RawValue:               "$1234_.__",
			Placeholder:            "$____.__",
			CurrentCaretPosition:   5,
			CaretTrapIndexes:       res.CaretTraps,
		})
		assert.Equal(t, 6, got)
	})
}

func TestAdjustPipedChars(t *testing.T) {
	// A pipe prefixed "1) " to the conformed value "1_"; the prefix digit must
	// not be taken for the character the user typed.
	in := caret.Input{
		PreviousConformedValue: "",
		ConformedValue:         "1) 1_",
		RawValue:               "1",
		Placeholder:            "__",
		CurrentCaretPosition:   1,
		IndexesOfPipedChars:    []int{0, 1, 2},
	}
	assert.Equal(t, 4, caret.Adjust(in))

	in.IndexesOfPipedChars = nil
	assert.Equal(t, 1, caret.Adjust(in))
}
