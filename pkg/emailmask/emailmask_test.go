package emailmask_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textmask"
	"github.com/dmitrymomot/textmask/pkg/emailmask"
	"github.com/dmitrymomot/textmask/pkg/mask"
)

func TestMask_Shape(t *testing.T) {
	require.True(t, emailmask.Mask.IsDynamic())

	tests := []struct {
		name        string
		raw         string
		caret       int
		placeholder string
		traps       []int
	}{
		{"single local char", "a", 1, "_@ .", []int{1, 2, 3, 4}},
		{"complete address", "a@a.com", 7, "_@_.___", []int{1, 2, 3, 4}},
		{"second at typed", "a@@", 3, "_@_.", []int{2, 3, 4}},
		{"whitespace ignored", "a @ b", 5, "_@_.", []int{1, 2, 3, 4}},
		{"second dot before caret end", "a@b..", 2, "_@_._", []int{1, 2, 4}},
		{"second dot at end", "a@b..", 5, "_@_.", []int{1, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := emailmask.Mask.Resolve(tt.raw, mask.Context{
				CurrentCaretPosition: tt.caret,
				PlaceholderChar:      '_',
			})
			require.NoError(t, err)
			require.False(t, res.Disabled)
			assert.Equal(t, tt.placeholder, mask.Placeholder(res.Slots, '_'))
			if diff := cmp.Diff(tt.traps, res.CaretTraps); diff != "" {
				t.Errorf("caret traps mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMask_TopLevelDomainRejectsDots(t *testing.T) {
	res, err := emailmask.Mask.Resolve("a@b.c", mask.Context{CurrentCaretPosition: 5, PlaceholderChar: '_'})
	require.NoError(t, err)
	require.Len(t, res.Slots, 5)

	tld := res.Slots[4]
	assert.True(t, tld.IsPattern())
	assert.True(t, tld.Accepts('c'))
	assert.False(t, tld.Accepts('.'))
	assert.False(t, tld.Accepts(' '))

	domain := res.Slots[2]
	assert.True(t, domain.Accepts('.'))
}

func TestPipe(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		cfg      textmask.PipeConfig
		want     string
		rejected bool
	}{
		{
			name:  "passes initial value",
			value: "a@ .",
			cfg:   textmask.PipeConfig{RawValue: "a", CurrentCaretPosition: 1, PlaceholderChar: '_'},
			want:  "a@ .",
		},
		{
			name:  "keeps only the first at sign",
			value: "a@@b.c",
			cfg:   textmask.PipeConfig{RawValue: "a@@b.c", CurrentCaretPosition: 6, PlaceholderChar: '_'},
			want:  "a@b.c",
		},
		{
			name:  "empties when only separators remain",
			value: "_@ .",
			cfg:   textmask.PipeConfig{RawValue: "@ .", PreviousConformedValue: "a@ .", PlaceholderChar: '_'},
			want:  "",
		},
		{
			name:     "rejects double dot",
			value:    "a@a..com",
			cfg:      textmask.PipeConfig{RawValue: "a@a..com", CurrentCaretPosition: 5, PreviousConformedValue: "a@a.com", PlaceholderChar: '_'},
			rejected: true,
		},
		{
			name:     "rejects at-dot away from caret",
			value:    "m@.k.",
			cfg:      textmask.PipeConfig{RawValue: "m@.k.", CurrentCaretPosition: 3, PreviousConformedValue: "m@k.", PlaceholderChar: '_'},
			rejected: true,
		},
		{
			name:  "allows at-dot right after caret",
			value: "a@.",
			cfg:   textmask.PipeConfig{RawValue: "a@@ .", CurrentCaretPosition: 2, PreviousConformedValue: "a@ .", PlaceholderChar: '_'},
			want:  "a@.",
		},
		{
			name:     "rejects dot after deleting at sign",
			value:    "af.",
			cfg:      textmask.PipeConfig{RawValue: "af.", CurrentCaretPosition: 1, PreviousConformedValue: "a@f.", PlaceholderChar: '_'},
			rejected: true,
		},
		{
			name:  "trims trailing dot when domain already has one",
			value: "a@a.com.",
			cfg:   textmask.PipeConfig{RawValue: "a@a.com.", CurrentCaretPosition: 4, PreviousConformedValue: "a@a.com", PlaceholderChar: '_'},
			want:  "a@a.com",
		},
		{
			name:  "keeps trailing dot while typing at the end",
			value: "a@a.com.",
			cfg:   textmask.PipeConfig{RawValue: "a@a.com.", CurrentCaretPosition: 8, PreviousConformedValue: "a@a.com", PlaceholderChar: '_'},
			want:  "a@a.com.",
		},
		{
			name:  "keeps single trailing dot",
			value: "a@acom.",
			cfg:   textmask.PipeConfig{RawValue: "a@acom.", CurrentCaretPosition: 4, PreviousConformedValue: "a@acom", PlaceholderChar: '_'},
			want:  "a@acom.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := emailmask.Pipe(tt.value, tt.cfg)
			assert.Equal(t, tt.rejected, res.Rejected)
			if !tt.rejected {
				assert.Equal(t, tt.want, res.Value)
			}
			assert.Empty(t, res.IndexesOfPipedChars)
		})
	}
}

func TestBundle_FirstKeystroke(t *testing.T) {
	field := textmask.NewTextField("")
	in := textmask.New(field, textmask.WithBundle(emailmask.Bundle()))

	field.Type("a")
	require.NoError(t, in.Update())

	assert.Equal(t, "a@ .", field.Value())
	assert.Equal(t, 1, field.CaretPosition())
	assert.Equal(t, "_@ .", in.State().PreviousPlaceholder)
}

func TestBundle_Editing(t *testing.T) {
	type edit struct {
		value string
		caret int
	}

	tests := []struct {
		name      string
		before    *edit
		edit      edit
		wantValue string
		wantCaret int
	}{
		{
			name:      "second at sign after the first",
			edit:      edit{"a@@", 2},
			wantValue: "a@.",
			wantCaret: 2,
		},
		{
			name:      "doubled dot before the top-level domain",
			before:    &edit{"a@a.com", 7},
			edit:      edit{"a@a..com", 4},
			wantValue: "a@a.com",
			wantCaret: 4,
		},
		{
			name:      "at sign typed into the domain",
			before:    &edit{"a@a.com", 7},
			edit:      edit{"a@a@.com", 4},
			wantValue: "a@a.com",
			wantCaret: 3,
		},
		{
			name:      "at sign typed into the top-level domain",
			before:    &edit{"a@a.com", 7},
			edit:      edit{"a@a.co@m", 7},
			wantValue: "a@a.com",
			wantCaret: 6,
		},
		{
			name:      "doubled trailing dot",
			before:    &edit{"a@a.", 4},
			edit:      edit{"a@a..", 5},
			wantValue: "a@a.",
			wantCaret: 4,
		},
		{
			name:      "doubled dot inside a dotted domain",
			before:    &edit{"a@a.a.com", 9},
			edit:      edit{"a@a..a.com", 5},
			wantValue: "a@a.a.com",
			wantCaret: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := textmask.NewTextField("")
			in := textmask.New(field, textmask.WithBundle(emailmask.Bundle()))

			if tt.before != nil {
				field.Edit(tt.before.value, tt.before.caret)
				require.NoError(t, in.Update())
				require.Equal(t, tt.before.value, field.Value())
				require.Equal(t, tt.before.caret, field.CaretPosition())
			}

			field.Edit(tt.edit.value, tt.edit.caret)
			require.NoError(t, in.Update())

			assert.Equal(t, tt.wantValue, field.Value())
			assert.Equal(t, tt.wantCaret, field.CaretPosition())
			assert.Equal(t, tt.wantValue, in.State().PreviousConformedValue)
		})
	}
}
