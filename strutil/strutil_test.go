package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    string
		delim byte
		want  []string
	}{
		{name: "empty", in: "", delim: ',', want: []string{}},
		{name: "single", in: "abc", delim: ',', want: []string{"abc"}},
		{name: "fields", in: "a,b,c", delim: ',', want: []string{"a", "b", "c"}},
		{name: "empty fields kept", in: ",a,,b", delim: ',', want: []string{"", "a", "", "b"}},
		{name: "trailing delimiter", in: "a,b,", delim: ',', want: []string{"a", "b"}},
		{name: "only delimiter", in: ",", delim: ',', want: []string{""}},
		{name: "newlines become spaces", in: "a b\nc", delim: ' ', want: []string{"a", "b", "c"}},
		{name: "newline inside field", in: "x\ny,z", delim: ',', want: []string{"x y", "z"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.in, tc.delim))
		})
	}
}

func TestSplitFunc_Stops(t *testing.T) {
	var got []string
	SplitFunc("a:b:c", ':', func(field string) bool {
		got = append(got, field)

		return len(got) < 2
	})

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "step 3 of 10: ok", Format("step %d of %d: %s", 3, 10, "ok"))
	assert.Equal(t, "plain", Format("plain"))
}
