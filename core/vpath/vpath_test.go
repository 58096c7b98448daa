package vpath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleJoin() {
	fmt.Println(Join(`0:\`, "docs"))
	fmt.Println(Join(`0:\docs`, "a.txt"))
	fmt.Println(Join(`0:\docs`, `1:\b.txt`))
	fmt.Println(Join(`0:\docs`, `\b.txt`))
	fmt.Println(Join(`0:\docs`, "x/y"))

	// Output: 0:\docs
	// 0:\docs\a.txt
	// 1:\b.txt
	// 0:\b.txt
	// 0:\docs\x\y
}

func ExampleResolve() {
	cwd, _ := Resolve(`0:\`, "docs", StayAtRoot)
	fmt.Println(cwd)
	cwd, _ = Resolve(cwd, "..", StayAtRoot)
	fmt.Println(cwd)
	cwd, _ = Resolve(cwd, "..", StayAtRoot)
	fmt.Println(cwd)

	// Output: 0:\docs
	// 0:\
	// 0:\
}

func TestParent(t *testing.T) {
	cases := map[string]struct {
		in     string
		want   string
		wantOk bool
	}{
		"root":              {`0:\`, `0:\`, false},
		"bare volume":       {`0:`, `0:`, false},
		"depth one":         {`0:\a`, `0:\`, true},
		"depth two":         {`0:\a\b`, `0:\a`, true},
		"trailing sep":      {`0:\a\b\`, `0:\a`, true},
		"many trailing sep": {`0:\a\\\`, `0:\`, true},
		"other volume":      {`disk1:\x`, `disk1:\`, true},
		"no volume":         {`plain`, `plain`, false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, ok := Parent(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOk, ok)
		})
	}
}

func TestResolve_rootPolicy(t *testing.T) {
	t.Run("stay", func(t *testing.T) {
		got, err := Resolve(`0:\`, "..", StayAtRoot)
		assert.NoError(t, err)
		assert.Equal(t, `0:\`, got)
	})

	t.Run("reject", func(t *testing.T) {
		got, err := Resolve(`0:\`, "..", RejectAboveRoot)
		assert.ErrorIs(t, err, ErrAboveRoot)
		assert.Equal(t, `0:\`, got, "cwd must be returned unchanged")
	})

	t.Run("reject only applies at root", func(t *testing.T) {
		got, err := Resolve(`0:\a`, "..", RejectAboveRoot)
		assert.NoError(t, err)
		assert.Equal(t, `0:\`, got)
	})
}

func TestResolve_ascentIsAssociative(t *testing.T) {
	for _, depthTwo := range []string{`0:\a\b`, `0:\a\b\`, `0:\long name\x.y`, `7:\q\r`} {
		t.Run(depthTwo, func(t *testing.T) {
			once, err := Resolve(depthTwo, "..", StayAtRoot)
			assert.NoError(t, err)
			twice, err := Resolve(once, "..", StayAtRoot)
			assert.NoError(t, err)

			depthOne, _ := Parent(depthTwo)
			expected, err := Resolve(depthOne, "..", StayAtRoot)
			assert.NoError(t, err)

			assert.Equal(t, expected, twice)
		})
	}
}

func TestResolve_roundTrip(t *testing.T) {
	for _, start := range []string{`0:\`, `0:\a`, `0:\a\b`} {
		t.Run(start, func(t *testing.T) {
			down, err := Resolve(start, "x", StayAtRoot)
			assert.NoError(t, err)
			up, err := Resolve(down, "..", StayAtRoot)
			assert.NoError(t, err)

			assert.Equal(t, start, up)
		})
	}
}

func TestJoin_noCollapsing(t *testing.T) {
	assert.Equal(t, `0:\a\.\b`, Join(`0:\a`, `.\b`))
	assert.Equal(t, `0:\a\..\b`, Join(`0:\a`, `..\b`))
	assert.Equal(t, `0:\a`, Join(`0:\a`, ""))
	assert.Equal(t, `1:\`, Join(`0:\a`, "1:"))
}

func TestSplit(t *testing.T) {
	cases := map[string]struct {
		in        string
		wantLabel string
		wantRest  string
		wantOk    bool
	}{
		"root":       {`0:\`, "0", "", true},
		"nested":     {`0:\a\b\`, "0", `a\b`, true},
		"slashes":    {`0:/a/b`, "0", `a\b`, true},
		"no volume":  {`a\b`, "", "", false},
		"bad label":  {`a b:\x`, "", "", false},
		"sep before": {`\a:b`, "", "", false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			label, rest, ok := Split(tc.in)
			assert.Equal(t, tc.wantLabel, label)
			assert.Equal(t, tc.wantRest, rest)
			assert.Equal(t, tc.wantOk, ok)
		})
	}
}

func TestToSlash(t *testing.T) {
	assert.Equal(t, "/", ToSlash(""))
	assert.Equal(t, "/a/b", ToSlash(`a\b`))
	assert.Equal(t, "/a/b", ToSlash(`\a\b\`))
	assert.Equal(t, "/b", ToSlash(`a\..\b`))
	assert.Equal(t, "/a", ToSlash(`a\.\`))
}

func TestToSlash_neverAboveRoot(t *testing.T) {
	for _, rest := range []string{".", "..", `a\..`, `..\..`, `a\..\..\..`, `.\.`, "a/.."} {
		assert.Equal(t, "/", ToSlash(rest), rest)
	}
}

func TestParseRootPolicy(t *testing.T) {
	p, err := ParseRootPolicy("stay")
	assert.NoError(t, err)
	assert.Equal(t, StayAtRoot, p)

	p, err = ParseRootPolicy("error")
	assert.NoError(t, err)
	assert.Equal(t, RejectAboveRoot, p)

	_, err = ParseRootPolicy("sideways")
	assert.Error(t, err)
}
