package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecencyKey(t *testing.T) {
	type testCase struct {
		input  string
		output Recency
	}

	testCases := []testCase{
		{input: "IMG-20250809-WA0038.jpg", output: Recency{Value: 38, Valid: true}},
		{input: "img-20250809-wa0041.jpg", output: Recency{Value: 41, Valid: true}},
		{input: "foo123.jpg", output: Recency{Value: 123, Valid: true}},
		{input: "a1b22c333.jpg", output: Recency{Value: 333, Valid: true}},
		{input: "WAX-12.jpg", output: Recency{Value: 12, Valid: true}},
		{input: "noNumbers.jpg", output: Recency{}},
		{input: "99999999999999999999999.jpg", output: Recency{Value: math.MaxInt64, Valid: true}},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.output, RecencyKey(tc.input), "Test %d failed", i)
	}
}

func TestRecencyCompare(t *testing.T) {
	none := Recency{}
	small := Recency{Value: 1, Valid: true}
	big := Recency{Value: 100, Valid: true}

	assert.Equal(t, 0, none.Compare(none))
	assert.Equal(t, -1, none.Compare(small))
	assert.Equal(t, 1, small.Compare(none))
	assert.Equal(t, -1, small.Compare(big))
	assert.Equal(t, 1, big.Compare(small))
	assert.Equal(t, 0, big.Compare(Recency{Value: 100, Valid: true}))
}
