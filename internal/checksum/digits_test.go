package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerhoeff(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "236", want: 3},
		{input: "12345", want: 1},
		{input: "0", want: 4},
	}
	for _, tt := range tests {
		got, err := Verhoeff(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := Verhoeff("")
	assert.Error(t, err)
	_, err = Verhoeff("12a")
	assert.Error(t, err)
}

func TestDamm(t *testing.T) {
	got, err := Damm("572")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = Damm("5724")
	require.NoError(t, err)
	assert.Equal(t, 0, got, "a number ending in its check digit reduces to zero")

	got, err = Damm("12345")
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	_, err = Damm("")
	assert.Error(t, err)
}

func TestLuhn(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "7992739871", want: 3},
		{input: "123456", want: 6},
		{input: "1234560000078", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Luhn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, LuhnValid(tt.input+string(rune('0'+got))))
			assert.False(t, LuhnValid(tt.input+string(rune('0'+(got+1)%10))))
		})
	}

	assert.False(t, LuhnValid(""))
	assert.False(t, LuhnValid("79927398A3"))
}

func TestWeightedSum(t *testing.T) {
	sum, err := WeightedSum("8601111794", []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 40+24+0+2+7+6+5+28+27+8, sum)

	sum, err = WeightedSum("1111", []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 6, sum, "weights repeat")

	_, err = WeightedSum("12", nil)
	assert.Error(t, err)
	_, err = WeightedSum("1-2", []int{1})
	assert.Error(t, err)
}

func TestWeightsFromRight(t *testing.T) {
	assert.Equal(t, []int{3, 7, 1, 3, 7}, WeightsFromRight(5, 7, 3, 1))
	assert.Equal(t, []int{1, 3, 7}, WeightsFromRight(3, 7, 3, 1))
	assert.Equal(t, []int{7}, WeightsFromRight(1, 7, 3, 1), "rightmost takes the first weight")
	assert.Nil(t, WeightsFromRight(0, 7))
	assert.Nil(t, WeightsFromRight(3))
}
