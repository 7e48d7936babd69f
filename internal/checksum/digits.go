package checksum

var verhoeffD = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

var verhoeffP = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

var verhoeffInv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// Verhoeff returns the Verhoeff check digit to append to digits.
func Verhoeff(digits string) (int, error) {
	if err := requireDigits("verhoeff", digits); err != nil {
		return 0, err
	}
	c := 0
	for n := 0; n < len(digits); n++ {
		d := int(digits[len(digits)-1-n] - '0')
		c = verhoeffD[c][verhoeffP[(n+1)%8][d]]
	}
	return verhoeffInv[c], nil
}

var dammMatrix = [10][10]int{
	{0, 3, 1, 7, 5, 9, 8, 6, 4, 2},
	{7, 0, 9, 2, 1, 5, 4, 8, 6, 3},
	{4, 2, 0, 6, 8, 7, 1, 3, 5, 9},
	{1, 7, 5, 0, 9, 8, 3, 4, 2, 6},
	{6, 1, 2, 3, 0, 4, 5, 9, 7, 8},
	{3, 6, 7, 4, 2, 0, 9, 5, 8, 1},
	{5, 8, 6, 9, 7, 2, 0, 1, 3, 4},
	{8, 9, 4, 5, 3, 6, 2, 0, 1, 7},
	{9, 4, 3, 8, 6, 1, 7, 2, 0, 5},
	{2, 5, 8, 1, 4, 3, 6, 7, 9, 0},
}

// Damm returns the interim digit of the Damm quasigroup over digits, which
// is the check digit to append. A string that already ends with its check
// digit yields 0.
func Damm(digits string) (int, error) {
	if err := requireDigits("damm", digits); err != nil {
		return 0, err
	}
	interim := 0
	for i := 0; i < len(digits); i++ {
		interim = dammMatrix[interim][digits[i]-'0']
	}
	return interim, nil
}

// Luhn returns the Luhn check digit to append to digits.
func Luhn(digits string) (int, error) {
	if err := requireDigits("luhn", digits); err != nil {
		return 0, err
	}
	return (10 - luhnSum(digits, true)%10) % 10, nil
}

// LuhnValid reports whether digits, including its trailing check digit,
// passes the Luhn test.
func LuhnValid(digits string) bool {
	if requireDigits("luhn", digits) != nil {
		return false
	}
	return luhnSum(digits, false)%10 == 0
}

// luhnSum doubles every second digit from the right. When doubleFirst is set
// the rightmost digit is doubled, as it is when the check digit is still
// missing.
func luhnSum(digits string, doubleFirst bool) int {
	sum := 0
	for n := 0; n < len(digits); n++ {
		d := int(digits[len(digits)-1-n] - '0')
		if (n%2 == 0) == doubleFirst {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum
}

// WeightedSum returns the sum of each digit multiplied by the weight at the
// same position. Weights repeat when digits is longer than the table.
func WeightedSum(digits string, weights []int) (int, error) {
	if err := requireDigits("weighted-sum", digits); err != nil {
		return 0, err
	}
	if len(weights) == 0 {
		return 0, inputError("weighted-sum", digits, "empty weight table")
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i%len(weights)]
	}
	return sum, nil
}

// WeightsFromRight expands a repeating weight pattern into n weights aligned
// so that the rightmost position receives pattern[0].
func WeightsFromRight(n int, pattern ...int) []int {
	if n <= 0 || len(pattern) == 0 {
		return nil
	}
	weights := make([]int, n)
	for i := 0; i < n; i++ {
		weights[n-1-i] = pattern[i%len(pattern)]
	}
	return weights
}
