package checksum

import "fmt"

// ISO7064Mod97_10 returns the two check digits that ISO/IEC 7064 MOD 97-10
// generates for digits.
func ISO7064Mod97_10(digits string) (string, error) {
	if err := requireDigits("iso7064-mod97-10", digits); err != nil {
		return "", err
	}
	p := 0
	for i := 0; i < len(digits); i++ {
		p = ((p + int(digits[i]-'0')) * 10) % 97
	}
	p = (p * 10) % 97
	return fmt.Sprintf("%02d", (97-p+1)%97), nil
}

// ISO7064Mod11_2 returns the check character ('0'-'9' or 'X') that ISO/IEC
// 7064 MOD 11-2 generates for digits.
func ISO7064Mod11_2(digits string) (string, error) {
	if err := requireDigits("iso7064-mod11-2", digits); err != nil {
		return "", err
	}
	const outputs = "0123456789X"
	p := 0
	for i := 0; i < len(digits); i++ {
		p = ((p + int(digits[i]-'0')) * 2) % 11
	}
	c := (11 - p + 1) % 11
	return outputs[c : c+1], nil
}
