package pretty

import "testing"

func TestInt3Digits(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, expected := range cases {
		if actual := Int3Digits(in); actual != expected {
			t.Errorf("Expected %v, got %v", expected, actual)
		}
	}
}
