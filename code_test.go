package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{"", `""`},
		{"0", `"0"`},
		{"110110", `"110110"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); row.expect != actual {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestCode_IsPrefixOf(t *testing.T) {
	type testRow struct {
		a, b   Code
		expect bool
	}

	testData := [...]testRow{
		{"1", "10", true},
		{"10", "1", false},
		{"10", "10", true},
		{"0", "10", false},
		{"", "0", true},
	}
	for _, row := range testData {
		if actual := row.a.IsPrefixOf(row.b); row.expect != actual {
			t.Errorf("%s.IsPrefixOf(%s): expected %v, got %v", row.a, row.b, row.expect, actual)
		}
	}
}

func TestCode_IsValid(t *testing.T) {
	for _, hc := range []Code{"0", "1", "0110"} {
		if !hc.IsValid() {
			t.Errorf("expected %s to be valid", hc)
		}
	}
	for _, hc := range []Code{"", "2", "01a"} {
		if hc.IsValid() {
			t.Errorf("expected %s to be invalid", hc)
		}
	}
}

func TestSymbol_String(t *testing.T) {
	if expect, actual := "'a'", Symbol('a').String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "InvalidSymbol", InvalidSymbol.String(); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "héllo", StringOf(SymbolsOf("héllo")); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
