package huffman

import (
	"reflect"
	"strings"
	"testing"
)

func TestCodeTable_Dump(t *testing.T) {
	table := MustNew(scenario2).CodeTable()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tLookup('_') = \"0\"\n",
		"\tLookup('o') = \"100\"\n",
		"\tLookup('a') = \"101\"\n",
		"\tLookup('t') = \"110\"\n",
		"\tLookup('e') = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeTable_String(t *testing.T) {
	expect := `{'o':"0", 'a':"1"}`
	actual := MustNew(scenario1).CodeTable().String()
	if expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	if actual := (CodeTable{}).String(); actual != "{}" {
		t.Errorf("wrong output:\n\texpect: {}\n\tactual: %s", actual)
	}
}

func TestCodeTable_Map(t *testing.T) {
	table := MustNew(scenario1).CodeTable()

	expect := map[Symbol]Code{'o': "0", 'a': "1"}
	actual := table.Map()
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("wrong output:\n\texpect: %v\n\tactual: %v", expect, actual)
	}

	actual['o'] = "111"
	if hc, _ := table.Lookup('o'); hc != "0" {
		t.Errorf("Map does not return a copy: Lookup('o') = %s", hc)
	}

	entries := table.Entries()
	entries[0].Code = "111"
	if hc, _ := table.Lookup('o'); hc != "0" {
		t.Errorf("Entries does not return a copy: Lookup('o') = %s", hc)
	}
}

func TestCodeTable_Lookup(t *testing.T) {
	table := MustNew(scenario2).CodeTable()
	if hc, found := table.Lookup('t'); !found || hc != "110" {
		t.Errorf("Lookup('t') = %s, %v", hc, found)
	}
	if hc, found := table.Lookup('z'); found || hc != "" {
		t.Errorf("Lookup('z') = %s, %v", hc, found)
	}
	if hc, found := (CodeTable{}).Lookup('a'); found || hc != "" {
		t.Errorf("empty Lookup('a') = %s, %v", hc, found)
	}
}
