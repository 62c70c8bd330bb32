package intent

import "testing"

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"15000 euros", 15000},
		{"15k euros", 15000},
		{"15k€", 15000},
		{"15 K€", 15000},
		{"budget de 15 000 €", 15000},
		{"budget de 15.000 euros", 15000},
		{"1,5k euros", 1500},
		{"environ 20K EUROS", 20000},
		{"traiteur en Île-de-France pour 15k euros", 15000},
		{"1000 euros", 1000000},
		{"1001 euros", 1001},
		{"pour 2 enfants et 8000 euro", 8000},
		{"2147483647 euros", 2147483647},
	}

	for _, tc := range cases {
		got := ExtractBudget(tc.input)
		if got == nil {
			t.Fatalf("ExtractBudget(%q)=nil, want %d", tc.input, tc.want)
		}
		if got.Max != tc.want {
			t.Fatalf("ExtractBudget(%q)=%d, want %d", tc.input, got.Max, tc.want)
		}
	}
}

func TestExtractBudget_NoAmount(t *testing.T) {
	for _, input := range []string{"", "un photographe à Lyon", "15000", "0 euros", "pour 120 personnes", "9300000000000000000 euros", "2147483648 euros"} {
		if got := ExtractBudget(input); got != nil {
			t.Fatalf("ExtractBudget(%q)=%+v, want nil", input, got)
		}
	}
}

func TestExtractBudget_ShorthandEquivalence(t *testing.T) {
	short := ExtractBudget("15k euros")
	long := ExtractBudget("15000 euros")
	if short == nil || long == nil || *short != *long {
		t.Fatalf("expected equal budgets, got %+v and %+v", short, long)
	}
}
