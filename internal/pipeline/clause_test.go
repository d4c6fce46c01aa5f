package pipeline

import "testing"

func TestExtractClause(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "colon form", input: "install as per (IRC: SP: 84)", want: "IRC: SP: 84"},
		{name: "plain number", input: "refer IRC 67.", want: "IRC 67"},
		{name: "lowercase", input: "see irc 119 annex", want: "irc 119 annex"},
		{name: "absent", input: "no citation here", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractClause(tc.input); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
