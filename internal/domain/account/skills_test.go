package account

import (
	"reflect"
	"testing"
)

func TestParseSkills(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "trims and drops trailing empty",
			in:   "Python, React,  Data Analysis,",
			want: []string{"Python", "React", "Data Analysis"},
		},
		{
			name: "keeps duplicates and order",
			in:   "Go,SQL,Go",
			want: []string{"Go", "SQL", "Go"},
		},
		{
			name: "only separators",
			in:   " , ,,  ",
			want: []string{},
		},
		{
			name: "empty input",
			in:   "",
			want: []string{},
		},
		{
			name: "single entry",
			in:   "  Figma  ",
			want: []string{"Figma"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSkills(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseSkills(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Student "); err != nil || r != RoleStudent {
		t.Fatalf("expected student, got %v %v", r, err)
	}
	if r, err := ParseRole("employer"); err != nil || r != RoleEmployer {
		t.Fatalf("expected employer, got %v %v", r, err)
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
