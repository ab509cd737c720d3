package normalize

import (
	"reflect"
	"testing"
)

func TestQueryParam(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Movie", "Movie"},
		{"  Movie  ", "Movie"},
		{"\tTv Show\n", "Tv Show"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := QueryParam(tt.input); got != tt.want {
			t.Errorf("QueryParam(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2021", 2021},
		{" 2021 ", 2021},
		{"", 0},
		{"abc", 0},
		{"2021.0", 0},
	}
	for _, tt := range tests {
		if got := Year(tt.input); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestListField(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"United States, Canada", []string{"United States", "Canada"}},
		{"India", []string{"India"}},
		{"a, , b", []string{"a", "b"}},
		{"", nil},
		{"  ", nil},
	}
	for _, tt := range tests {
		if got := ListField(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ListField(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
