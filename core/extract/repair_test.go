package extract

import "testing"

func TestStripTrailingCommas(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing comma in object",
			input: `{"a": 1,}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma in array",
			input: `[1, 2, 3,]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "comma separated from closer by whitespace",
			input: "{\"a\": 1,\n  }",
			want:  "{\"a\": 1\n  }",
		},
		{
			name:  "run of commas is removed entirely",
			input: `[1,,,]`,
			want:  `[1]`,
		},
		{
			name:  "separator commas are kept",
			input: `{"a": 1, "b": 2}`,
			want:  `{"a": 1, "b": 2}`,
		},
		{
			name:  "nested trailing commas",
			input: `{"a": [1, 2,], "b": {"c": 3,},}`,
			want:  `{"a": [1, 2], "b": {"c": 3}}`,
		},
		{
			name:  "comma not before a closer is kept",
			input: `a, b, c`,
			want:  `a, b, c`,
		},
		{
			name:  "already clean",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := StripTrailingCommas(testCase.input)
			if got != testCase.want {
				t.Errorf("StripTrailingCommas(%q) = %q, want %q", testCase.input, got, testCase.want)
			}
		})
	}
}

// TestStripTrailingCommas_Idempotent verifies that a second pass is a no-op
// for every shape of comma run the first pass handles.
func TestStripTrailingCommas_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a": 1,}`,
		`[1,,,]`,
		"{\"a\": [1, ,\t,\n],}",
		`{"a": 1, "b": 2}`,
		`plain text, no json`,
	}

	for _, input := range inputs {
		once := StripTrailingCommas(input)
		twice := StripTrailingCommas(once)
		if once != twice {
			t.Errorf("StripTrailingCommas not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}

func TestNormalizeQuotes(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single-quoted literal becomes double-quoted",
			input: `{'a': 'b'}`,
			want:  `{"a": "b"}`,
		},
		{
			name:  "double quote inside single-quoted literal is escaped",
			input: `{'say': 'a "word"'}`,
			want:  `{"say": "a \"word\""}`,
		},
		{
			name:  "escaped single quote inside single-quoted literal",
			input: `{'a': 'it\'s'}`,
			want:  `{"a": "it's"}`,
		},
		{
			name:  "double-quoted literal passes through",
			input: `{"a": "b"}`,
			want:  `{"a": "b"}`,
		},
		{
			name:  "single quote inside double-quoted literal is untouched",
			input: `{"a": "it's fine"}`,
			want:  `{"a": "it's fine"}`,
		},
		{
			name:  "escaped double quote does not end the literal",
			input: `{"a": "say \"hi\" now"}`,
			want:  `{"a": "say \"hi\" now"}`,
		},
		{
			name:  "mixed quoting styles",
			input: `{"a": 'b', 'c': "d"}`,
			want:  `{"a": "b", "c": "d"}`,
		},
		{
			name:  "backslash escape inside single-quoted literal is kept",
			input: `{'path': 'a\\b'}`,
			want:  `{"path": "a\\b"}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := NormalizeQuotes(testCase.input)
			if got != testCase.want {
				t.Errorf("NormalizeQuotes(%q) = %q, want %q", testCase.input, got, testCase.want)
			}
		})
	}
}

// TestNormalizeQuotes_Idempotent verifies that output already in canonical
// double-quoted form is not changed by a second pass.
func TestNormalizeQuotes_Idempotent(t *testing.T) {
	inputs := []string{
		`{'a': 'b'}`,
		`{'say': 'a "word"'}`,
		`{"a": "b"}`,
	}

	for _, input := range inputs {
		once := NormalizeQuotes(input)
		twice := NormalizeQuotes(once)
		if once != twice {
			t.Errorf("NormalizeQuotes not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
