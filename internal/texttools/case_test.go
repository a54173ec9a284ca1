package texttools

import "testing"

func TestConvertCase(t *testing.T) {
	tests := []struct {
		mode CaseMode
		in   string
		want string
	}{
		{CaseLower, "Hello World", "hello world"},
		{CaseUpper, "Hello World", "HELLO WORLD"},
		{CaseTitle, "hello big world", "Hello Big World"},
		{CaseSentence, "hello THERE. how are you? fine", "Hello there. How are you? Fine"},
		{CaseSnake, "Hello big World", "hello_big_world"},
		{CaseSnake, "userID fromAPI", "user_id_from_api"},
		{CaseKebab, "some_value here", "some-value-here"},
		{CaseCamel, "hello big world", "helloBigWorld"},
		{CasePascal, "hello-big world", "HelloBigWorld"},
	}
	for _, tt := range tests {
		got, err := ConvertCase(tt.in, tt.mode)
		if err != nil {
			t.Errorf("ConvertCase(%q, %s) failed: %v", tt.in, tt.mode, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConvertCase(%q, %s) = %q, want %q", tt.in, tt.mode, got, tt.want)
		}
	}
}

func TestConvertCase_UnknownMode(t *testing.T) {
	if _, err := ConvertCase("x", "shouty"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
