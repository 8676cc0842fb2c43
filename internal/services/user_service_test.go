package services

import "testing"

func TestGenerateResetCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateResetCode()
		if len(code) != 4 {
			t.Fatalf("expected 4-digit code, got %q", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("expected digits only, got %q", code)
			}
		}
	}
}

func TestCodesMatch(t *testing.T) {
	if !CodesMatch("1234", "1234") {
		t.Fatal("expected equal codes to match")
	}
	if CodesMatch("1234", "4321") {
		t.Fatal("expected different codes to not match")
	}
	if CodesMatch("1234", "12345") {
		t.Fatal("expected different lengths to not match")
	}
	if CodesMatch("", "") {
		t.Fatal("expected empty stored code to never match")
	}
}
