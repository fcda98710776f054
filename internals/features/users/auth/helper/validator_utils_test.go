package helper

import "testing"

func TestValidatePasswordStrength(t *testing.T) {
	cases := map[string]bool{
		"short1":      false,
		"onlyletters": false,
		"12345678":    false,
		"secret123":   true,
	}
	for pw, ok := range cases {
		if err := ValidatePasswordStrength(pw); (err == nil) != ok {
			t.Errorf("%q: got err=%v, want ok=%v", pw, err, ok)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPasswordHash(h, "secret123"); err != nil {
		t.Fatalf("expected match: %v", err)
	}
	if err := CheckPasswordHash(h, "wrong"); err == nil {
		t.Fatal("expected mismatch")
	}
}
