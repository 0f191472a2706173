package generator

import (
	"strings"
	"testing"
)

func TestPassword_LengthAndClasses(t *testing.T) {
	t.Parallel()
	for _, length := range []int{8, 9, 12, 16, 32, 64} {
		for i := 0; i < 50; i++ {
			pw := Password(length)
			if len(pw) != length {
				t.Fatalf("Password(%d) has length %d", length, len(pw))
			}
			if !strings.ContainsAny(pw, upperChars) {
				t.Fatalf("Password(%d) = %q lacks an uppercase letter", length, pw)
			}
			if !strings.ContainsAny(pw, lowerChars) {
				t.Fatalf("Password(%d) = %q lacks a lowercase letter", length, pw)
			}
			if !strings.ContainsAny(pw, digitChars) {
				t.Fatalf("Password(%d) = %q lacks a digit", length, pw)
			}
			if !strings.ContainsAny(pw, symbolChars) {
				t.Fatalf("Password(%d) = %q lacks a symbol", length, pw)
			}
		}
	}
}

func TestPassword_OnlyKnownClasses(t *testing.T) {
	t.Parallel()
	all := upperChars + lowerChars + digitChars + symbolChars
	pw := Password(64)
	for _, r := range pw {
		if !strings.ContainsRune(all, r) {
			t.Fatalf("Password() = %q contains %q outside the four classes", pw, r)
		}
	}
}

func TestPassword_TooShortPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("Password(7) should panic")
		}
	}()
	Password(7)
}
