package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !VerifyPassword("correct horse battery staple", digest) {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword("wrong password", digest) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if d1 == d2 {
		t.Fatal("expected distinct digests for the same input (random salt)")
	}
}

func TestVerifyPassword_MalformedDigestFailsClosed(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		if VerifyPassword("anything", digest) {
			t.Fatalf("expected verify to fail for malformed digest %q", digest)
		}
	}
}
