package escrow

import "testing"

func TestSignAndVerify(t *testing.T) {
	body := []byte(`{"transaction_id":"abc","status":"funded"}`)
	secret := "kalem-kutu-42"

	sig := Sign(body, secret)
	if !VerifyHMAC(body, sig, secret) {
		t.Fatal("expected signature to verify")
	}
	if VerifyHMAC(body, sig, "wrong-secret") {
		t.Fatal("signature verified with the wrong secret")
	}
	if VerifyHMAC([]byte("tampered"), sig, secret) {
		t.Fatal("signature verified for a tampered body")
	}
	if VerifyHMAC(body, "zz-not-hex", secret) {
		t.Fatal("malformed signature must not verify")
	}
}
