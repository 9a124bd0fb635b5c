package simplemsg

import (
	"strings"
	"testing"
)

func TestVerifyWebhookSignature(t *testing.T) {
	payload := "example payload"
	secret := "your_secret_key"
	sig := SignWebhookPayload(payload, secret)

	if !VerifyWebhookSignature(payload, secret, sig) {
		t.Fatalf("expected valid signature to verify")
	}
	if VerifyWebhookSignature(payload, "wrong_secret", sig) {
		t.Fatalf("expected wrong secret to fail")
	}
	if VerifyWebhookSignature(payload+"x", secret, sig) {
		t.Fatalf("expected tampered payload to fail")
	}
}

func TestVerifyWebhookSignatureSingleCharMutations(t *testing.T) {
	sig := SignWebhookPayload(`{"event":"message.delivered"}`, "s3cret")
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		if VerifyWebhookSignature(`{"event":"message.delivered"}`, "s3cret", string(mutated)) {
			t.Fatalf("mutation at position %d verified", i)
		}
	}
}

func TestVerifyWebhookSignatureEmptyInputs(t *testing.T) {
	// Empty payload and empty secret are well-defined inputs, not automatic
	// rejects.
	if !VerifyWebhookSignature("", "secret", SignWebhookPayload("", "secret")) {
		t.Fatalf("expected empty payload to verify against its own digest")
	}
	if !VerifyWebhookSignature("payload", "", SignWebhookPayload("payload", "")) {
		t.Fatalf("expected empty secret to verify against its own digest")
	}
	if VerifyWebhookSignature("", "secret", "") {
		t.Fatalf("expected empty signature to fail")
	}
}

func TestVerifyWebhookSignatureCaseSensitive(t *testing.T) {
	sig := SignWebhookPayload("hello", "secret")
	upper := strings.ToUpper(sig)
	if upper == sig {
		t.Fatalf("digest unexpectedly has no letters: %s", sig)
	}
	if VerifyWebhookSignature("hello", "secret", upper) {
		t.Fatalf("uppercase digest must not verify")
	}
}

func TestVerifyWebhookSignatureLengthMismatch(t *testing.T) {
	sig := SignWebhookPayload("hello", "secret")
	if VerifyWebhookSignature("hello", "secret", sig[:len(sig)-2]) {
		t.Fatalf("truncated digest must not verify")
	}
	if VerifyWebhookSignature("hello", "secret", sig+"00") {
		t.Fatalf("extended digest must not verify")
	}
}

func TestVerifyWebhookSignatureDeterministic(t *testing.T) {
	sig := SignWebhookPayload("stable", "key")
	for i := 0; i < 10; i++ {
		if SignWebhookPayload("stable", "key") != sig {
			t.Fatalf("digest not deterministic")
		}
		if !VerifyWebhookSignature("stable", "key", sig) {
			t.Fatalf("verification not deterministic")
		}
	}
}

func TestSignWebhookPayloadIsLowercaseHex(t *testing.T) {
	sig := SignWebhookPayload("payload", "secret")
	if len(sig) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(sig))
	}
	if sig != strings.ToLower(sig) {
		t.Fatalf("expected lowercase digest, got %s", sig)
	}
}
