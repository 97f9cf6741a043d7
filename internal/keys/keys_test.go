package keys

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"secp256k1/internal/encoding"
)

func TestPrivateKeySignVerifyRoundTrip(t *testing.T) {
	pk, err := NewPrivateKey(big.NewInt(54321))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	z := new(big.Int).SetBytes(sha256.New().Sum([]byte("wif and sign round trip")))
	sig, err := pk.Sign(z)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !pk.PublicKey().Verify(z, sig) {
		t.Error("Verify rejected a signature from Sign")
	}
}

func TestPrivateKeySignDeterministicIsRepeatable(t *testing.T) {
	pk, err := NewPrivateKey(big.NewInt(777))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	z := big.NewInt(1234)

	sig1, err := pk.SignDeterministic(z)
	if err != nil {
		t.Fatalf("SignDeterministic: %v", err)
	}
	sig2, err := pk.SignDeterministic(z)
	if err != nil {
		t.Fatalf("SignDeterministic: %v", err)
	}

	if sig1.R().Cmp(sig2.R()) != 0 || sig1.S().Cmp(sig2.S()) != 0 {
		t.Errorf("SignDeterministic produced different signatures for the same (e, z): %s vs %s", sig1, sig2)
	}
	if !pk.PublicKey().Verify(z, sig1) {
		t.Error("Verify rejected a SignDeterministic signature")
	}
}

func TestWifKnownVector(t *testing.T) {
	// Programming Bitcoin's worked WIF example for secret 5003, compressed,
	// testnet.
	pk, err := NewPrivateKey(big.NewInt(5003))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	got := pk.Wif(true, true)
	want := "cMahea7zqjxrtgAbB7LSGbcQUr1uX1ojuat9jZodMN8rFTv2sfUK"
	if got != want {
		t.Errorf("Wif = %s, want %s", got, want)
	}
}

func TestWifRoundTripDecodable(t *testing.T) {
	pk, err := NewPrivateKey(big.NewInt(123456789))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	for _, compressed := range []bool{true, false} {
		wif := pk.Wif(compressed, false)
		if len(wif) == 0 {
			t.Errorf("Wif(%v, false) returned empty string", compressed)
		}
		payload, err := encoding.DecodeBase58Check(wif)
		if err != nil {
			t.Errorf("DecodeBase58Check(Wif(%v, false)): %v", compressed, err)
			continue
		}
		wantLen := 33
		if compressed {
			wantLen = 34
		}
		if len(payload) != wantLen || payload[0] != wifPrefixMainnet {
			t.Errorf("Wif(%v, false) decodes to %x, want %d bytes with prefix 0x80", compressed, payload, wantLen)
		}
	}
}

func TestPrivateKeyHexIsZeroPadded(t *testing.T) {
	pk, err := NewPrivateKey(big.NewInt(1))
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	if len(pk.Hex()) != 64 {
		t.Errorf("Hex() length = %d, want 64", len(pk.Hex()))
	}
}
