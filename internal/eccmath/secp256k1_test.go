package eccmath

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"testing"
)

func TestGeneratorOrderIsIdentity(t *testing.T) {
	got, err := G.ScalarMul(N)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !got.IsInfinity() {
		t.Errorf("N*G = %s, want infinity", got)
	}
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	secret := big.NewInt(12345)
	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	z := new(big.Int).SetBytes(sha256.New().Sum([]byte("programmingbitcoin")))
	sig, err := Sign(secret, z)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !point.Verify(z, sig) {
		t.Error("Verify rejected a signature produced by Sign over the matching key")
	}
}

func TestSignLowSNormalization(t *testing.T) {
	secret := big.NewInt(98765)
	z := big.NewInt(42)

	sig, err := Sign(secret, z)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	halfN := new(big.Int).Rsh(N, 1)
	if sig.S().Cmp(halfN) > 0 {
		t.Errorf("s = %s exceeds N/2 = %s, want low-s normalized", sig.S(), halfN)
	}
}

func TestVerifyKnownSignature(t *testing.T) {
	// From Programming Bitcoin's worked ECDSA verification example.
	px, _ := new(big.Int).SetString("887387e452b8eacc4acfde10d9aaf7f6d9a0f975aabb10d006e4da568744d06c", 16)
	py, _ := new(big.Int).SetString("61de6d95231cd89026e286df3b6ae4a894a3378e393e93a0f45b666329a0ae34", 16)
	z, _ := new(big.Int).SetString("ec208baa0fc1c19f708a9ca96fdeff3ac3f230bb4a7ba4aede4942ad003c0f60", 16)
	r, _ := new(big.Int).SetString("ac8d1c87e51d0d441be8b3dd5b05c8795b48875dffe00b7ffcfac23010d3a395", 16)
	s, _ := new(big.Int).SetString("68342ceff8935ededd102dd876ffd6ba72d6a427a3edb13d26eb0781cb423c4", 16)

	x, err := NewSecp256k1Field(px)
	if err != nil {
		t.Fatalf("x: %v", err)
	}
	y, err := NewSecp256k1Field(py)
	if err != nil {
		t.Fatalf("y: %v", err)
	}
	point, err := NewS256Point(x, y)
	if err != nil {
		t.Fatalf("NewS256Point: %v", err)
	}

	sig := NewSignature(r, s)
	if !point.Verify(z, sig) {
		t.Error("Verify rejected a known-good (point, z, r, s) triple")
	}
}

func TestSecCompressedRoundTrip(t *testing.T) {
	point, err := G.ScalarMul(big.NewInt(5000))
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	sec := point.Sec(true)
	if len(sec) != 33 {
		t.Fatalf("compressed SEC length = %d, want 33", len(sec))
	}

	parsed, err := ParseSEC(sec)
	if err != nil {
		t.Fatalf("ParseSEC: %v", err)
	}
	if !parsed.Equal(point.Point) {
		t.Errorf("round-tripped point %s != original %s", parsed, point)
	}
}

func TestSecUncompressedRoundTrip(t *testing.T) {
	point, err := G.ScalarMul(big.NewInt(999))
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	sec := point.Sec(false)
	if len(sec) != 65 || sec[0] != 0x04 {
		t.Fatalf("uncompressed SEC malformed: len=%d prefix=0x%02x", len(sec), sec[0])
	}

	parsed, err := ParseSEC(sec)
	if err != nil {
		t.Fatalf("ParseSEC: %v", err)
	}
	if !parsed.Equal(point.Point) {
		t.Errorf("round-tripped point %s != original %s", parsed, point)
	}
}

func TestAddressUncompressedTestnet(t *testing.T) {
	// Programming Bitcoin's worked address example for secret 5002.
	secret := big.NewInt(5002)
	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	got := point.Address(false, true)
	want := "mmTPbXQFxboEtNRkwfh6K51jvdtHLxGeMA"
	if got != want {
		t.Errorf("address = %s, want %s", got, want)
	}
}

func TestAddressCompressedTestnet(t *testing.T) {
	// spec.md scenario 4: e = 2020^5, compressed, testnet.
	secret := new(big.Int).Exp(big.NewInt(2020), big.NewInt(5), nil)
	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	got := point.Address(true, true)
	want := "mopVkxp8UhXqRYbCYJsbeE1h1fiF64jcoH"
	if got != want {
		t.Errorf("address = %s, want %s", got, want)
	}
}

func TestAddressCompressedMainnet(t *testing.T) {
	// spec.md scenario 5: e = 0x12345deadbeef, compressed, mainnet.
	secret, _ := new(big.Int).SetString("12345deadbeef", 16)
	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	got := point.Address(true, false)
	want := "1F1Pn2y6pDb68E5nYJJeba4TLg2U7B6KF1"
	if got != want {
		t.Errorf("address = %s, want %s", got, want)
	}
}

func TestParseSECRejectsBadLength(t *testing.T) {
	_, err := ParseSEC(bytes.Repeat([]byte{0x01}, 10))
	if err == nil {
		t.Fatal("expected an error for a malformed SEC buffer")
	}
}
