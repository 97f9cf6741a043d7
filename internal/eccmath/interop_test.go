package eccmath

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/davecgh/go-spew/spew"
)

// These tests cross-check this package's from-scratch arithmetic against
// btcec, an independent secp256k1 implementation, instead of only ever
// verifying the implementation against itself.

func TestInteropSignWithThisVerifyWithBtcec(t *testing.T) {
	secret := big.NewInt(424242)
	priv, pub := btcec.PrivKeyFromBytes(btcec.S256(), secret.FillBytes(make([]byte, 32)))
	_ = priv

	z := sha256.Sum256([]byte("interop sign with this, verify with btcec"))
	zInt := new(big.Int).SetBytes(z[:])

	sig, err := Sign(secret, zInt)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	btcecSig := btcec.Signature{R: sig.R(), S: sig.S()}
	if !btcecSig.Verify(z[:], pub) {
		t.Errorf("btcec rejected a signature produced by this package: %s", spew.Sdump(sig))
	}
}

func TestInteropSignWithBtcecVerifyWithThis(t *testing.T) {
	secret := big.NewInt(13371337)
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), secret.FillBytes(make([]byte, 32)))

	z := sha256.Sum256([]byte("interop sign with btcec, verify with this"))

	btcecSig, err := priv.Sign(z[:])
	if err != nil {
		t.Fatalf("btcec Sign: %v", err)
	}

	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	sig := NewSignature(btcecSig.R, btcecSig.S)
	zInt := new(big.Int).SetBytes(z[:])
	if !point.Verify(zInt, sig) {
		t.Errorf("this package rejected a signature produced by btcec: %s", spew.Sdump(sig))
	}
}

func TestInteropSECRoundTripWithBtcec(t *testing.T) {
	secret := big.NewInt(999999)
	point, err := G.ScalarMul(secret)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	sec := point.Sec(true)
	btcecPub, err := btcec.ParsePubKey(sec, btcec.S256())
	if err != nil {
		t.Fatalf("btcec.ParsePubKey: %v", err)
	}

	if btcecPub.X.Cmp(point.X()) != 0 || btcecPub.Y.Cmp(point.Y()) != 0 {
		t.Errorf("btcec parsed (%s,%s), want (%s,%s)", btcecPub.X, btcecPub.Y, point.X(), point.Y())
	}
}
