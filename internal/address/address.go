package address

import (
	"fmt"

	"secp256k1/internal/encoding"
)

type Network int

const (
	MAINNET Network = iota
	TESTNET
)

// Bech32HRP returns the HRP for bech32 address
func (n Network) Bech32HRP() string {
	if n == TESTNET {
		return "tb"
	}
	return "bc"
}

type AddrType int

const (
	P2WPKH AddrType = iota // bech32, 20 bytes
	P2WSH                  // bech32, 32 bytes
)

type Address struct {
	Type    AddrType
	Network Network
	String  string
}

// FromPublicKey creates a P2WPKH address from a SEC-serialized public key.
func FromPublicKey(pubkey []byte, net Network) (*Address, error) {
	hash160 := encoding.Hash160(pubkey)
	return FromWitnessProgram(0, hash160, net)
}

// FromWitnessProgram creates a bech32 address from a witness program.
// Only witness version 0 (P2WPKH/P2WSH) is supported; Taproot's bech32m
// encoding (version 1) is out of scope.
func FromWitnessProgram(version byte, program []byte, net Network) (*Address, error) {
	if len(program) != 20 && len(program) != 32 {
		return nil, fmt.Errorf("invalid witness program length: %d", len(program))
	}

	var addrType AddrType
	if version == 0 {
		if len(program) == 20 {
			addrType = P2WPKH
		} else {
			addrType = P2WSH
		}
	} else {
		return nil, fmt.Errorf("unsupported witness version: %d", version)
	}

	hrp := net.Bech32HRP()
	bech32String, err := encodeBech32(version, program, hrp)
	if err != nil {
		return nil, err
	}

	return &Address{
		String:  bech32String,
		Type:    addrType,
		Network: net,
	}, nil
}
