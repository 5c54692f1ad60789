// Package strkey checks the fixed-length, checksummed base32 encoding used
// for ledger account addresses. An encoded account address is 56 characters
// from the RFC 4648 base32 alphabet and decodes to a version byte, a 32-byte
// key payload, and a two-byte CRC16-XModem checksum over the preceding 33
// bytes (checksum stored little-endian).
package strkey

import (
	"encoding/base32"
	"fmt"
)

// VersionAccount is the version byte for account addresses ('G' prefix).
const VersionAccount byte = 6 << 3

// EncodedAccountLength is the length of an encoded account address.
const EncodedAccountLength = 56

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// CheckAccount verifies that addr is a well-formed account address.
func CheckAccount(addr string) error {
	if len(addr) != EncodedAccountLength {
		return fmt.Errorf("address must be %d characters, got %d", EncodedAccountLength, len(addr))
	}

	raw, err := encoding.DecodeString(addr)
	if err != nil {
		return fmt.Errorf("address is not valid base32: %w", err)
	}
	if len(raw) != 35 {
		return fmt.Errorf("decoded address must be 35 bytes, got %d", len(raw))
	}

	if raw[0] != VersionAccount {
		return fmt.Errorf("unexpected version byte 0x%02x", raw[0])
	}

	payload := raw[:33]
	want := uint16(raw[33]) | uint16(raw[34])<<8
	if got := checksum(payload); got != want {
		return fmt.Errorf("checksum mismatch")
	}

	return nil
}

// Encode renders a 32-byte key payload as an account address. Used by tests
// and by callers that mint fixture addresses.
func Encode(payload [32]byte) string {
	raw := make([]byte, 0, 35)
	raw = append(raw, VersionAccount)
	raw = append(raw, payload[:]...)
	sum := checksum(raw)
	raw = append(raw, byte(sum), byte(sum>>8))
	return encoding.EncodeToString(raw)
}

// checksum computes CRC16-XModem (poly 0x1021, zero init) over data.
func checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
