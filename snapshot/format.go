// Package snapshot persists sngl_inspiral and coinc_event_map tables as
// versioned, checksummed, zstd-compressed binary objects in a
// blobstore.Store.
//
// The row codec is generic: it drives each row's column table (Columns, Get,
// Set), so everything the marshaling layer validates on the way in is
// validated again on the way out of a snapshot.
package snapshot

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

const (
	// MagicNumber identifies snapshot objects (ASCII: "GWT0").
	MagicNumber = 0x47575430
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	// headerSize is magic + version + checksum + reserved, 4 bytes each.
	headerSize = 16
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	ErrChecksum       = errors.New("snapshot checksum mismatch")
	ErrCorrupt        = errors.New("corrupt snapshot")
)

// appendHeader prepends the snapshot header for the given compressed
// payload.
func appendHeader(buf, payload []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, MagicNumber)
	buf = binary.LittleEndian.AppendUint32(buf, Version)
	buf = binary.LittleEndian.AppendUint32(buf, crc32.ChecksumIEEE(payload))
	buf = binary.LittleEndian.AppendUint32(buf, 0) // reserved
	return buf
}

// checkHeader validates the header and returns the compressed payload.
func checkHeader(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, errors.New("snapshot too short")
	}
	if binary.LittleEndian.Uint32(data[0:]) != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != Version {
		return nil, ErrInvalidVersion
	}
	payload := data[headerSize:]
	if binary.LittleEndian.Uint32(data[8:]) != crc32.ChecksumIEEE(payload) {
		return nil, ErrChecksum
	}
	return payload, nil
}
