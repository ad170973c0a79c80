package vector

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/aviddiviner/go-murmur"
)

// vecVersion is a version number for the on disk representation
// format.  Any time incompatible changes are made, it is bumped.
const vecVersion = uint64(0x0001)

// checksumSeed is a fixed seed for the payload checksum so files are
// comparable across processes.
const checksumSeed = uint64(0x56454331)

// Header describes a serialized vector.
type Header struct {
	// a version number which changes as the storage representation
	// changes
	Version uint64
	// the number of live elements in the stored vector
	Size uint64
	// the allocated slot count of the stored vector.  Restored on
	// read so capacity survives a round trip
	Capacity uint64
	// the fixed binary width of one element, in bytes
	ElemWidth uint64
	// MurmurHash64A of the payload bytes
	Checksum uint64
}

// Explain prints a human readable summary of the header to stdout.
func (h *Header) Explain() {
	fmt.Printf("vector format version %d\n", h.Version)
	fmt.Printf("%d live elements of %d bytes each (%s payload)\n",
		h.Size, h.ElemWidth, humanBytes(uint(h.Size*h.ElemWidth)))
	fmt.Printf("%d slots allocated (%s once loaded)\n",
		h.Capacity, humanBytes(uint(h.Capacity*h.ElemWidth)))
}

// elemWidth reports the fixed binary size of T, or an error for
// element types encoding/binary cannot size.
func elemWidth[T any]() (uint64, error) {
	var zero T
	width := binary.Size(zero)
	if width < 0 {
		return 0, fmt.Errorf("element type %T has no fixed binary size", zero)
	}
	return uint64(width), nil
}

// WriteTo writes the vector to a stream: a little-endian header
// followed by the live elements.  Slots beyond the live count are not
// written; only the capacity is recorded so it can be restored.
//
// Only element types with a fixed binary size (fixed-size numerics,
// arrays and structs thereof) can be serialized.
func (v *Vector[T]) WriteTo(stream io.Writer) (n int64, err error) {
	width, err := elemWidth[T]()
	if err != nil {
		return 0, err
	}

	var payload bytes.Buffer
	if err = binary.Write(&payload, binary.LittleEndian, v.data[:v.size]); err != nil {
		return 0, err
	}

	h := Header{
		Version:   vecVersion,
		Size:      uint64(v.size),
		Capacity:  uint64(v.Cap()),
		ElemWidth: width,
		Checksum:  murmur.MurmurHash64A(payload.Bytes(), checksumSeed),
	}
	if err = binary.Write(stream, binary.LittleEndian, h); err != nil {
		return
	}
	n += int64(binary.Size(h))

	np, err := stream.Write(payload.Bytes())
	n += int64(np)
	return
}

// ReadFrom replaces the vector's contents with a vector previously
// written by WriteTo.  The buffer is reallocated at the serialized
// capacity and the payload checksum is verified before anything is
// installed.
func (v *Vector[T]) ReadFrom(stream io.Reader) (n int64, err error) {
	width, err := elemWidth[T]()
	if err != nil {
		return 0, err
	}

	var h Header
	if err = binary.Read(stream, binary.LittleEndian, &h); err != nil {
		return
	}
	n += int64(binary.Size(h))
	if h.Version != vecVersion {
		return n, fmt.Errorf("incompatible file format: version is %d, expected %d",
			h.Version, vecVersion)
	}
	if h.ElemWidth != width {
		return n, fmt.Errorf("element width mismatch: file has %d byte elements, want %d",
			h.ElemWidth, width)
	}
	if h.Size > h.Capacity {
		return n, fmt.Errorf("corrupt header: size %d exceeds capacity %d",
			h.Size, h.Capacity)
	}

	payload := make([]byte, h.Size*width)
	np, err := io.ReadFull(stream, payload)
	n += int64(np)
	if err != nil {
		return
	}
	if got := murmur.MurmurHash64A(payload, checksumSeed); got != h.Checksum {
		return n, fmt.Errorf("payload checksum mismatch: got %x, want %x",
			got, h.Checksum)
	}

	var data []T
	if h.Capacity > 0 {
		data = make([]T, h.Capacity)
		if err = binary.Read(bytes.NewReader(payload), binary.LittleEndian, data[:h.Size]); err != nil {
			return
		}
	}
	v.data = data
	v.size = uint(h.Size)
	return
}

// ReadHeaderFrom reads just the header from a stream, leaving the
// payload untouched.
func ReadHeaderFrom(stream io.Reader) (h Header, err error) {
	if err = binary.Read(stream, binary.LittleEndian, &h); err != nil {
		return
	}
	if h.Version != vecVersion {
		err = fmt.Errorf("incompatible file format: version is %d, expected %d",
			h.Version, vecVersion)
	}
	return
}

// ReadHeaderFromPath reads the header of a serialized vector file
// without loading its payload.
func ReadHeaderFromPath(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()
	return ReadHeaderFrom(f)
}
