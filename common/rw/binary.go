// Package rw provides the little-endian binary framing used by the baked
// result container.
package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReaderWriter reads or writes little-endian scalars and length-prefixed
// slices over an in-memory buffer. Errors are sticky: after the first
// failed read every subsequent read returns zero values, and Err reports
// what went wrong.
type ReaderWriter struct {
	order   binary.ByteOrder
	buf     bytes.Buffer
	scratch [8]byte
	err     error
}

func NewWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian}
}

func NewReader(data []byte) *ReaderWriter {
	r := &ReaderWriter{order: binary.LittleEndian}
	r.buf.Write(data)
	return r
}

// Err returns the first read failure, if any.
func (w *ReaderWriter) Err() error { return w.err }

// Bytes returns everything written so far.
func (w *ReaderWriter) Bytes() []byte { return w.buf.Bytes() }

func (w *ReaderWriter) read(n int) []byte {
	if w.err != nil {
		return nil
	}
	if _, err := io.ReadFull(&w.buf, w.scratch[:n]); err != nil {
		w.err = fmt.Errorf("truncated input: %w", err)
		return nil
	}
	return w.scratch[:n]
}

func (w *ReaderWriter) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *ReaderWriter) ReadUint8() uint8 {
	b := w.read(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (w *ReaderWriter) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func (w *ReaderWriter) ReadBool() bool { return w.ReadUint8() != 0 }

func (w *ReaderWriter) WriteUint32(v uint32) {
	w.order.PutUint32(w.scratch[:4], v)
	w.buf.Write(w.scratch[:4])
}

func (w *ReaderWriter) ReadUint32() uint32 {
	b := w.read(4)
	if b == nil {
		return 0
	}
	return w.order.Uint32(b)
}

func (w *ReaderWriter) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUint32())
}

func (w *ReaderWriter) WriteFloat64(v float64) {
	w.order.PutUint64(w.scratch[:8], math.Float64bits(v))
	w.buf.Write(w.scratch[:8])
}

func (w *ReaderWriter) ReadFloat64() float64 {
	b := w.read(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(w.order.Uint64(b))
}

// WriteBytes frames a byte slice with a uint32 length.
func (w *ReaderWriter) WriteBytes(v []byte) {
	w.WriteUint32(uint32(len(v)))
	w.buf.Write(v)
}

func (w *ReaderWriter) ReadBytes() []byte {
	n := w.ReadUint32()
	if w.err != nil {
		return nil
	}
	if uint64(n) > uint64(w.buf.Len()) {
		w.err = fmt.Errorf("truncated input: %d byte frame, %d available", n, w.buf.Len())
		return nil
	}
	out := make([]byte, n)
	w.buf.Read(out)
	return out
}

func (w *ReaderWriter) WriteString(v string) { w.WriteBytes([]byte(v)) }

func (w *ReaderWriter) ReadString() string { return string(w.ReadBytes()) }

func (w *ReaderWriter) WriteUint32s(v []uint32) {
	w.WriteUint32(uint32(len(v)))
	for _, x := range v {
		w.WriteUint32(x)
	}
}

func (w *ReaderWriter) ReadUint32s() []uint32 {
	n := w.ReadUint32()
	if w.err != nil || n == 0 {
		return nil
	}
	// Bound check in uint64: n*4 can wrap the platform int.
	if uint64(n)*4 > uint64(w.buf.Len()) {
		w.err = fmt.Errorf("truncated input: %d uint32s, %d bytes available", n, w.buf.Len())
		return nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = w.ReadUint32()
	}
	return out
}

func (w *ReaderWriter) WriteFloat32s(v []float32) {
	w.WriteUint32(uint32(len(v)))
	for _, x := range v {
		w.WriteFloat32(x)
	}
}

func (w *ReaderWriter) ReadFloat32s() []float32 {
	n := w.ReadUint32()
	if w.err != nil || n == 0 {
		return nil
	}
	if uint64(n)*4 > uint64(w.buf.Len()) {
		w.err = fmt.Errorf("truncated input: %d float32s, %d bytes available", n, w.buf.Len())
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = w.ReadFloat32()
	}
	return out
}
