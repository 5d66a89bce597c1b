// Copyright 2025 The golzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzip

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// Level describes a named compression preset. Each level selects a
// predefined dictionary size for the LZMA stream.
type Level int

// Supported compression presets.
const (
	Fastest Level = iota
	Fast
	Default
	Maximum
)

// levelDictSizes maps the presets to dictionary sizes: 256 KiB, 4 MiB,
// 8 MiB and 64 MiB.
var levelDictSizes = [...]uint32{1 << 18, 1 << 22, 1 << 23, 1 << 26}

// DictSize returns the dictionary size the level selects.
func (l Level) DictSize() (uint32, error) {
	if !(Fastest <= l && l <= Maximum) {
		return 0, fmt.Errorf("lzip: level %d out of range", int(l))
	}
	return levelDictSizes[l], nil
}

func (l Level) String() string {
	switch l {
	case Fastest:
		return "fastest"
	case Fast:
		return "fast"
	case Default:
		return "default"
	case Maximum:
		return "maximum"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// EncoderConfig describes the parameters for an Encoder.
type EncoderConfig struct {
	// DictSize sets the dictionary size of the LZMA stream. It must be
	// in the range from MinDictSize to MaxDictSize.
	// (default: DefaultDictSize)
	DictSize uint32
}

// ApplyDefaults applies the defaults to the encoder configuration.
func (c *EncoderConfig) ApplyDefaults() {
	if c.DictSize == 0 {
		c.DictSize = DefaultDictSize
	}
}

// Verify checks the configuration for errors. Zero values will be replaced
// by default values.
func (c *EncoderConfig) Verify() error {
	if c == nil {
		return errors.New("lzip: encoder configuration is nil")
	}
	c.ApplyDefaults()
	if !(MinDictSize <= c.DictSize && c.DictSize <= MaxDictSize) {
		return ErrInvalidDictSize
	}
	return nil
}

// Encoder compresses a byte stream into a single lzip member. The member is
// produced by one call to Encode; an Encoder cannot be reused.
type Encoder struct {
	r       io.Reader
	cfg     EncoderConfig
	encoded bool
}

// NewEncoder creates an Encoder reading from r using the default
// dictionary size.
func NewEncoder(r io.Reader) (*Encoder, error) {
	return NewEncoderConfig(r, EncoderConfig{})
}

// NewEncoderLevel creates an Encoder reading from r using the dictionary
// size selected by the level.
func NewEncoderLevel(r io.Reader, l Level) (*Encoder, error) {
	dictSize, err := l.DictSize()
	if err != nil {
		return nil, err
	}
	return NewEncoderConfig(r, EncoderConfig{DictSize: dictSize})
}

// NewEncoderConfig creates an Encoder reading from r using the provided
// configuration.
func NewEncoderConfig(r io.Reader, cfg EncoderConfig) (*Encoder, error) {
	if r == nil {
		return nil, errors.New("lzip: reader must be not nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &Encoder{r: r, cfg: cfg}, nil
}

// errEncoderUsed indicates a second Encode call on the same Encoder.
var errEncoderUsed = errors.New("lzip: encoder has already been used")

// Encode compresses the input stream and writes the member to w. The call
// blocks until the whole input has been consumed. On error the member
// written so far is truncated and must be discarded by the caller.
func (e *Encoder) Encode(w io.Writer) error {
	if e.encoded {
		return errEncoderUsed
	}
	e.encoded = true

	if _, err := writeHeader(w, e.cfg.DictSize); err != nil {
		return err
	}

	sink := &errWriter{w: w}
	body := &headerStripWriter{w: sink, skip: lzma.HeaderLen}
	lw, err := lzma.WriterConfig{DictCap: int(e.cfg.DictSize)}.NewWriter(body)
	if err != nil {
		return fmt.Errorf("lzip: lzma writer: %w", err)
	}

	crc := crc32.NewIEEE()
	src := &errReader{r: e.r}
	dataSize, err := io.Copy(lw, io.TeeReader(src, crc))
	if err == nil {
		err = lw.Close()
	}
	if err != nil {
		if sink.err != nil {
			return sink.err
		}
		if src.err != nil {
			return src.err
		}
		return fmt.Errorf("lzip: lzma writer: %w", err)
	}

	t := trailer{
		crc:        crc.Sum32(),
		dataSize:   uint64(dataSize),
		memberSize: headerLen + body.n + trailerLen,
	}
	_, err = t.writeTo(w)
	return err
}

// headerStripWriter drops the classic LZMA header the engine emits in
// front of the raw stream and counts the bytes passed through. The lzip
// payload is the bare LZMA stream, the stream parameters live in the
// member header instead.
type headerStripWriter struct {
	w    io.Writer
	skip int
	n    uint64
}

func (hw *headerStripWriter) Write(p []byte) (n int, err error) {
	if hw.skip > 0 {
		k := hw.skip
		if k > len(p) {
			k = len(p)
		}
		hw.skip -= k
		n = k
		p = p[k:]
	}
	k, err := hw.w.Write(p)
	hw.n += uint64(k)
	return n + k, err
}

// errWriter records the first error of the underlying writer, so that sink
// failures can be told apart from failures of the compression engine.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (n int, err error) {
	n, err = ew.w.Write(p)
	if err != nil && ew.err == nil {
		ew.err = err
	}
	return n, err
}

// errReader records the first error of the underlying reader. io.EOF is not
// recorded, it terminates the copy loop regularly.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (n int, err error) {
	n, err = er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}
