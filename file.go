// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package fru

import (
	"os"
	"sort"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/ipmifru/frugo/log"
)

// fileHeaderLen is the fixed 8-byte file header size.
const fileHeaderLen = 8

// fileVersion is the only file-header format version this package writes
// or accepts without IgnoreFileVersion: low nibble 1, high nibble 0.
const fileVersion = 0x01

// File is an open FRU image, either memory-mapped from disk (New) or
// wrapping an in-memory buffer (NewBytes). Its FRU field is the decoded
// model; mutate that, then call Save to re-encode.
type File struct {
	FRU *FRU

	data   mmap.MMap
	buf    []byte
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// Options configures decoding.
type Options struct {
	// Flags relaxes individual decode checks; zero value is strict.
	Flags Flags

	// Logger receives decode diagnostics. Defaults to a stderr logger
	// filtered to warnings and above.
	Logger log.Logger
}

func newHelper(opts *Options) *log.Helper {
	if opts != nil && opts.Logger != nil {
		return log.NewHelper(opts.Logger)
	}
	base := log.NewStdLogger(os.Stderr)
	return log.NewHelper(log.NewFilter(base, log.FilterLevel(log.LevelWarn)))
}

// New opens name, memory-maps it read-only, and parses it as a FRU image.
func New(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapErr(SourceGeneral, err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, wrapErr(SourceGeneral, err)
	}

	file := &File{data: data, f: f, opts: opts, logger: newHelper(opts)}
	fru, err := decodeFile(data, flagsOf(opts), file.logger)
	if err != nil {
		file.Close()
		return nil, err
	}
	file.FRU = fru
	return file, nil
}

// NewBytes parses data (a caller-owned buffer) as a FRU image.
func NewBytes(data []byte, opts *Options) (*File, error) {
	file := &File{buf: data, opts: opts, logger: newHelper(opts)}
	fru, err := decodeFile(data, flagsOf(opts), file.logger)
	if err != nil {
		return nil, err
	}
	file.FRU = fru
	return file, nil
}

func flagsOf(opts *Options) *Flags {
	if opts == nil {
		return nil
	}
	return &opts.Flags
}

// Close releases the memory mapping (if any) and the underlying file
// handle.
func (file *File) Close() error {
	if file.data != nil {
		_ = file.data.Unmap()
	}
	if file.f != nil {
		return file.f.Close()
	}
	return nil
}

// SaveOptions configures encoding.
type SaveOptions struct {
	// IgnoreBig relaxes the 64 KiB self-imposed file-size cap.
	IgnoreBig bool
}

// Save re-encodes file.FRU into a binary FRU image.
func Save(f *FRU, opts *SaveOptions) ([]byte, error) {
	flags := &Flags{}
	if opts != nil {
		flags.IgnoreBig = opts.IgnoreBig
	}
	return f.encode(flags)
}

// encode assembles the file header and every present area, in f.Order,
// back to back on block boundaries.
func (f *FRU) encode(flags *Flags) ([]byte, error) {
	header := make([]byte, fileHeaderLen)
	header[0] = fileVersion

	body := make([]byte, 0, 256)
	nextBlock := 1
	for _, a := range f.Order {
		if !f.Present[presentIndex(a)] {
			continue
		}
		data, err := f.encodeArea(a)
		if err != nil {
			return nil, err
		}
		if nextBlock > 0xFF {
			return nil, newErr(KindTooBig, AreaSource(a))
		}
		header[int(a)] = byte(nextBlock)
		body = append(body, data...)
		nextBlock += len(data) / blockSize
	}
	header[6] = 0
	header[7] = checksum(header[:7])

	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)

	if len(out) > maxFileSize && !(flags != nil && flags.IgnoreBig) {
		return nil, newErr(KindTooBig, SourceGeneral)
	}
	return out, nil
}

func (f *FRU) encodeArea(a AreaType) ([]byte, error) {
	switch a {
	case AreaInternal:
		return encodeInternalAreaFull(f.Internal)
	case AreaChassis:
		return f.Chassis.encode()
	case AreaBoard:
		return f.Board.encode()
	case AreaProduct:
		return f.Product.encode()
	case AreaMR:
		return encodeMRArea(f.MR)
	default:
		return nil, newErr(KindBadAreaType, SourceGeneral)
	}
}

type areaSpan struct {
	area  AreaType
	start int
}

// decodeFile parses a full FRU image: header, then each present area, in
// on-disk order. Per area, the area's end is the next area's start (by
// on-disk position, not header slot) or EOF - the Internal Use and
// Multirecord areas have no length field of their own and rely on this.
func decodeFile(data []byte, flags *Flags, logger *log.Helper) (*FRU, error) {
	if len(data) < fileHeaderLen {
		return nil, newErr(KindTooSmall, SourceGeneral)
	}
	header := data[:fileHeaderLen]
	if header[0]&0x0F != fileVersion {
		if !(flags != nil && flags.IgnoreFileVersion) {
			return nil, newErr(KindHeaderVersion, SourceGeneral)
		}
		logger.Warnf("ignoring unexpected file header version %#x", header[0])
	}
	if header[6] != 0 {
		return nil, newErr(KindHeaderBadPointer, SourceGeneral)
	}
	if !verifyChecksum(header) {
		if !(flags != nil && flags.IgnoreFileHeaderChecksum) {
			return nil, newErr(KindHeaderChecksum, SourceGeneral)
		}
		logger.Warnf("ignoring file header checksum mismatch")
	}

	var spans []areaSpan
	for i, a := range allAreas {
		off := header[int(a)]
		if off == 0 {
			continue
		}
		start := int(off) * blockSize
		if start >= len(data) {
			return nil, newErrAt(KindHeaderBadPointer, SourceGeneral, i)
		}
		spans = append(spans, areaSpan{a, start})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start == spans[i-1].start {
			return nil, newErr(KindDuplicateArea, SourceGeneral)
		}
	}

	f := Init()
	present := make(map[AreaType]bool, len(spans))
	for _, s := range spans {
		present[s.area] = true
	}
	idx := 0
	for _, a := range allAreas {
		if !present[a] {
			f.Order[idx] = a
			idx++
		}
	}
	for _, s := range spans {
		f.Order[idx] = s.area
		idx++
	}
	for _, a := range allAreas {
		f.Present[presentIndex(a)] = present[a]
	}

	for i, s := range spans {
		end := len(data)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		areaData := data[s.start:end]
		if err := f.decodeArea(s.area, areaData, flags, logger); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *FRU) decodeArea(a AreaType, data []byte, flags *Flags, logger *log.Helper) error {
	switch a {
	case AreaInternal:
		hexStr, err := decodeInternalArea(data, len(data), flags, logger)
		if err != nil {
			return err
		}
		f.Internal = hexStr
	case AreaChassis:
		c, _, err := decodeChassisArea(data, flags, logger)
		if err != nil {
			return err
		}
		f.Chassis = c
	case AreaBoard:
		b, _, err := decodeBoardArea(data, flags, logger)
		if err != nil {
			return err
		}
		f.Board = b
	case AreaProduct:
		p, _, err := decodeProductArea(data, flags, logger)
		if err != nil {
			return err
		}
		f.Product = p
	case AreaMR:
		recs, err := decodeMRArea(data, flags, logger)
		if err != nil {
			return err
		}
		f.MR = recs
	default:
		return newErr(KindBadAreaType, SourceGeneral)
	}
	return nil
}
