// SPDX-License-Identifier: MIT

package estim

import "fmt"

// Encoding is a candidate column-group encoding.
type Encoding uint8

const (
	// Uncompressed stores the group as dense float64s.
	Uncompressed Encoding = iota
	// DDC maps every row to a dictionary slot.
	DDC
	// OLE stores, per tuple, offset lists in 64K-row segments.
	OLE
	// RLE stores, per tuple, (start, length) runs.
	RLE
)

var allEncodings = []Encoding{Uncompressed, DDC, OLE, RLE}

func (e Encoding) String() string {
	switch e {
	case Uncompressed:
		return "uncompressed"
	case DDC:
		return "ddc"
	case OLE:
		return "ole"
	case RLE:
		return "rle"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// Factors are the bitmap statistics the size model needs.
type Factors struct {
	Columns      int
	Rows         int
	Values       int
	Offsets      int
	Runs         int // zero unless RLE is enabled
	Singletons   int
	ContainsZero bool
}

func computeFactors(b *Bitmap, withRuns bool) Factors {
	f := Factors{
		Columns:    len(b.cols),
		Rows:       b.rows,
		Values:     b.NumValues(),
		Offsets:    b.NumOffsets(),
		Singletons: b.NumSingletons(),
	}
	f.ContainsZero = f.Offsets < f.Rows
	if withRuns {
		f.Runs = b.NumRuns()
	}

	return f
}

// Size model constants, in bytes.
const (
	groupHeaderBytes = 16
	colIndexBytes    = 4
	valueBytes       = 8
	pointerBytes     = 4
	oleOffsetBytes   = 2
	rleRunBytes      = 4
	segmentRows      = 1 << 16
)

// mapWidth is the DDC mapping width for n dictionary slots.
func mapWidth(n int) int64 {
	switch {
	case n <= 1<<8:
		return 1
	case n <= 1<<16:
		return 2
	default:
		return 4
	}
}

// EstimateSize prices one encoding. All sizes share the group header and
// column index list; compressed encodings add a dictionary of
// Values × Columns float64s.
func (f Factors) EstimateSize(e Encoding) int64 {
	base := int64(groupHeaderBytes + colIndexBytes*f.Columns)
	dict := int64(valueBytes) * int64(f.Values) * int64(f.Columns)
	ptrs := int64(pointerBytes) * int64(f.Values+1)

	switch e {
	case DDC:
		slots := f.Values
		if f.ContainsZero {
			slots++
		}
		return base + dict + int64(f.Rows)*mapWidth(slots)
	case OLE:
		segments := int64((f.Rows + segmentRows - 1) / segmentRows)
		return base + dict + ptrs + oleOffsetBytes*(int64(f.Offsets)+int64(f.Values)*segments)
	case RLE:
		return base + dict + ptrs + rleRunBytes*int64(f.Runs)
	default:
		return base + int64(valueBytes)*int64(f.Rows)*int64(f.Columns)
	}
}

// GroupInfo is the estimate for one column group.
type GroupInfo struct {
	Columns  []int
	Factors  Factors
	Sizes    map[Encoding]int64
	Best     Encoding
	BestSize int64
}

func newGroupInfo(b *Bitmap, valid []Encoding) GroupInfo {
	withRuns := false
	for _, e := range valid {
		withRuns = withRuns || e == RLE
	}
	info := GroupInfo{
		Columns: b.Columns(),
		Factors: computeFactors(b, withRuns),
		Sizes:   make(map[Encoding]int64, len(valid)),
	}
	for i, e := range valid {
		s := info.Factors.EstimateSize(e)
		info.Sizes[e] = s
		if i == 0 || s < info.BestSize {
			info.Best, info.BestSize = e, s
		}
	}

	return info
}
