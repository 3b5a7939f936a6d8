package raster

import (
	"encoding/binary"

	"github.com/fkcurrie/led-animator/pkg/pixel"
)

// Header locations used by the uncompressed 24-bit bitmaps GIMP writes with
// "Do not write colorspace information" and "24 bit R8 G8 B8".
const (
	offsetDataStart   = 10
	offsetDIBSize     = 14
	offsetWidth       = 18
	offsetHeight      = 22
	offsetBitCount    = 28
	offsetCompression = 30

	minHeaderLen  = offsetHeight + 4
	bytesPerPixel = 3

	// Larger images are not useful on an LED matrix and would only cost memory
	maxDimension = 1 << 14
)

// Decode parses a 24-bit uncompressed bottom-up bitmap. Rows are stored
// bottom to top, each padded to four bytes, pixels in B-G-R order. The
// returned raster has its top row first.
func Decode(data []byte) (*Raster, error) {
	if len(data) < minHeaderLen {
		return nil, decodeErrorf("header truncated at %d bytes", len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, decodeErrorf("missing BM signature")
	}

	dataStart := binary.LittleEndian.Uint32(data[offsetDataStart:])
	width := int(int32(binary.LittleEndian.Uint32(data[offsetWidth:])))
	height := int(int32(binary.LittleEndian.Uint32(data[offsetHeight:])))

	if width <= 0 || height <= 0 {
		return nil, decodeErrorf("unsupported dimensions %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return nil, decodeErrorf("dimensions %dx%d too large", width, height)
	}

	// The full info header carries the pixel format, older headers cannot
	// describe a 24-bit image at these offsets at all
	dibSize := binary.LittleEndian.Uint32(data[offsetDIBSize:])
	if dibSize >= 40 {
		if len(data) < offsetCompression+4 {
			return nil, decodeErrorf("info header truncated")
		}
		if bpp := binary.LittleEndian.Uint16(data[offsetBitCount:]); bpp != 24 {
			return nil, decodeErrorf("unsupported bit depth %d", bpp)
		}
		if c := binary.LittleEndian.Uint32(data[offsetCompression:]); c != 0 {
			return nil, decodeErrorf("unsupported compression %d", c)
		}
	}

	stride := (width*bytesPerPixel + 3) / 4 * 4
	// The last row needs no padding to be complete
	need := uint64(dataStart) + uint64(stride)*uint64(height-1) + uint64(width*bytesPerPixel)
	if need > uint64(len(data)) {
		return nil, decodeErrorf("pixel data truncated, need %d bytes, have %d", need, len(data))
	}

	r := New(width, height)
	for stored := 0; stored < height; stored++ {
		line := r.Pix[height-1-stored]
		offset := int(dataStart) + stored*stride
		for col := range line {
			px := data[offset+col*bytesPerPixel:]
			line[col] = pixel.RGB{R: px[2], G: px[1], B: px[0]}
		}
	}
	return r, nil
}

// Encode writes the raster in the format Decode reads, with a 40-byte info
// header. It is used to snapshot frames and to build test assets.
func Encode(r *Raster) []byte {
	const headerLen = 14 + 40
	stride := (r.Width*bytesPerPixel + 3) / 4 * 4
	size := headerLen + stride*r.Height

	out := make([]byte, size)
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(size))
	binary.LittleEndian.PutUint32(out[offsetDataStart:], headerLen)
	binary.LittleEndian.PutUint32(out[offsetDIBSize:], 40)
	binary.LittleEndian.PutUint32(out[offsetWidth:], uint32(r.Width))
	binary.LittleEndian.PutUint32(out[offsetHeight:], uint32(r.Height))
	binary.LittleEndian.PutUint16(out[26:], 1)
	binary.LittleEndian.PutUint16(out[offsetBitCount:], 24)
	binary.LittleEndian.PutUint32(out[34:], uint32(stride*r.Height))

	for row := 0; row < r.Height; row++ {
		offset := headerLen + (r.Height-1-row)*stride
		for col, c := range r.Pix[row] {
			i := offset + col*bytesPerPixel
			out[i], out[i+1], out[i+2] = c.B, c.G, c.R
		}
	}
	return out
}
