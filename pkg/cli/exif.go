package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// EXIF represents a parsed subset of EXIF metadata with typed fields,
// trimmed to the tags relevant to a pixel-art sprite's provenance: camera
// exposure/GPS metadata doesn't apply to exported or scanned sprite sheets.
type EXIF struct {
	Make             string            `json:"make,omitempty"`
	Model            string            `json:"model,omitempty"`
	Software         string            `json:"software,omitempty"`
	Orientation      int               `json:"orientation,omitempty"`
	DateTime         string            `json:"datetime,omitempty"`
	DateTimeOriginal string            `json:"datetime_original,omitempty"`
	Raw              map[uint32]string `json:"raw,omitempty"`
}

const (
	ifdType0    = 0
	ifdTypeExif = 1
)

// ExtractEXIFStruct reads JPEG file at path and returns a typed EXIF struct.
func ExtractEXIFStruct(path string) (EXIF, error) {
	var out EXIF
	b, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if len(b) < 3 || !bytes.Equal(b[:3], []byte{0xFF, 0xD8, 0xFF}) {
		return out, fmt.Errorf("unsupported format for EXIF extraction")
	}
	tiffStart, err := parseTIFFStartFromJPEG(b)
	if err != nil {
		return out, err
	}
	tags, err := readEXIFTags(b, tiffStart)
	if err != nil {
		return out, err
	}
	out = convertTagsToEXIF(tags)
	return out, nil
}

// convertTagsToEXIF converts the keyed tag map into a typed EXIF struct.
func convertTagsToEXIF(tags map[uint32]string) EXIF {
	out := EXIF{Raw: map[uint32]string{}}
	for k, v := range tags {
		out.Raw[k] = v
	}
	get := func(ifd int, tag uint16) (string, bool) {
		key := (uint32(ifd) << 16) | uint32(tag)
		v, ok := tags[key]
		return v, ok
	}
	// IFD0
	if v, ok := get(ifdType0, 0x010F); ok { // Make
		out.Make = v
	}
	if v, ok := get(ifdType0, 0x0110); ok { // Model
		out.Model = v
	}
	if v, ok := get(ifdType0, 0x0112); ok { // Orientation
		if vi, err := strconv.Atoi(v); err == nil {
			out.Orientation = vi
		}
	}
	if v, ok := get(ifdType0, 0x0132); ok { // DateTime
		out.DateTime = v
	}
	if v, ok := get(ifdType0, 0x0131); ok { // Software
		out.Software = v
	}
	if v, ok := get(ifdTypeExif, 0x9003); ok { // DateTimeOriginal
		out.DateTimeOriginal = v
	}
	return out
}
