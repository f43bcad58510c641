package cli

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"testing"
)

func TestEXIFLittleEndian(t *testing.T) {
	b, err := buildJPEGWithEXIF(binary.LittleEndian)
	if err != nil {
		t.Fatalf("buildJPEGWithEXIF failed: %v", err)
	}
	ex := extractFromTempJPEG(t, b)

	if ex.Orientation != 6 {
		t.Fatalf("expected Orientation 6, got %d", ex.Orientation)
	}
	if ex.DateTimeOriginal != "2020:01:02 03:04:05" {
		t.Fatalf("expected DateTimeOriginal, got %q", ex.DateTimeOriginal)
	}
	if ex.Software != "GoTest" {
		t.Fatalf("expected Software GoTest, got %q", ex.Software)
	}
}

func TestEXIFBigEndian(t *testing.T) {
	b, err := buildJPEGWithEXIF(binary.BigEndian)
	if err != nil {
		t.Fatalf("buildJPEGWithEXIF failed: %v", err)
	}
	ex := extractFromTempJPEG(t, b)

	if ex.Orientation != 6 {
		t.Fatalf("big-endian parsing mismatch: %+v", ex)
	}
	if ex.DateTimeOriginal != "2020:01:02 03:04:05" {
		t.Fatalf("expected DateTimeOriginal, got %q", ex.DateTimeOriginal)
	}
}

// Malformed IFD pointer should not panic; result may be empty.
func TestEXIFMalformedIFD(t *testing.T) {
	b, err := buildJPEGWithMalformedIFD()
	if err != nil {
		t.Fatalf("buildJPEGWithMalformedIFD failed: %v", err)
	}
	ex := extractFromTempJPEG(t, b)
	if ex.Orientation != 0 {
		t.Fatalf("expected Orientation 0 for malformed IFD, got %d", ex.Orientation)
	}
}

func extractFromTempJPEG(t *testing.T, b []byte) EXIF {
	t.Helper()
	f, err := os.CreateTemp("", "exif-fixture-*.jpg")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(b); err != nil {
		f.Close()
		t.Fatalf("write temp file failed: %v", err)
	}
	f.Close()

	ex, err := ExtractEXIFStruct(f.Name())
	if err != nil {
		t.Fatalf("ExtractEXIFStruct failed: %v", err)
	}
	return ex
}

// buildJPEGWithEXIF builds a minimal TIFF EXIF block (IFD0: Orientation,
// ExifIFDPointer, Software; ExifIFD: DateTimeOriginal) in the given byte
// order, wrapped in a JPEG APP1 segment.
func buildJPEGWithEXIF(order binary.ByteOrder) ([]byte, error) {
	var tiff bytes.Buffer
	if order == binary.BigEndian {
		tiff.Write([]byte{'M', 'M'})
	} else {
		tiff.Write([]byte{'I', 'I'})
	}
	binary.Write(&tiff, order, uint16(0x2A))
	binary.Write(&tiff, order, uint32(8))

	type ifdEntry struct {
		tag, typeID  uint16
		count, value uint32
	}

	ifd0Count := uint16(3) // Orientation, ExifIFDPointer, Software
	ifd0Len := 2 + int(ifd0Count)*12 + 4
	exifOffset := 8 + uint32(ifd0Len)

	exifCount := uint16(1) // DateTimeOriginal
	exifIFDLen := 2 + int(exifCount)*12 + 4
	dataStart := exifOffset + uint32(exifIFDLen)

	orientationVal := uint32(6)
	if order == binary.BigEndian {
		orientationVal = uint32(6) << 16 // SHORT occupies high-order bytes
	}

	ifd0Entries := []ifdEntry{
		{tag: 0x0112, typeID: 3, count: 1, value: orientationVal}, // Orientation
		{tag: 0x8769, typeID: 4, count: 1, value: exifOffset},     // ExifIFDPointer
		{tag: 0x0131, typeID: 2, count: 0, value: 0},              // Software, patched below
	}

	binary.Write(&tiff, order, ifd0Count)
	for _, e := range ifd0Entries {
		binary.Write(&tiff, order, e.tag)
		binary.Write(&tiff, order, e.typeID)
		binary.Write(&tiff, order, e.count)
		binary.Write(&tiff, order, e.value)
	}
	binary.Write(&tiff, order, uint32(0)) // no next IFD

	if uint32(tiff.Len()) != exifOffset {
		return nil, fmt.Errorf("unexpected exifOffset mismatch: %d vs %d", tiff.Len(), exifOffset)
	}

	dt := []byte("2020:01:02 03:04:05")
	dtOffset := dataStart

	binary.Write(&tiff, order, exifCount)
	binary.Write(&tiff, order, uint16(0x9003)) // DateTimeOriginal
	binary.Write(&tiff, order, uint16(2))      // ASCII
	binary.Write(&tiff, order, uint32(len(dt)+1))
	binary.Write(&tiff, order, dtOffset)
	binary.Write(&tiff, order, uint32(0)) // no next IFD

	tiff.Write(dt)
	tiff.Write([]byte{0})

	soft := []byte("GoTest")
	softOffset := uint32(tiff.Len())
	tiff.Write(soft)
	tiff.Write([]byte{0})

	buf := tiff.Bytes()
	ifd0EntriesStart := 8 + 2
	softEntryIndex := 2
	softCountPos := ifd0EntriesStart + softEntryIndex*12 + 4
	softValuePos := ifd0EntriesStart + softEntryIndex*12 + 8
	if softValuePos+4 > len(buf) {
		return nil, fmt.Errorf("softEntryPos out of range")
	}
	order.PutUint32(buf[softCountPos:softCountPos+4], uint32(len(soft)+1))
	order.PutUint32(buf[softValuePos:softValuePos+4], softOffset)

	return wrapJPEGExif(buf), nil
}

// buildJPEGWithMalformedIFD builds a TIFF with an IFD0 offset that points beyond the buffer.
func buildJPEGWithMalformedIFD() ([]byte, error) {
	var tiff bytes.Buffer
	tiff.Write([]byte{'I', 'I'})
	binary.Write(&tiff, binary.LittleEndian, uint16(0x2A))
	binary.Write(&tiff, binary.LittleEndian, uint32(0xFFFFFF))
	return wrapJPEGExif(tiff.Bytes()), nil
}

func wrapJPEGExif(tiffBuf []byte) []byte {
	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8})
	out.Write([]byte{0xFF, 0xE1})
	app1Len := uint16(2 + 6 + len(tiffBuf))
	binary.Write(&out, binary.BigEndian, app1Len)
	out.Write([]byte("Exif\x00\x00"))
	out.Write(tiffBuf)
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}
