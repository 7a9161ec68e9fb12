// Package wire implements the length-prefixed binary suggestion-list
// encoding embedding hosts use to pull ranked results out of the engine
// without depending on its Go types directly.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gospellx/symspell/symspell"
)

// Encode serializes suggestions as: little-endian u32 count, then for each
// suggestion a length-prefixed record of u32 count, u32 distance, u8
// term-byte-length, followed by the term's UTF-8 bytes.
func Encode(suggestions symspell.Suggestions) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(suggestions))); err != nil {
		return nil, fmt.Errorf("wire: writing count: %w", err)
	}
	for _, s := range suggestions {
		record, err := encodeOne(s)
		if err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint32(len(record))); err != nil {
			return nil, fmt.Errorf("wire: writing record length: %w", err)
		}
		buf.Write(record)
	}
	return buf.Bytes(), nil
}

func encodeOne(s symspell.Suggestion) ([]byte, error) {
	termBytes := []byte(s.Term)
	if len(termBytes) > math.MaxUint8 {
		return nil, fmt.Errorf("wire: term %q exceeds 255 bytes", s.Term)
	}
	if s.Count < 0 || s.Count > math.MaxUint32 {
		return nil, fmt.Errorf("wire: count %d out of u32 range", s.Count)
	}
	if s.Distance < 0 || s.Distance > math.MaxUint32 {
		return nil, fmt.Errorf("wire: distance %d out of u32 range", s.Distance)
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(s.Count))
	binary.Write(&buf, binary.LittleEndian, uint32(s.Distance))
	buf.WriteByte(byte(len(termBytes)))
	buf.Write(termBytes)
	return buf.Bytes(), nil
}

// Decode parses the format Encode produces. It is not mandated by the wire
// format's external contract but exists so the encoding has an in-repo
// consumer to exercise it in tests.
func Decode(data []byte) (symspell.Suggestions, error) {
	r := bytes.NewReader(data)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("wire: reading count: %w", err)
	}
	out := make(symspell.Suggestions, 0, count)
	for i := uint32(0); i < count; i++ {
		var recordLen uint32
		if err := binary.Read(r, binary.LittleEndian, &recordLen); err != nil {
			return nil, fmt.Errorf("wire: reading record %d length: %w", i, err)
		}
		record := make([]byte, recordLen)
		if _, err := r.Read(record); err != nil {
			return nil, fmt.Errorf("wire: reading record %d body: %w", i, err)
		}
		s, err := decodeOne(record)
		if err != nil {
			return nil, fmt.Errorf("wire: record %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeOne(record []byte) (symspell.Suggestion, error) {
	if len(record) < 9 {
		return symspell.Suggestion{}, fmt.Errorf("record too short: %d bytes", len(record))
	}
	count := binary.LittleEndian.Uint32(record[0:4])
	distance := binary.LittleEndian.Uint32(record[4:8])
	termLen := int(record[8])
	if len(record) < 9+termLen {
		return symspell.Suggestion{}, fmt.Errorf("record truncated: need %d term bytes, have %d", termLen, len(record)-9)
	}
	return symspell.Suggestion{
		Term:     string(record[9 : 9+termLen]),
		Distance: int(distance),
		Count:    int64(count),
	}, nil
}
