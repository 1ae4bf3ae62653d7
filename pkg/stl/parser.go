package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ysnawara/cad-stl-analyzer/pkg/geometry"
)

// Parse reads an STL file and returns a Model.
// The format is detected from the content, never from the file
// extension: files starting with the ASCII "solid" keyword are parsed
// as text, everything else as little-endian binary. Vertices are
// promoted to float64 on load so later summation does not compound
// single-precision error.
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseReader(file, stem)
}

// ParseReader parses STL data from an arbitrary byte stream.
// name seeds the model name; a name found in the file wins.
func ParseReader(r io.Reader, name string) (*Model, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("%w: file shorter than any STL header", ErrUnsupportedFormat)
	}

	var model *Model
	if string(head) == "solid" {
		model, err = parseASCII(br)
	} else {
		model, err = parseBinary(br)
	}
	if err != nil {
		return nil, err
	}

	if model.TriangleCount() == 0 {
		return nil, ErrZeroTriangles
	}
	if model.Name == "" {
		model.Name = name
	}
	return model, nil
}

// parseASCII parses the keyword-delimited text layout:
// nested solid / facet normal / outer loop / vertex blocks.
// Unparseable coordinate fields fall back to zero rather than failing;
// bad geometry in a valid container is a downstream quality problem,
// not a load error.
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, _ := strconv.ParseFloat(fields[2], 64)
				y, _ := strconv.ParseFloat(fields[3], 64)
				z, _ := strconv.ParseFloat(fields[4], 64)
				currentNormal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

// binaryTriangle matches the 50-byte on-disk record: facet normal,
// three vertices (float32 each) and a trailing attribute field.
type binaryTriangle struct {
	Normal     [3]float32
	V0, V1, V2 [3]float32
	Attribute  uint16
}

// parseBinary parses the little-endian binary layout:
// 80-byte header, uint32 triangle count, then one record per triangle.
// The stored normal and attribute bytes are read but only the vertex
// triples matter for analysis.
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("%w: incomplete binary header", ErrTruncated)
	}

	if headerStr := string(bytes.TrimRight(header, "\x00")); headerStr != "" {
		model.Name = strings.TrimSpace(headerStr)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("%w: missing triangle count", ErrTruncated)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var rec binaryTriangle
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: triangle %d of %d", ErrTruncated, i, triangleCount)
			}
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		model.AddTriangle(geometry.NewTriangle(
			toVector3(rec.Normal),
			toVector3(rec.V0),
			toVector3(rec.V1),
			toVector3(rec.V2),
		))
	}

	return model, nil
}

func toVector3(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
