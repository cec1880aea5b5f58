package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Sentinel is the marker line separating the free-form file header from the
// tabular data records.
const Sentinel = "#START"

// timeLayout matches the six leading timestamp tokens of a data line once
// they are re-joined with single spaces, e.g. "1998 01 01 00 00 00".
const timeLayout = "2006 01 02 15 04 05"

// ErrMalformedFile indicates the input file does not follow the SWMF IMF
// layout: the sentinel line is missing or a data record cannot be parsed.
var ErrMalformedFile = errors.New("malformed IMF file")

// ReadImfFile reads an SWMF-format IMF ASCII file and returns the fully
// populated dataset. Header lines are skipped until a line whose trimmed
// content equals Sentinel; every remaining line is one data record.
//
// A record with fewer value columns than BaseFieldOrder names is accepted:
// the missing trailing fields stay at zero and a warning is appended to
// ParseWarnings. Extra trailing columns are ignored.
func ReadImfFile(path string) (*ImfData, error) {
	if path == "" {
		return nil, errors.New("input file path must not be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open IMF file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Scan past the header. Reaching EOF first means this is not an SWMF
	// IMF file at all.
	found := false
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == Sentinel {
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read IMF file %s: %w", path, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: no %q line in %s", ErrMalformedFile, Sentinel, path)
	}

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read IMF file %s: %w", path, err)
	}

	data := NewImfData(path, len(lines))
	for i, line := range lines {
		parts := strings.Fields(line)
		if len(parts) < 6 {
			return nil, fmt.Errorf("%w: data line %d has %d tokens, need 6 for the timestamp",
				ErrMalformedFile, i+1, len(parts))
		}

		// The timestamp tokens may be separated by tabs or runs of
		// spaces; re-join with single spaces before parsing.
		t, err := time.Parse(timeLayout, strings.Join(parts[:6], " "))
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp on data line %d: %v",
				ErrMalformedFile, i+1, err)
		}
		data.Time[i] = t

		// parts[6] is the reserved millisecond column.
		var vals []string
		if len(parts) > 7 {
			vals = parts[7:]
		}
		if len(vals) < len(BaseFieldOrder) {
			data.ParseWarnings = append(data.ParseWarnings,
				fmt.Sprintf("data line %d: %d value columns, expected %d; remaining fields left at 0",
					i+1, len(vals), len(BaseFieldOrder)))
		}

		for k, name := range BaseFieldOrder {
			if k >= len(vals) {
				break
			}
			v, err := strconv.ParseFloat(vals[k], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: data line %d: bad value %q for field %s",
					ErrMalformedFile, i+1, vals[k], name)
			}
			data.Field(name)[i] = v
		}
	}

	return data, nil
}
