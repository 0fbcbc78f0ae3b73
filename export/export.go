// Package export writes embedded airfoil geometry as a flat numeric
// table: one row per point, three space-separated fields (X Y Z), six
// decimal places, no header. The format is the plainest thing a CFD
// preprocessor or spreadsheet will ingest without coaxing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// coordinateFormat fixes the field precision; six decimals keeps
// unit-chord geometry stable to sub-micron without bloating the file.
const coordinateFormat = "%.6f"

// Write streams pts to w as the X Y Z table. Any writer error is
// reported as-is; nothing is written beyond the failing row.
//
// Complexity: O(n) time, O(1) space.
func Write(w io.Writer, pts []r3.Vec) error {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	for _, p := range pts {
		row := []string{
			fmt.Sprintf(coordinateFormat, p.X),
			fmt.Sprintf(coordinateFormat, p.Y),
			fmt.Sprintf(coordinateFormat, p.Z),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}

	return nil
}

// WriteFile writes the table to path, creating or truncating the file.
// The returned error carries the path for stage-level reporting.
func WriteFile(path string, pts []r3.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	if err = Write(f, pts); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %q: %w", path, err)
	}

	return nil
}
