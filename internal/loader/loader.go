package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"scheduler-project/internal/core"
)

// Input format, one process per line:
//
//	pid,arrival_time,burst_time[,priority]
//
// Priority defaults to 0 when the column is absent. A header line is skipped.

var ErrInvalidRecord = errors.New("invalid process record")

// LoadProcesses parses process records from r. Records the scheduling core is
// not defined over (non-positive burst, negative arrival, duplicate pid) are
// rejected with an error rather than filtered silently.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3 or 4", ErrInvalidRecord, i+1, len(row))
		}

		pid, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: pid %q", ErrInvalidRecord, i+1, row[0])
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: arrival time %q", ErrInvalidRecord, i+1, row[1])
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: burst time %q", ErrInvalidRecord, i+1, row[2])
		}
		priority := 0
		if len(row) == 4 {
			priority, err = strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: priority %q", ErrInvalidRecord, i+1, row[3])
			}
		}

		if burst <= 0 {
			return nil, fmt.Errorf("%w: process %d has burst time %d, want > 0", ErrInvalidRecord, pid, burst)
		}
		if arrival < 0 {
			return nil, fmt.Errorf("%w: process %d has arrival time %d, want >= 0", ErrInvalidRecord, pid, arrival)
		}
		if seen[pid] {
			return nil, fmt.Errorf("%w: duplicate process id %d", ErrInvalidRecord, pid)
		}
		seen[pid] = true

		processes = append(processes, core.Process{
			Pid:         pid,
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		})
	}
	return processes, nil
}

// LoadProcessesFile opens path and loads its records.
func LoadProcessesFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()
	return LoadProcesses(f)
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}
