package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/defpeek/internal/ctxlog"
	"github.com/vk/defpeek/internal/fsutil"
)

// MaxID is the highest id a definition file may carry. Collections are dense
// by id, so the bound caps what a single file name can allocate.
const MaxID = 1 << 20

var (
	// ErrNoID is returned when a definition file name is not "<id>.json".
	ErrNoID = errors.New("file name is not a numeric id")
	// ErrIDOutOfRange is returned for ids above MaxID.
	ErrIDOutOfRange = errors.New("id out of range")
)

// ReadJSONFile decodes one JSON document with numbers normalized.
func ReadJSONFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file %s: %w", path, err)
	}
	return normalize(v), nil
}

// ReadRecord reads a JSON file whose top level must be an object.
func ReadRecord(path string) (Record, error) {
	v, err := ReadJSONFile(path)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSON file %s does not hold an object", path)
	}
	return Record(m), nil
}

// IDFromFilename returns the id named by a file's base name, which must be all
// digits before its extension: "1234.json" yields 1234, "1234_backup.json"
// is rejected.
func IDFromFilename(path string) (int, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || strings.TrimLeft(stem, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %s", ErrNoID, base)
	}
	id, err := strconv.Atoi(stem)
	if err != nil || id > MaxID {
		return 0, fmt.Errorf("%w: %s exceeds %d", ErrIDOutOfRange, base, MaxID)
	}
	return id, nil
}

// ReadJSONDir loads every "*.json" file directly inside dirPath into a
// collection indexed by the id in each file name. Any unreadable or malformed
// file fails the whole read.
func ReadJSONDir(ctx context.Context, dirPath string) (*Collection, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading definition directory.", "path", dirPath)

	files, err := fsutil.ListFiles(dirPath, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to list definition directory %s: %w", dirPath, err)
	}

	c := &Collection{}
	for _, path := range files {
		id, err := IDFromFilename(path)
		if err != nil {
			return nil, err
		}
		rec, err := ReadRecord(path)
		if err != nil {
			return nil, err
		}
		c.set(id, rec)
	}

	logger.Debug("Definition directory read.", "path", dirPath, "files", len(files), "max_id", c.Len()-1)
	return c, nil
}

// ReadRows splits a delimited text file into raw rows of fields. A single
// trailing newline does not produce an empty final row.
func ReadRows(path string, delim string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.Split(l, delim)
	}
	return rows, nil
}

// ReadTable reads a delimited file and zips each row with names. With no
// names, the first row of the file supplies them. Cells missing from short
// rows become empty strings; extra cells are dropped.
func ReadTable(path string, delim string, names ...string) ([]Record, error) {
	rows, err := ReadRows(path, delim)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		if len(rows) == 0 {
			return nil, nil
		}
		names, rows = rows[0], rows[1:]
	}

	out := make([]Record, len(rows))
	for i, row := range rows {
		rec := make(Record, len(names))
		for j, name := range names {
			if j < len(row) {
				rec[name] = row[j]
			} else {
				rec[name] = ""
			}
		}
		out[i] = rec
	}
	return out, nil
}

// ReadCSV is ReadTable with a comma delimiter.
func ReadCSV(path string, names ...string) ([]Record, error) {
	return ReadTable(path, ",", names...)
}

// ReadTSV is ReadTable with a tab delimiter.
func ReadTSV(path string, names ...string) ([]Record, error) {
	return ReadTable(path, "\t", names...)
}
