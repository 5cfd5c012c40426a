// Package codebook reads and writes the code table file that lets a
// compressed text be decompressed in a later, separate run.
//
// The file is a JSON object of "code": "symbol" pairs.
package codebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffman-text"
)

var log = logging.MustGetLogger("huffman-text/codebook")

// DefaultFileName is the name of the code table file when none is given.
const DefaultFileName = "huffman_codes.json"

// Write writes codes to w as indented JSON followed by a newline.
func Write(w io.Writer, codes huffman.CodeToSymbol) error {
	raw, err := codes.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)
	return err
}

// Read parses a code table from r and returns a Decoder for it.
func Read(r io.Reader) (huffman.Decoder, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return huffman.Decoder{}, err
	}

	var d huffman.Decoder
	if err := json.Unmarshal(raw, &d); err != nil {
		return huffman.Decoder{}, err
	}
	return d, nil
}

// Save writes codes to the file at path.  The table is written to a
// temporary file in the same directory first and then renamed over path, so
// that a failed Save never leaves a truncated table behind.
func Save(path string, codes huffman.CodeToSymbol) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := ioutil.TempFile(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("codebook: %w", err)
	}
	tmpName := f.Name()
	needRemove := true
	defer func() {
		if needRemove {
			_ = os.Remove(tmpName)
		}
	}()

	err = Write(f, codes)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("codebook: writing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("codebook: %w", err)
	}
	needRemove = false

	log.Debugf("saved %d codes to %s", len(codes), path)
	return nil
}

// Load reads the code table file at path and returns a Decoder for it.
func Load(path string) (huffman.Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return huffman.Decoder{}, fmt.Errorf("codebook: %w", err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return huffman.Decoder{}, fmt.Errorf("codebook: parsing %s: %w", path, err)
	}

	log.Debugf("loaded %v from %s", d, path)
	return d, nil
}
