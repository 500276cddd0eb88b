package chrometrace

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadTrace decodes a trace container from r. Gzip-compressed input is
// detected by its magic bytes and decompressed transparently, so traces
// saved from chrome://tracing can be loaded without gunzipping first.
func ReadTrace(r io.Reader) (*Container, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}

	var src io.Reader = br
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	var container Container
	if err := json.NewDecoder(src).Decode(&container); err != nil {
		return nil, fmt.Errorf("decoding trace JSON: %w", err)
	}
	return &container, nil
}

// ReadTraceFile reads and decodes the trace file at path.
func ReadTraceFile(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	container, err := ReadTrace(f)
	if err != nil {
		return nil, fmt.Errorf("reading trace file %s: %w", path, err)
	}
	return container, nil
}
