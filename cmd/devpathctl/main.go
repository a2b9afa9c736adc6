// Command devpathctl decodes a UEFI device path byte stream given as a hex
// string and prints the resulting tree as JSON, the way test_devpath did for
// the teacher's string-based parser but against the wire format instead.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bmcpi/efidevpath/internal/devpath"
	"github.com/bmcpi/efidevpath/internal/efi"
	"github.com/go-logr/stdr"
)

func main() {
	var (
		mode = flag.String("mode", "path", "one of: node, path, paths, bootentry")
		in   = flag.String("hex", "", "hex-encoded device path bytes (reads stdin if empty)")
	)
	flag.Parse()

	log := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	data, err := readInput(*in)
	if err != nil {
		log.Error(err, "failed to read input")
		os.Exit(1)
	}

	result, err := decode(*mode, data)
	if err != nil {
		log.Error(err, "decode failed", "mode", *mode)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error(err, "failed to encode result")
		os.Exit(1)
	}
}

func readInput(arg string) ([]byte, error) {
	s := arg
	if s == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		s = string(raw)
	}
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	return hex.DecodeString(s)
}

func decode(mode string, data []byte) (any, error) {
	switch mode {
	case "node":
		return devpath.DecodeNode(data)
	case "path":
		return devpath.DecodePath(data)
	case "paths":
		return devpath.DecodePaths(data)
	case "bootentry":
		return efi.DecodeBootEntry(data)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
