// goload - game-object document loader CLI
//
// Usage:
//
//	goload check [options] file...    Load documents and report warnings and errors
//	goload dump [options] [file]      Print the loaded entity as JSON
//	goload fmt [options] [file]       Re-emit the document in canonical text form
//	goload types                      List the registered component types
//	goload version                    Print version info
//
// Files ending in .gz or .zst are decompressed on the fly.
// If no file is given, dump and fmt read from stdin.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Neumenon/gameobject/gameobject"
)

const libVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	opts := gameobject.DefaultLoadOptions()
	compact := false
	var files []string
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--strict":
			opts.Strict = true
		case arg == "--compact":
			compact = true
		case strings.HasPrefix(arg, "--max-depth="):
			n, err := parseIntArg(arg, "--max-depth=")
			if err != nil || n <= 0 {
				fatal("invalid %s", arg)
			}
			opts.MaxDepth = n
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			files = append(files, arg)
		default:
			fatal("unknown option: %s", arg)
		}
	}

	switch cmd {
	case "check":
		if len(files) == 0 {
			fatal("check: no files given")
		}
		os.Exit(cmdCheck(files, opts))
	case "dump":
		cmdDump(single(files), opts, compact)
	case "fmt":
		cmdFmt(single(files), opts, compact)
	case "types":
		for _, name := range opts.Registry.Types() {
			fmt.Println(name)
		}
	case "version", "-v", "--version":
		fmt.Printf("goload %s\n", libVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `goload - game-object document loader

Usage:
  goload check [options] file...    Load documents and report warnings and errors
  goload dump [options] [file]      Print the loaded entity as JSON
  goload fmt [options] [file]       Re-emit the document in canonical text form
  goload types                      List the registered component types
  goload version                    Print version info

Options:
  --strict            Reject unknown fields instead of preserving them
  --max-depth=N       Maximum block nesting, payloads included (default: 64)
  --compact           dump: single-line JSON; fmt: keep data payloads on one line

Files ending in .gz or .zst are decompressed. If no file is given, reads from stdin.

Examples:
  goload check assets/**/*.go
  goload fmt --strict hero.go > hero.canonical.go
  zstd -c level.go > level.go.zst && goload dump level.go.zst
`)
}

// cmdCheck loads each file and prints one line per warning or error.
// Returns the process exit code.
func cmdCheck(files []string, opts gameobject.LoadOptions) int {
	failed := 0
	for _, name := range files {
		ent, err := load(name, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed++
			continue
		}
		for _, w := range ent.Warnings {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", name, w)
		}
		fmt.Printf("%s: ok (%d nodes, %d embedded)\n", name, ent.Len(), len(ent.Embedded()))
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d documents failed\n", failed, len(files))
		return 1
	}
	return 0
}

func cmdDump(name string, opts gameobject.LoadOptions, compact bool) {
	ent, err := load(name, opts)
	if err != nil {
		fatal("%v", err)
	}

	var data []byte
	if compact {
		data, err = json.Marshal(entityJSON(ent))
	} else {
		data, err = json.MarshalIndent(entityJSON(ent), "", "  ")
	}
	if err != nil {
		fatal("encode JSON: %v", err)
	}
	fmt.Println(string(data))
}

func cmdFmt(name string, opts gameobject.LoadOptions, compact bool) {
	ent, err := load(name, opts)
	if err != nil {
		fatal("%v", err)
	}
	eo := gameobject.DefaultEmitOptions()
	eo.SplitData = !compact

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	w.WriteString(gameobject.EmitEntityWithOptions(ent, eo))
}

// ============================================================
// JSON view
// ============================================================

type nodeView struct {
	ID         string                 `json:"id"`
	UID        string                 `json:"uid"`
	Kind       string                 `json:"kind"`
	Component  string                 `json:"component,omitempty"`
	Type       string                 `json:"type,omitempty"`
	Position   []interface{}          `json:"position"`
	Rotation   []interface{}          `json:"rotation"`
	Scale      []interface{}          `json:"scale"`
	Properties []propertyView         `json:"properties,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

type propertyView struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func entityJSON(ent *gameobject.Entity) map[string]interface{} {
	nodes := make([]nodeView, 0, ent.Len())
	for _, n := range ent.Nodes {
		t := n.Transform
		v := nodeView{
			ID:        n.ID,
			UID:       n.UID.String(),
			Kind:      n.Kind.String(),
			Component: n.Component,
			Type:      n.Type,
			Position:  floats(t.Position[:]...),
			Rotation:  floats(t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), t.Rotation.W),
			Scale:     floats(t.Scale[:]...),
		}
		if data := n.Payload.Map(); data != nil {
			v.Data = jsonSafe(data).(map[string]interface{})
		}
		for _, p := range n.Properties {
			v.Properties = append(v.Properties, propertyView{ID: p.ID, Type: p.Type, Value: p.Value})
		}
		nodes = append(nodes, v)
	}

	out := map[string]interface{}{
		"path":  ent.Path,
		"uid":   ent.UID.String(),
		"nodes": nodes,
	}
	if len(ent.Warnings) > 0 {
		warnings := make([]string, len(ent.Warnings))
		for i, w := range ent.Warnings {
			warnings[i] = w.String()
		}
		out["warnings"] = warnings
	}
	return out
}

// JSON has no NaN or infinity; those are written as the document spells them.
func jsonFloat(f float64) interface{} {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return f
}

func floats(fs ...float64) []interface{} {
	out := make([]interface{}, len(fs))
	for i, f := range fs {
		out[i] = jsonFloat(f)
	}
	return out
}

func jsonSafe(v interface{}) interface{} {
	switch v := v.(type) {
	case float64:
		return jsonFloat(v)
	case map[string]interface{}:
		for k, e := range v {
			v[k] = jsonSafe(e)
		}
		return v
	case []interface{}:
		for i, e := range v {
			v[i] = jsonSafe(e)
		}
		return v
	}
	return v
}

// ============================================================
// Input
// ============================================================

func load(name string, opts gameobject.LoadOptions) (*gameobject.Entity, error) {
	data, err := readInput(name)
	if err != nil {
		return nil, err
	}
	if name != "-" {
		opts.Path = strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	}
	return gameobject.LoadWithOptions(data, opts)
}

// readInput reads a whole document, decompressing by file extension.
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return io.ReadAll(f)
}

func single(files []string) string {
	switch len(files) {
	case 0:
		return "-"
	case 1:
		return files[0]
	}
	fatal("expected one file, got %d", len(files))
	return ""
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "goload: "+format+"\n", args...)
	os.Exit(1)
}

// parseIntArg extracts an integer from a flag like "--max-depth=32"
func parseIntArg(arg, prefix string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(arg, prefix))
}
