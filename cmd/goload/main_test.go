package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Neumenon/gameobject/gameobject"
)

func TestReadInput_Compressed(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", "gameobject", "testdata", "flag.go"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	gw.Write(src)
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write(src)
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	files := map[string][]byte{
		"flag.go":     src,
		"flag.go.gz":  gz.Bytes(),
		"flag.go.zst": zs.Bytes(),
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := readInput(path)
			if err != nil {
				t.Fatalf("readInput: %v", err)
			}
			if !bytes.Equal(got, src) {
				t.Fatal("decompressed content differs from source")
			}

			ent, err := load(path, gameobject.DefaultLoadOptions())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if ent.Path != filepath.Join(dir, "flag.go") {
				t.Errorf("path = %q", ent.Path)
			}
		})
	}
}

func TestReadInput_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.go.gz")
	if err := os.WriteFile(path, []byte("not gzip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readInput(path); err == nil {
		t.Error("expected error for corrupt gzip input")
	}
}

func TestEntityJSON(t *testing.T) {
	ent, err := gameobject.Load([]byte(`components { id: "script" component: "/a.script" }
embedded_components {
  id: "sprite"
  type: "sprite"
  data: "default_animation: \"idle\"\n"
  position { x: 1.0 }
}`))
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(entityJSON(ent))
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Nodes []struct {
			ID        string                 `json:"id"`
			Kind      string                 `json:"kind"`
			Component string                 `json:"component"`
			Position  [3]float64             `json:"position"`
			Rotation  [4]float64             `json:"rotation"`
			Data      map[string]interface{} `json:"data"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(out.Nodes))
	}
	if out.Nodes[0].Component != "/a.script" || out.Nodes[0].Data != nil {
		t.Errorf("reference node = %+v", out.Nodes[0])
	}
	sprite := out.Nodes[1]
	if sprite.Position != [3]float64{1, 0, 0} || sprite.Rotation != [4]float64{0, 0, 0, 1} {
		t.Errorf("sprite transform = %v %v", sprite.Position, sprite.Rotation)
	}
	if sprite.Data["default_animation"] != "idle" {
		t.Errorf("sprite data = %v", sprite.Data)
	}
}

func TestEntityJSON_NonFinite(t *testing.T) {
	ent, err := gameobject.Load([]byte(`embedded_components {
  id: "sound"
  type: "sound"
  data: "sound: \"/a.wav\"\ngain: nan\npan: -inf\n"
  position { x: inf }
}`))
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(entityJSON(ent))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out struct {
		Nodes []struct {
			Position []interface{}          `json:"position"`
			Data     map[string]interface{} `json:"data"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	node := out.Nodes[0]
	if node.Data["gain"] != "nan" || node.Data["pan"] != "-inf" || node.Data["speed"] != 1.0 {
		t.Errorf("data = %v", node.Data)
	}
	if node.Position[0] != "inf" || node.Position[1] != 0.0 {
		t.Errorf("position = %v", node.Position)
	}
}
