// Command robotpathctl replays a path description against the engine
// directly, without going through the HTTP service. Useful for local
// debugging and for reproducing a stored record's Result offline.
//
// Usage:
//
//	robotpathctl -commands path.json
//	cat path.json | robotpathctl
//
// path.json shape:
//
//	{"start": {"x": 10, "y": 22},
//	 "commands": [{"direction": "east", "steps": 2}, ...]}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lukaism/tibber-technical-case/internal/engine"
)

type pathFile struct {
	Start struct {
		X int64 `json:"x"`
		Y int64 `json:"y"`
	} `json:"start"`
	Commands []struct {
		Direction string `json:"direction"`
		Steps     uint32 `json:"steps"`
	} `json:"commands"`
}

func main() {
	commandsPath := flag.String("commands", "", "path to a JSON file describing start+commands; reads stdin if omitted")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *commandsPath != "" {
		f, err := os.Open(*commandsPath)
		if err != nil {
			log.Fatalf("opening %s: %v", *commandsPath, err)
		}
		defer f.Close()
		r = f
	}

	var pf pathFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		log.Fatalf("decoding path description: %v", err)
	}

	commands := make([]engine.Command, len(pf.Commands))
	for i, c := range pf.Commands {
		commands[i] = engine.Command{Direction: engine.Direction(c.Direction), Steps: c.Steps}
	}

	result, err := engine.Compute(engine.Position{X: pf.Start.X, Y: pf.Start.Y}, commands)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	fmt.Println(result)
}
