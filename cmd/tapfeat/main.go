// Command tapfeat extracts material-classifier features from tap recordings.
//
// Usage:
//
//	tapfeat extract [flags] <file|dir>...
//	tapfeat simulate --out <dir> [flags]
//	tapfeat layout [flags]
//
// Pipeline settings come from flags, a YAML config file (--config),
// TAPFEAT_* environment variables or a saved pipeline descriptor
// (--descriptor), in that order of precedence from flag down.
//
// Examples:
//
//	tapfeat simulate --out data/simulated --noise 0.02
//	tapfeat extract --extra all --top-k 5 data/
//	tapfeat extract --descriptor model/pipeline.yaml -f json recording.json
//	tapfeat layout --extra zcr,top_peaks --descriptor-out pipeline.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
