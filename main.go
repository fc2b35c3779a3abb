// Command wder computes the word-level diarization error rate of a recognized
// transcript against a reference transcript.
//
// Usage:
//
//	wder [flags] <reference.txt> <recognized.txt>
//
// Both inputs are plain text with "Speaker <id>: words" blocks; http(s) URLs
// are fetched. Exit codes: 0 = success, 1 = error.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
