// Package extractor turns raw CSV bytes into the ordered, duplicate-free set
// of normalized domain names a pipeline run enriches.
//
// The stages are pure and composable:
//
//	scanner := extractor.NewRowScanner(data, extractor.ScanOptions{})
//	set := extractor.Dedupe(scanner.Candidates(), extractor.DefaultMaxDomains)
//	if err := scanner.Err(); err != nil { ... }
package extractor
