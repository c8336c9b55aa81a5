package language

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultMaxFiles caps how many recognized files a detection pass counts.
// Very large repositories get a statistical sample rather than an exhaustive
// count, bounding scan cost.
const DefaultMaxFiles = 1000

// errStopWalk signals an early, successful end of the walk once the sample
// cap is reached.
var errStopWalk = fs.SkipAll

// Detect walks the tree under root and counts files per language, skipping
// noise directories. Counting stops after maxFiles recognized files. Entries
// that cannot be read are skipped silently; Detect never fails.
func Detect(root string, maxFiles int) *Stats {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}

	counts := make(map[Language]int)
	scanned := 0

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are treated as absent.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && SkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if lang := FromExtension(path); lang != Unknown {
			counts[lang]++
			scanned++
			if scanned >= maxFiles {
				return errStopWalk
			}
		}
		return nil
	})

	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return &Stats{
			Primary:   Unknown,
			Languages: map[Language]int{},
		}
	}

	return &Stats{
		Primary:    primaryOf(counts),
		Languages:  counts,
		TotalFiles: total,
		Confidence: float64(counts[primaryOf(counts)]) / float64(total),
	}
}

// primaryOf returns the language with the highest count. Ties break
// alphabetically to keep repeated scans deterministic.
func primaryOf(counts map[Language]int) Language {
	langs := make([]Language, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if counts[langs[i]] != counts[langs[j]] {
			return counts[langs[i]] > counts[langs[j]]
		}
		return langs[i] < langs[j]
	})
	if len(langs) == 0 {
		return Unknown
	}
	return langs[0]
}
