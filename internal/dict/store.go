package dict

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jamen-go/jamen/internal/logging"
)

// StorePaths names the source files backing each of the seven logical
// dictionaries, plus the not-included-regex file (§6 of the system's
// external interfaces). A logical dictionary may be backed by more
// than one file.
type StorePaths struct {
	General          []string
	FamilyNames      []string
	GivenNames       []string
	NamePrefixes     []string
	NameSuffixes     []string
	Japanese         []string
	English          []string
	NotIncludedRegex []string
}

// StoreOptions configures cache behaviour.
type StoreOptions struct {
	// CacheDir is where compiled dictionaries are cached. Defaults to
	// "tmp" when empty.
	CacheDir string
}

// Store holds the seven dictionaries and the not-included-regex used
// throughout segmentation, name extraction, and attribution. It is
// built once at process start and never mutated afterward.
type Store struct {
	General      *Dictionary
	FamilyNames  *Dictionary
	GivenNames   *Dictionary
	NamePrefixes *Dictionary
	NameSuffixes *Dictionary
	Japanese     *Dictionary
	English      *Dictionary
	NotIncluded  *regexp.Regexp
}

// NewStore loads every dictionary named in paths, synthesising prefixes
// and rebuilding/reading caches as needed. A missing or malformed
// source file is a fatal, caller-visible error (§7: dictionary-load
// failure).
func NewStore(paths StorePaths, opts StoreOptions) (*Store, error) {
	cacheDir := opts.CacheDir
	if cacheDir == "" {
		cacheDir = "tmp"
	}

	load := func(name string, ps []string) (*Dictionary, error) {
		if len(ps) == 0 {
			return NewDictionary(), nil
		}
		d, err := loadOrBuildDictionary(ps, cacheDir)
		if err != nil {
			return nil, fmt.Errorf("dict: loading %s dictionary: %w", name, err)
		}
		logging.L.Info().Str("dictionary", name).Int("entries", d.Len()).Msg("dictionary ready")
		return d, nil
	}

	general, err := load("general", paths.General)
	if err != nil {
		return nil, err
	}
	family, err := load("family-names", paths.FamilyNames)
	if err != nil {
		return nil, err
	}
	given, err := load("given-names", paths.GivenNames)
	if err != nil {
		return nil, err
	}
	prefixes, err := load("name-prefixes", paths.NamePrefixes)
	if err != nil {
		return nil, err
	}
	suffixes, err := load("name-suffixes", paths.NameSuffixes)
	if err != nil {
		return nil, err
	}
	japanese, err := load("japanese-names", paths.Japanese)
	if err != nil {
		return nil, err
	}
	english, err := load("english-names", paths.English)
	if err != nil {
		return nil, err
	}

	notIncluded, err := loadNotIncludedRegex(paths.NotIncludedRegex)
	if err != nil {
		return nil, fmt.Errorf("dict: loading not-included regex: %w", err)
	}

	return &Store{
		General:      general,
		FamilyNames:  family,
		GivenNames:   given,
		NamePrefixes: prefixes,
		NameSuffixes: suffixes,
		Japanese:     japanese,
		English:      english,
		NotIncluded:  notIncluded,
	}, nil
}

// HasAnyPrefix reports whether clip exists, as a prefix or terminal
// entry, in any of the seven dictionaries consulted during DAG
// construction. The segmenter stops extending a candidate span as soon
// as this returns false — the "critical pruning condition" of §4.C.
func (s *Store) HasAnyPrefix(clip string) bool {
	return s.General.Has(clip) ||
		s.NamePrefixes.Has(clip) ||
		s.FamilyNames.Has(clip) ||
		s.GivenNames.Has(clip) ||
		s.NameSuffixes.Has(clip) ||
		s.Japanese.Has(clip) ||
		s.English.Has(clip)
}

func loadNotIncludedRegex(paths []string) (*regexp.Regexp, error) {
	var patterns []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			patterns = append(patterns, line)
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
	}
	if len(patterns) == 0 {
		return nil, nil
	}
	combined := "(" + strings.Join(patterns, "|") + ")"
	re, err := regexp.Compile(combined)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", combined, err)
	}
	return re, nil
}
