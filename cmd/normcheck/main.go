// normcheck runs the normalizer over a corpus of .txt files and reports how
// clean the output is: residual digits, idempotence failures, throughput.
//
// Usage:
//
//	normcheck [-workers N] <directory>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ldblckrs-258/vixtts-demo/normalize"
)

const defaultWorkers = 4

// maxLineBytes bounds the scanner buffer for long corpus lines.
const maxLineBytes = 1 << 20

type fileReport struct {
	path          string
	lines         int
	bytes         int64
	residualLines int // lines whose normalized form still contains digits
	unstableLines int // lines where a second Normalize changed the output
}

type stats struct {
	mu            sync.Mutex
	files         int
	lines         int
	bytes         int64
	residualLines int
	unstableLines int
	worstFiles    []fileReport
}

func main() {
	workers := flag.Int("workers", defaultWorkers, "number of concurrent files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-workers N] <directory>\n", os.Args[0])
		os.Exit(1)
	}
	dir := flag.Arg(0)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.WithError(err).Fatal("walking corpus directory")
	}

	log.WithField("files", len(paths)).Info("corpus scan starting")
	start := time.Now()

	st := &stats{}
	semaphore := make(chan struct{}, *workers)
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			checkFile(log, p, st)
		}(path)
	}

	wg.Wait()

	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("corpus scan done")
	printStats(st)

	if st.residualLines > 0 || st.unstableLines > 0 {
		os.Exit(1)
	}
}

// checkFile normalizes every line of the file and records how many lines
// come back with digits left over or fail the second-pass stability check.
func checkFile(log *logrus.Logger, path string, st *stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		log.WithError(err).WithField("file", path).Error("open failed")
		return
	}
	defer func() { _ = f.Close() }()

	report := fileReport{path: path}
	fileStart := time.Now()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		report.lines++
		report.bytes += int64(len(line))

		got := normalize.Normalize(line)
		if strings.ContainsAny(got, "0123456789") {
			report.residualLines++
		}
		if normalize.Normalize(got) != got {
			report.unstableLines++
		}
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).WithField("file", path).Error("read failed")
		return
	}

	log.WithFields(logrus.Fields{
		"file":    filepath.Base(path),
		"lines":   report.lines,
		"elapsed": time.Since(fileStart).Round(time.Millisecond),
	}).Debug("file done")

	mergeReport(report, st)
}

func mergeReport(r fileReport, st *stats) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.files++
	st.lines += r.lines
	st.bytes += r.bytes
	st.residualLines += r.residualLines
	st.unstableLines += r.unstableLines

	if r.residualLines > 0 || r.unstableLines > 0 {
		st.worstFiles = append(st.worstFiles, r)
	}
}

func printStats(st *stats) {
	fmt.Printf("Files scanned:      %d\n", st.files)
	fmt.Printf("Lines normalized:   %d\n", st.lines)
	fmt.Printf("Bytes read:         %d\n", st.bytes)
	fmt.Printf("Residual-digit:     %d lines\n", st.residualLines)
	fmt.Printf("Unstable:           %d lines\n", st.unstableLines)

	if len(st.worstFiles) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Files with findings:")
	for _, r := range st.worstFiles {
		fmt.Printf("  %s: %d residual, %d unstable (of %d lines)\n",
			r.path, r.residualLines, r.unstableLines, r.lines)
	}
}
