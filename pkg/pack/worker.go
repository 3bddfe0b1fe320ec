package pack

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// resolved is the outcome of the sniff-and-read stage for one accepted
// candidate. Only VerdictInclude carries a usable file.
type resolved struct {
	file     File
	verdict  Verdict
	replaced bool
}

// resolveFiles sniffs and reads accepted candidates with a worker pool.
// Results arrive in arbitrary order; the caller sorts afterwards, so the
// pool cannot change the final output.
func resolveFiles(accepted []Candidate, fc *FilterConfig, maxWorkers int, logger *zap.Logger) []resolved {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	jobs := make(chan Candidate, len(accepted))
	results := make(chan resolved, len(accepted))
	var wg sync.WaitGroup

	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLogger := logger.With(zap.Int("worker", id))
			for c := range jobs {
				results <- resolveOne(c, fc, workerLogger)
			}
		}(i)
	}

	for _, c := range accepted {
		jobs <- c
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]resolved, 0, len(accepted))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func resolveOne(c Candidate, fc *FilterConfig, logger *zap.Logger) resolved {
	if sniffFile(c.AbsPath, fc.sniffBytes) {
		logger.Debug("skipping binary file", zap.String("path", c.RelPath))
		return resolved{verdict: VerdictBinary}
	}

	content, replaced, err := loadContent(c.AbsPath)
	if err != nil {
		logger.Warn("cannot read file", zap.String("path", c.RelPath), zap.Error(err))
		return resolved{verdict: VerdictReadError}
	}

	return resolved{
		file:     File{RelPath: c.RelPath, Content: content, Lang: fc.languageHint(&c)},
		verdict:  VerdictInclude,
		replaced: replaced,
	}
}
