package png2vhdl

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SourceExt is the extension source images are discovered by.
const SourceExt = ".png"

func (c *Converter) findImages(ctx context.Context, dir string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- afero.Walk(c.fs, dir, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if strings.HasPrefix(info.Name(), ".") {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), SourceExt) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Converter) conversionWorker(in <-chan string, out chan<- Result, outputDir string, wg *sync.WaitGroup) {
	defer wg.Done()
	for file := range in {
		res := c.convertFile(file, outputDir)
		switch {
		case res.Err != nil:
			c.logger.Warn("conversion failed", zap.String("file", file), zap.Error(res.Err))
		case res.Skipped:
			c.logger.Debug("up to date", zap.String("file", file))
		default:
			c.logger.Info("converted", zap.String("file", file), zap.String("output", res.Output))
		}
		if c.progress != nil {
			c.progress(res)
		}
		out <- res
	}
}

// ConvertDir converts every image under inputDir and writes one VHDL
// package per image into outputDir, creating it if necessary. Each
// discovered file yields one Result; a failure is recorded in its
// Result and never stops the remaining files. The returned error
// reports problems with the batch itself, such as a missing input
// directory.
func (c *Converter) ConvertDir(ctx context.Context, inputDir, outputDir string) ([]Result, error) {
	inputDir, err := filepath.Abs(inputDir)
	if err != nil {
		return nil, err
	}

	if info, err := c.fs.Stat(inputDir); err != nil {
		return nil, errors.Wrapf(err, "input directory %s", inputDir)
	} else if !info.IsDir() {
		return nil, errors.Errorf("input directory %s is not a directory", inputDir)
	}

	if err := c.fs.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "output directory %s", outputDir)
	}

	files, errc := c.findImages(ctx, inputDir)

	out := make(chan Result)
	var wg sync.WaitGroup
	wg.Add(c.workers)
	for i := 0; i < c.workers; i++ {
		go c.conversionWorker(files, out, outputDir, &wg)
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	var results []Result
	for res := range out {
		results = append(results, res)
	}

	// Workers finish in arbitrary order.
	sort.Slice(results, func(i, j int) bool { return results[i].Source < results[j].Source })

	if err := <-errc; err != nil {
		return results, err
	}

	return results, nil
}
