package maskedaes

import (
	"fmt"
	"runtime"
	"sync"
)

// ParallelConfig controls worker-pool parallelism for EncryptECBParallel
// and DecryptECBParallel. ECB blocks are independent of each other, so
// they are the only mode this package parallelizes; CBC's block
// chaining is inherently sequential and has no parallel variant.
type ParallelConfig struct {
	// MaxWorkers is the number of goroutines processing blocks. If 0,
	// runtime.NumCPU() is used.
	MaxWorkers int

	// MinBlocksForParallel is the number of blocks below which the
	// call falls back to sequential processing rather than pay
	// goroutine setup cost.
	MinBlocksForParallel int
}

// DefaultParallelConfig returns one worker per CPU and a threshold of
// 64 blocks (1 KiB).
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		MaxWorkers:           runtime.NumCPU(),
		MinBlocksForParallel: 64,
	}
}

func (p ParallelConfig) workers(blocks int) int {
	n := p.MaxWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > blocks {
		n = blocks
	}
	return n
}

// EncryptECBParallel is EncryptECBBuffer distributed across a worker
// pool. Each block gets its own mask draw from s's MaskSource exactly
// as in the sequential path; the only difference is scheduling.
func (s *Session) EncryptECBParallel(dst, src []byte, cfg ParallelConfig) error {
	if err := ValidateBlockAligned(src, "src"); err != nil {
		return err
	}
	if err := ValidateBuffer(dst, src); err != nil {
		return err
	}

	numBlocks := len(src) / BlockSize
	if numBlocks < cfg.MinBlocksForParallel {
		return s.EncryptECBBuffer(dst, src)
	}

	return s.runECBParallel(dst, src, numBlocks, cfg, s.EncryptECB)
}

// DecryptECBParallel is the decrypting counterpart of EncryptECBParallel.
func (s *Session) DecryptECBParallel(dst, src []byte, cfg ParallelConfig) error {
	if err := ValidateBlockAligned(src, "src"); err != nil {
		return err
	}
	if err := ValidateBuffer(dst, src); err != nil {
		return err
	}

	numBlocks := len(src) / BlockSize
	if numBlocks < cfg.MinBlocksForParallel {
		return s.DecryptECBBuffer(dst, src)
	}

	return s.runECBParallel(dst, src, numBlocks, cfg, s.DecryptECB)
}

func (s *Session) runECBParallel(dst, src []byte, numBlocks int, cfg ParallelConfig, transform func([BlockSize]byte) [BlockSize]byte) error {
	numWorkers := cfg.workers(numBlocks)

	jobs := make(chan int, numBlocks)
	var wg sync.WaitGroup
	errCh := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case errCh <- fmt.Errorf("maskedaes: panic in ECB worker: %v", r):
					default:
					}
				}
			}()
			for idx := range jobs {
				off := idx * BlockSize
				var block [BlockSize]byte
				copy(block[:], src[off:off+BlockSize])
				out := transform(block)
				copy(dst[off:off+BlockSize], out[:])
			}
		}()
	}

	for i := 0; i < numBlocks; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errCh)

	if err, ok := <-errCh; ok {
		return err
	}
	return nil
}
