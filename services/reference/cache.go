package reference

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Cache loads each dataset at most once per process, from the first candidate
// path that can be read. A dataset that cannot be found is warned about once
// and then stays empty; there is no retry.
type Cache struct {
	coefficientPaths []string
	pathogenicPaths  []string

	mu                sync.Mutex
	coefficientsReady bool
	pathogenicReady   bool
	coefficients      coefficientTable
	pathogenic        pathogenicDatabase
}

func NewCache(coefficientPaths, pathogenicPaths []string) *Cache {
	return &Cache{
		coefficientPaths: coefficientPaths,
		pathogenicPaths:  pathogenicPaths,
		coefficients:     coefficientTable{},
		pathogenic:       pathogenicDatabase{},
	}
}

// Load forces both datasets in, e.g. at boot. Calling it again is a no-op.
func (c *Cache) Load() {
	c.Coefficients()
	c.Pathogenic()
}

func (c *Cache) Coefficients() CoefficientTable {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.coefficientsReady {
		if t, ok := loadFirst("coefficient table", c.coefficientPaths, func(r io.Reader) (int, interface{}, error) {
			t, err := readCoefficients(r)
			return t.rows(), t, err
		}); ok {
			c.coefficients = t.(coefficientTable)
		}
		c.coefficientsReady = true
	}
	return c.coefficients
}

func (c *Cache) Pathogenic() PathogenicDatabase {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pathogenicReady {
		if d, ok := loadFirst("pathogenic variant database", c.pathogenicPaths, func(r io.Reader) (int, interface{}, error) {
			d, err := readPathogenic(r)
			return d.Len(), d, err
		}); ok {
			c.pathogenic = d.(pathogenicDatabase)
		}
		c.pathogenicReady = true
	}
	return c.pathogenic
}

// loadFirst tries each path in turn and returns the first dataset read
// without error.
func loadFirst(dataset string, paths []string, read func(io.Reader) (int, interface{}, error)) (interface{}, bool) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}

		rc, err := openDataset(p)
		if err != nil {
			fmt.Printf("[%s] - Failed loading %s from %s: %s\n", time.Now(), dataset, p, err)
			continue
		}
		n, value, err := read(rc)
		rc.Close()
		if err != nil {
			fmt.Printf("[%s] - Failed loading %s from %s: %s\n", time.Now(), dataset, p, err)
			continue
		}

		fmt.Printf("[%s] - Loaded %s: %d rows from %s\n", time.Now(), dataset, n, p)
		return value, true
	}

	fmt.Printf("[%s] - WARNING: %s not found; tried paths: %v -- dependent results will be Unknown\n", time.Now(), dataset, paths)
	return nil, false
}
