package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids between generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid of the requested size from the pool
func (p *GridPool) Get(size int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(size)
	return g
}

// Put hands a grid back. The caller must not use it afterwards.
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
