package collections

import (
	"context"
	"sort"
	"sync"

	"github.com/dgarciat/tirestock-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner implementa la exclusión mutua por colección con un mutex
// nombrado por colección. Los locks se adquieren siempre en orden
// alfabético de nombre, el orden global fijo que evita interbloqueos
// cuando una operación lógica toca varias colecciones (p. ej. confirmar
// una entrega bloquea deliveries, inventory y transactions a la vez).
type TxRunner struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTxRunner construye el runner.
func NewTxRunner() *TxRunner {
	return &TxRunner{locks: make(map[string]*sync.Mutex)}
}

func (r *TxRunner) lockFor(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

// Run ejecuta fn con los locks de las colecciones indicadas tomados
// durante toda la operación lógica.
func (r *TxRunner) Run(ctx context.Context, fn func() error, collections ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	names := make([]string, 0, len(collections))
	seen := make(map[string]bool, len(collections))
	for _, c := range collections {
		if !seen[c] {
			seen[c] = true
			names = append(names, c)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		l := r.lockFor(name)
		l.Lock()
		defer l.Unlock()
	}
	return fn()
}
